package appcore

import (
	"io"

	"pwmfinder/internal/engine"
	"pwmfinder/internal/writers"
)

// HitWriterFactory starts the report writer for one output format.
type HitWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewHitWriterFactory(format string, sort, header bool) HitWriterFactory {
	return HitWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error) {
	return writers.StartHitWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
