// internal/writers/hit.go
package writers

import (
	"io"

	"pwmfinder/internal/common"
	"pwmfinder/internal/engine"
	"pwmfinder/internal/output"
)

func init() {
	RegisterHit(output.FormatText, func(w io.Writer, in <-chan engine.Hit, header bool) error {
		return output.StreamText(w, in, header)
	})
	RegisterHit(output.FormatJSON, func(w io.Writer, in <-chan engine.Hit, _ bool) error {
		return output.WriteJSON(w, collect(in))
	})
	RegisterHit(output.FormatJSONL, writeJSONL)
}

// StartHitWriter spins up a writer goroutine for the given format. With
// sort set, hits are buffered and written in common.LessHit order.
// The error channel yields exactly one value after in is closed.
func StartHitWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- engine.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := LookupHit(format)
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		var src <-chan engine.Hit = in
		if sort {
			src = sorted(in)
		}
		errCh <- fn(out, src, header)
	}()

	return in, errCh
}

func collect(in <-chan engine.Hit) []engine.Hit {
	var buf []engine.Hit
	for h := range in {
		buf = append(buf, h)
	}
	return buf
}

// sorted drains in and replays it in sorted order on a closed channel.
func sorted(in <-chan engine.Hit) <-chan engine.Hit {
	buf := collect(in)
	common.SortHits(buf)
	out := make(chan engine.Hit, len(buf))
	for _, h := range buf {
		out <- h
	}
	close(out)
	return out
}
