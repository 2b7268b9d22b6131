// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"pwmfinder/internal/engine"
)

// HitWriterFunc consumes every hit from in and serializes it to w.
// It must drain in even after a write error.
type HitWriterFunc func(w io.Writer, in <-chan engine.Hit, header bool) error

// Writer registry (format → handler). Formats register in init().
var hitWriters = map[string]HitWriterFunc{}

// RegisterHit adds or replaces the writer for format (last wins).
func RegisterHit(format string, fn HitWriterFunc) { hitWriters[format] = fn }

// LookupHit returns the writer registered for format.
func LookupHit(format string) (HitWriterFunc, error) {
	fn, ok := hitWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown hit format %q (no writer registered)", format)
	}
	return fn, nil
}
