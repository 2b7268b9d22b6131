package seqsrc

import (
	"errors"
	"io"
)

// ErrUnknownRef is returned when a reference has no sequence.
var ErrUnknownRef = errors.New("unknown reference")

// Seq is one open reference. Get returns fewer bytes than requested at the
// end of the data; the slice is only valid until the next call.
type Seq interface {
	Get(start0, end1 int) ([]byte, error)
	Len() int
	io.Closer
}

// Opener resolves a reference name to a Seq.
type Opener interface {
	Open(ref string) (Seq, error)
}

// clamp bounds [start0, end1) to [0, n).
func clamp(start0, end1, n int) (int, int) {
	if start0 < 0 {
		start0 = 0
	}
	if start0 > n {
		start0 = n
	}
	if end1 > n {
		end1 = n
	}
	if end1 < start0 {
		end1 = start0
	}
	return start0, end1
}
