package engine

import (
	"errors"
	"fmt"

	"pwmfinder/internal/motif"
)

// DefaultBufferSize is the read buffer used when none is configured.
const DefaultBufferSize = 1024

var (
	ErrNoForwardScorer = errors.New("forward scorer not specified")
	ErrNoReverseScorer = errors.New("reverse scorer not specified")
	ErrBadStrand       = errors.New("strand must be +, - or .")
	ErrBadRange        = errors.New("invalid range")
)

// Source serves [start0, end1) of one reference. Fewer bytes than requested
// means the end of the data was reached.
type Source interface {
	Get(start0, end1 int) ([]byte, error)
}

// Sink receives every scored window. Threshold is passed to the scorer as
// the abort score and is re-read before each scoring call.
type Sink interface {
	Propose(Hit)
	Threshold() int
}

// Stats counts the work done by one Scan.
type Stats struct {
	Fetched  int // bases read from the source, overlaps included
	Windows  int // scoring calls
	Proposed int // hits handed to the sink
}

func (s *Stats) Add(o Stats) {
	s.Fetched += o.Fetched
	s.Windows += o.Windows
	s.Proposed += o.Proposed
}

// Scanner slides a k-window over a range with a bounded read buffer.
type Scanner struct {
	fwd     motif.Scorer
	rev     motif.Scorer
	bufSize int
	sink    Sink
}

// NewScanner wires the scorers (either may be nil) to sink. bufSize <= 0
// selects DefaultBufferSize; a buffer shorter than the motif is grown to k.
func NewScanner(fwd, rev motif.Scorer, bufSize int, sink Sink) *Scanner {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &Scanner{fwd: fwd, rev: rev, bufSize: bufSize, sink: sink}
}

func (s *Scanner) motifLen() int {
	if s.fwd != nil {
		return s.fwd.Len()
	}
	if s.rev != nil {
		return s.rev.Len()
	}
	return 0
}

// Scan scores every k-window starting in [start0, end1-k] on the requested
// strand(s). Each fetch covers [cursor, cursor+B); the next one starts one
// past the last window scored, so windows spanning two fetches are scored
// exactly once.
func (s *Scanner) Scan(src Source, ref string, start0, end1 int, strand Strand, label string) (Stats, error) {
	var st Stats
	switch {
	case !strand.Valid():
		return st, fmt.Errorf("%w (got %q)", ErrBadStrand, byte(strand))
	case strand.HasForward() && s.fwd == nil:
		return st, ErrNoForwardScorer
	case strand.HasReverse() && s.rev == nil:
		return st, ErrNoReverseScorer
	case start0 < 0:
		return st, fmt.Errorf("%w: start %d < 0", ErrBadRange, start0)
	}
	k := s.motifLen()
	if k <= 0 {
		return st, nil
	}
	buf := s.bufSize
	if buf < k {
		buf = k
	}

	cursor := start0
	for cursor < end1 {
		end := end1
		if end-cursor > buf {
			end = cursor + buf
		}
		seq, err := src.Get(cursor, end)
		if err != nil {
			return st, fmt.Errorf("%s:%d-%d: %w", ref, cursor, end, err)
		}
		if len(seq) > end-cursor {
			seq = seq[:end-cursor]
		}
		n := len(seq)
		st.Fetched += n
		if n < k {
			break
		}
		for i := 0; i+k <= n; i++ {
			win := seq[i : i+k]
			pos := cursor + i
			if strand.HasForward() {
				s.offer(&st, s.fwd, win, ref, pos, k, Forward, label)
			}
			if strand.HasReverse() {
				s.offer(&st, s.rev, win, ref, pos, k, Reverse, label)
			}
		}
		cursor += n - k + 1
	}
	return st, nil
}

func (s *Scanner) offer(st *Stats, sc motif.Scorer, win []byte, ref string, pos, k int, strand Strand, label string) {
	st.Windows++
	score, ok := sc.Score(win, s.sink.Threshold())
	if !ok {
		return
	}
	st.Proposed++
	s.sink.Propose(Hit{Score: score, Ref: ref, Start: pos, End: pos + k, Strand: strand, Label: label})
}
