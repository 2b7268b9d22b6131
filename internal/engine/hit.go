package engine

import (
	"fmt"
	"strconv"
)

// Strand selects which scorer(s) a scan uses.
type Strand byte

const (
	Forward Strand = '+'
	Reverse Strand = '-'
	Both    Strand = '.'
)

// ParseStrand accepts "+", "-" or ".".
func ParseStrand(s string) (Strand, error) {
	if len(s) == 1 {
		if st := Strand(s[0]); st.Valid() {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w (got %q)", ErrBadStrand, s)
}

func (s Strand) Valid() bool {
	return s == Forward || s == Reverse || s == Both
}

func (s Strand) HasForward() bool { return s == Forward || s == Both }
func (s Strand) HasReverse() bool { return s == Reverse || s == Both }

func (s Strand) String() string { return string(rune(s)) }

// Hit is one scored window, half-open 0-based [Start, End).
// Strand is Forward or Reverse, never Both.
type Hit struct {
	Score  int
	Ref    string
	Start  int
	End    int
	Strand Strand
	Label  string
}

// Name is the display id ref:start1-end1:strand (1-based start).
func (h Hit) Name() string {
	return h.Ref + ":" + strconv.Itoa(h.Start+1) + "-" + strconv.Itoa(h.End) + ":" + h.Strand.String()
}
