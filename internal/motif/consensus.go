package motif

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Consensus scores a window by percent identity to a literal consensus,
// scaled to 0..10000, rejecting windows with more than Mismatches differences.
type Consensus struct {
	seq      []byte // upper-case
	mismatch int
}

// NewConsensus validates seq (IUPAC letters, any case) and the mismatch budget.
func NewConsensus(seq string, mismatch int) (*Consensus, error) {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if s == "" {
		return nil, errors.New("consensus: empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if complement[s[i]] == 0 {
			return nil, fmt.Errorf("consensus: invalid base %q at %d", s[i], i+1)
		}
	}
	if mismatch < 0 || mismatch > len(s) {
		return nil, fmt.Errorf("consensus: mismatch budget %d out of range [0,%d]", mismatch, len(s))
	}
	return &Consensus{seq: []byte(s), mismatch: mismatch}, nil
}

func (c *Consensus) Len() int        { return len(c.seq) }
func (c *Consensus) Mismatches() int { return c.mismatch }
func (c *Consensus) Seq() string     { return string(c.seq) }

func (c *Consensus) String() string {
	return string(c.seq) + "/" + strconv.Itoa(c.mismatch)
}

// identity is the score of a window with mm mismatches.
func (c *Consensus) identity(mm int) int {
	k := len(c.seq)
	return 10000 * (k - mm) / k
}

// budget is the largest mismatch count still scoring >= abort, capped by the
// configured budget. -1 means no window can reach abort.
func (c *Consensus) budget(abort int) int {
	b := c.mismatch
	for b >= 0 && c.identity(b) < abort {
		b--
	}
	return b
}

// Score counts case-insensitive mismatches; a window base outside ACGT is
// always a mismatch, whatever the consensus symbol.
func (c *Consensus) Score(window []byte, abort int) (int, bool) {
	k := len(c.seq)
	if len(window) < k {
		return ScoreNone, false
	}
	budget := c.budget(abort)
	if budget < 0 {
		return ScoreNone, false
	}
	mm := 0
	for i := 0; i < k; i++ {
		g := upper(window[i])
		if baseCol[g] < 0 || g != c.seq[i] {
			mm++
			if mm > budget {
				return ScoreNone, false
			}
		}
	}
	return c.identity(mm), true
}

// ReverseComplement complements every symbol and reverses the order.
func (c *Consensus) ReverseComplement() Scorer {
	return &Consensus{seq: RevComp(c.seq), mismatch: c.mismatch}
}
