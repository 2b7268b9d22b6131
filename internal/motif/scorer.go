package motif

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ScoreNone marks "no score": a pruned window, an absent threshold, or a PWM
// without a minimum score. No scorer ever returns it with ok == true.
const ScoreNone = math.MinInt

// Scoring modes accepted by New.
const (
	ModeConsensus = "consensus"
	ModePWM       = "PWM"
)

var ErrUnknownMode = errors.New("unknown scoring mode")

// Scorer scores one k-length window.
//
// Score reads window[0:Len()] left to right. It reports ok=false as soon as the
// window provably cannot reach the scorer's own floor or abort; a window that
// does reach both is always scored in full, so pruning only ever turns a
// losing window into an earlier miss.
type Scorer interface {
	Score(window []byte, abort int) (score int, ok bool)
	Len() int
	String() string
	// ReverseComplement builds the independent scorer for the opposite strand.
	ReverseComplement() Scorer
}

// New builds the forward scorer for mode.
//
//	consensus: def is the consensus string, param the mismatch budget
//	PWM:       def is a matrix file path, param the minimum score (0 = no floor)
func New(mode, def string, param int) (Scorer, error) {
	switch {
	case strings.EqualFold(mode, ModeConsensus):
		return NewConsensus(def, param)
	case strings.EqualFold(mode, ModePWM):
		rows, err := LoadMatrix(def)
		if err != nil {
			return nil, err
		}
		minScore := param
		if minScore == 0 {
			minScore = ScoreNone
		}
		return NewWeightMatrix(rows, minScore)
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownMode, mode, ModeConsensus, ModePWM)
	}
}
