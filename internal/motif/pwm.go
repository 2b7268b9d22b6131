package motif

import (
	"errors"
	"fmt"
	"io"
)

// WeightMatrix scores a window against a k×4 position weight matrix
// (columns A,C,G,T). Scores are relative to the best possible window: the
// per-row argmax sequence scores 0 and every other window scores <= 0.
type WeightMatrix struct {
	rows     [][4]int
	tailMax  []int // tailMax[i] = sum of row maxima for rows i..k-1
	minScore int
}

// NewWeightMatrix copies rows. minScore is the lowest acceptable final score;
// pass ScoreNone for no floor.
func NewWeightMatrix(rows [][4]int, minScore int) (*WeightMatrix, error) {
	if len(rows) == 0 {
		return nil, errors.New("pwm: matrix has no rows")
	}
	return newWeightMatrix(append([][4]int(nil), rows...), minScore), nil
}

// newWeightMatrix takes ownership of rows.
func newWeightMatrix(rows [][4]int, minScore int) *WeightMatrix {
	k := len(rows)
	tail := make([]int, k+1)
	for i := k - 1; i >= 0; i-- {
		best := rows[i][0]
		for _, v := range rows[i][1:] {
			if v > best {
				best = v
			}
		}
		tail[i] = tail[i+1] + best
	}
	return &WeightMatrix{rows: rows, tailMax: tail, minScore: minScore}
}

func (w *WeightMatrix) Len() int       { return len(w.rows) }
func (w *WeightMatrix) String() string { return "PWM" }
func (w *WeightMatrix) MinScore() int  { return w.minScore }

// MaxScore is the raw weight sum of the best window (the "consensus base").
func (w *WeightMatrix) MaxScore() int { return w.tailMax[0] }

// Rows returns a copy of the matrix.
func (w *WeightMatrix) Rows() [][4]int { return append([][4]int(nil), w.rows...) }

// Score starts from -MaxScore and adds the weight of each base. After every
// position, the accumulator plus the maxima of the rows still ahead bounds the
// final score from above; once that bound falls below the floor or abort the
// window is dropped. Any byte outside ACGT drops the window outright.
func (w *WeightMatrix) Score(window []byte, abort int) (int, bool) {
	k := len(w.rows)
	if len(window) < k {
		return ScoreNone, false
	}
	cur := -w.tailMax[0]
	for i := 0; i < k; i++ {
		col := baseCol[window[i]]
		if col < 0 {
			return ScoreNone, false
		}
		cur += w.rows[i][col]
		best := cur + w.tailMax[i+1]
		if best < w.minScore || best < abort {
			return ScoreNone, false
		}
	}
	return cur, true
}

// ReverseComplement reverses row order and, within each row, column order
// (A<->T, C<->G): r[i][j] = m[k-1-i][3-j].
func (w *WeightMatrix) ReverseComplement() Scorer {
	k := len(w.rows)
	rows := make([][4]int, k)
	for i := 0; i < k; i++ {
		for j := 0; j < 4; j++ {
			rows[i][j] = w.rows[k-1-i][3-j]
		}
	}
	return newWeightMatrix(rows, w.minScore)
}

// Format writes the matrix as tab-separated rows.
func (w *WeightMatrix) Format(out io.Writer) error {
	for _, r := range w.rows {
		if _, err := fmt.Fprintf(out, "%d\t%d\t%d\t%d\n", r[0], r[1], r[2], r[3]); err != nil {
			return err
		}
	}
	return nil
}
