// Package topn keeps the N best-scoring hits of a run.
package topn

import (
	"container/heap"
	"sort"

	"pwmfinder/internal/engine"
	"pwmfinder/internal/motif"
)

// Collector retains at most N hits (N == 0: unbounded) and exposes the lowest
// retained score as a prune threshold once it is full.
//
// Ties at the bottom are evicted in no particular order.
type Collector struct {
	n         int
	h         hitHeap
	next      uint64
	threshold int
}

type entry struct {
	hit engine.Hit
	seq uint64 // insertion order; keeps enumeration repeatable
}

// New returns an empty collector; n <= 0 disables the bound.
func New(n int) *Collector {
	if n < 0 {
		n = 0
	}
	return &Collector{n: n, threshold: motif.ScoreNone}
}

// Propose inserts h and, when the bound is exceeded, evicts one lowest-scoring
// hit. Hits scored ScoreNone are ignored.
func (c *Collector) Propose(h engine.Hit) {
	if h.Score == motif.ScoreNone {
		return
	}
	e := entry{hit: h, seq: c.next}
	c.next++

	if c.n == 0 {
		c.h = append(c.h, e)
		return
	}
	switch {
	case len(c.h) < c.n:
		heap.Push(&c.h, e)
	case h.Score >= c.h[0].hit.Score:
		// insert + evict the current minimum in one step
		c.h[0] = e
		heap.Fix(&c.h, 0)
	default:
		// lower than everything kept: it would be the one evicted
		return
	}
	if len(c.h) == c.n {
		c.threshold = c.h[0].hit.Score
	}
}

// Threshold is the abort score for the next scoring call: ScoreNone until the
// collector is full, then the lowest retained score.
func (c *Collector) Threshold() int { return c.threshold }

func (c *Collector) Len() int { return len(c.h) }

// Cap is N (0 = unbounded).
func (c *Collector) Cap() int { return c.n }

// Hits returns the retained hits, highest score first. Equal scores keep
// insertion order, so repeated calls agree. The collector is not modified.
func (c *Collector) Hits() []engine.Hit {
	es := append([]entry(nil), c.h...)
	sort.Slice(es, func(i, j int) bool {
		if es[i].hit.Score != es[j].hit.Score {
			return es[i].hit.Score > es[j].hit.Score
		}
		return es[i].seq < es[j].seq
	})
	out := make([]engine.Hit, len(es))
	for i, e := range es {
		out[i] = e.hit
	}
	return out
}

// hitHeap is a min-heap of entries ordered by score.
type hitHeap []entry

func (h hitHeap) Len() int           { return len(h) }
func (h hitHeap) Less(i, j int) bool { return h[i].hit.Score < h[j].hit.Score }
func (h hitHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *hitHeap) Push(x any)        { *h = append(*h, x.(entry)) }
func (h *hitHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
