// internal/common/sort.go
package common

import (
	"sort"

	"pwmfinder/internal/engine"
)

// LessHit defines a total order for hits (for --sort): score descending,
// then ref, start, strand and label ascending.
func LessHit(a, b engine.Hit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Ref != b.Ref {
		return a.Ref < b.Ref
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	return a.Label < b.Label
}

func SortHits(hs []engine.Hit) {
	sort.SliceStable(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
