// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// EffectiveBuffer returns the fetch size the scanner will use for a motif of
// length k. A buffer <= 0 means the default; a buffer shorter than the motif
// is raised to k so every fetch holds at least one full window.
func EffectiveBuffer(buffer, k, def int) (int, []string) {
	var warns []string
	if buffer <= 0 {
		buffer = def
	}
	if buffer < k {
		warns = append(warns, fmt.Sprintf("--buffer %d is shorter than the motif (%d); using %d", buffer, k, k))
		buffer = k
	}
	return buffer, warns
}

// EffectiveMaxOpen clamps --max-open to at least one open sequence.
func EffectiveMaxOpen(maxOpen int) int {
	if maxOpen < 1 {
		return 1
	}
	return maxOpen
}

// Totals is the per-run tally printed by --verbose.
type Totals struct {
	Ranges   int
	Skipped  int
	Bases    int
	Windows  int
	Proposed int
	Reported int
	Elapsed  time.Duration
}

// Summary renders t as a single human-readable line.
func Summary(t Totals) string {
	rate := ""
	if secs := t.Elapsed.Seconds(); secs > 0 && t.Windows > 0 {
		rate = fmt.Sprintf(" (%s windows/s)", humanize.Comma(int64(float64(t.Windows)/secs)))
	}
	return fmt.Sprintf("%s ranges (%s skipped), %s read, %s windows scored%s, %s candidates, %s reported",
		humanize.Comma(int64(t.Ranges)),
		humanize.Comma(int64(t.Skipped)),
		humanize.Bytes(uint64(t.Bases)),
		humanize.Comma(int64(t.Windows)),
		rate,
		humanize.Comma(int64(t.Proposed)),
		humanize.Comma(int64(t.Reported)),
	)
}
