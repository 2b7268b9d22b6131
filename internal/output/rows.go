// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"pwmfinder/internal/engine"
)

// FormatRowTSV returns the seven report columns (no trailing newline).
func FormatRowTSV(h engine.Hit) string {
	var b strings.Builder
	b.Grow(len(h.Label) + 2*len(h.Ref) + 48)
	b.WriteString(h.Label)
	b.WriteByte('\t')
	b.WriteString(h.Ref)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(h.Start))
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(h.End))
	b.WriteByte('\t')
	b.WriteString(h.Name())
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(h.Score))
	b.WriteByte('\t')
	b.WriteString(h.Strand.String())
	return b.String()
}
