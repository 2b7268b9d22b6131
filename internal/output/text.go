// internal/output/text.go
package output

import (
	"io"

	"pwmfinder/internal/engine"
)

// WriteText prints one TSV line per hit.
func WriteText(w io.Writer, list []engine.Hit, header bool) error {
	if header {
		if _, err := io.WriteString(w, TSVHeader+"\n"); err != nil {
			return err
		}
	}
	for _, h := range list {
		if _, err := io.WriteString(w, FormatRowTSV(h)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. On a write error the rest of in
// is drained so the sender never blocks.
func StreamText(w io.Writer, in <-chan engine.Hit, header bool) error {
	var err error
	if header {
		_, err = io.WriteString(w, TSVHeader+"\n")
	}
	for h := range in {
		if err != nil {
			continue
		}
		_, err = io.WriteString(w, FormatRowTSV(h)+"\n")
	}
	return err
}
