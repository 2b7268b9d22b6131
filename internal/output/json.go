// internal/output/json.go
package output

import (
	"io"

	"pwmfinder/internal/engine"
	"pwmfinder/internal/jsonutil"
	"pwmfinder/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h engine.Hit) api.HitV1 {
	return api.HitV1{
		Label:  h.Label,
		Ref:    h.Ref,
		Start:  h.Start,
		End:    h.End,
		Name:   h.Name(),
		Score:  h.Score,
		Strand: h.Strand.String(),
	}
}

func toAPIHits(list []engine.Hit) []api.HitV1 {
	out := make([]api.HitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIHit(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
// An empty list is written as [].
func WriteJSON(w io.Writer, list []engine.Hit) error {
	return jsonutil.EncodePretty(w, toAPIHits(list))
}
