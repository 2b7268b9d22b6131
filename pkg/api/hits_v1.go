// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one motif hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Label  string `json:"label"` // range token the hit came from
	Ref    string `json:"ref"`
	Start  int    `json:"start"` // 0-based
	End    int    `json:"end"`   // exclusive
	Name   string `json:"name"`  // ref:start1-end:strand
	Score  int    `json:"score"`
	Strand string `json:"strand"` // "+" | "-"
}
