// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"pwmfinder/internal/engine"
	"pwmfinder/internal/jsonlutil"
	"pwmfinder/internal/output"
)

// StartHitJSONLWriter streams each engine.Hit as one JSON line (v1).
func StartHitJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error) {
	return jsonlutil.Start[engine.Hit](out, bufSize,
		func(enc *json.Encoder, h engine.Hit) error {
			return enc.Encode(output.ToAPIHit(h))
		},
		IsBrokenPipe,
	)
}

func writeJSONL(w io.Writer, in <-chan engine.Hit, _ bool) error {
	enc, done := StartHitJSONLWriter(w, cap(in))
	for h := range in {
		enc <- h
	}
	close(enc)
	return <-done
}
