// Package engine contains the motif search core: the Hit record and the
// buffered window Scanner. It never imports app, writers, cli, or output;
// keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
