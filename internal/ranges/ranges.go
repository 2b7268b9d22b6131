// Package ranges parses "ref[:start1-end1[:strand]]" range tokens and
// range-list files.
package ranges

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"pwmfinder/internal/engine"
)

// Unbounded is the End1 of a range with no explicit end.
const Unbounded = math.MaxInt

var (
	ErrEmpty     = errors.New("empty range token")
	ErrBadCoords = errors.New("coordinate string needs start1-end1 or -end1, or start1-")
)

// Range is one scan request. Label is the token as written; it prefixes every
// reported hit.
type Range struct {
	Ref    string
	Start0 int
	End1   int
	Strand engine.Strand
	Label  string
}

func (r Range) String() string { return r.Label }

// Parse reads one token. Start defaults to 1, end to Unbounded, strand to
// both.
func Parse(tok string) (Range, error) {
	tok = strings.TrimSpace(tok)
	r := Range{Start0: 0, End1: Unbounded, Strand: engine.Both, Label: tok}
	parts := strings.Split(tok, ":")
	r.Ref = parts[0]
	if r.Ref == "" {
		return Range{}, ErrEmpty
	}
	if len(parts) > 3 {
		return Range{}, fmt.Errorf("%q: too many ':' fields", tok)
	}

	if len(parts) >= 2 {
		s, e, ok := strings.Cut(parts[1], "-")
		if !ok {
			return Range{}, fmt.Errorf("%q: %w", tok, ErrBadCoords)
		}
		if s != "" {
			start1, err := strconv.Atoi(s)
			if err != nil || start1 < 1 {
				return Range{}, fmt.Errorf("%q: start %q is not a positive integer", tok, s)
			}
			r.Start0 = start1 - 1
		}
		if e != "" {
			end1, err := strconv.Atoi(e)
			if err != nil || end1 < 0 {
				return Range{}, fmt.Errorf("%q: end %q is not a non-negative integer", tok, e)
			}
			r.End1 = end1
		}
		if r.End1 < r.Start0 {
			return Range{}, fmt.Errorf("%q: end %d before start %d", tok, r.End1, r.Start0+1)
		}
	}

	if len(parts) == 3 {
		st, err := engine.ParseStrand(parts[2])
		if err != nil {
			return Range{}, fmt.Errorf("%q: %w", tok, err)
		}
		r.Strand = st
	}
	return r, nil
}

// Read returns the whitespace-separated tokens of r. Everything from '#' to
// end of line is a comment. Tokens are not parsed, so a bad one can be
// reported and skipped on its own.
func Read(r io.Reader) ([]string, error) {
	var toks []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		toks = append(toks, strings.Fields(line)...)
	}
	return toks, sc.Err()
}

// ReadFile is Read on a named file ("-" is stdin).
func ReadFile(path string) ([]string, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	toks, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return toks, nil
}
