// internal/motif/matrix.go
package motif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// LoadMatrix reads a k×4 integer weight matrix from path.
func LoadMatrix(path string) ([][4]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadMatrix(fh, path)
}

// ReadMatrix parses one row per line, cells separated by tabs, spaces or
// commas, columns ordered A C G T. Blank lines and '#' comments are skipped.
// name is used in error messages.
func ReadMatrix(r io.Reader, name string) ([][4]int, error) {
	var rows [][4]int
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.FieldsFunc(line, func(c rune) bool { return c == ',' || unicode.IsSpace(c) })
		if len(f) != 4 {
			return nil, fmt.Errorf("%s:%d want 4 columns (A C G T), got %d", name, ln, len(f))
		}
		var row [4]int
		for j, cell := range f {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad weight %q: not an integer", name, ln, cell)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty matrix", name)
	}
	return rows, nil
}
