// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"pwmfinder/internal/appcore", "pwmfinder/internal/app",
		"pwmfinder/internal/cli", "pwmfinder/cmd/",
	}
	bans := map[string][]string{
		"pwmfinder/internal/motif": append([]string{
			"pwmfinder/internal/engine", "pwmfinder/internal/topn", "pwmfinder/internal/seqsrc",
			"pwmfinder/internal/writers", "pwmfinder/internal/output",
		}, outer...),
		"pwmfinder/internal/engine": append([]string{
			"pwmfinder/internal/topn", "pwmfinder/internal/seqsrc", "pwmfinder/internal/ranges",
			"pwmfinder/internal/writers", "pwmfinder/internal/output",
		}, outer...),
		"pwmfinder/internal/topn":    append([]string{"pwmfinder/internal/writers", "pwmfinder/internal/output"}, outer...),
		"pwmfinder/internal/seqsrc":  append([]string{"pwmfinder/internal/engine", "pwmfinder/internal/writers"}, outer...),
		"pwmfinder/internal/writers": outer,
		"pwmfinder/internal/output":  append([]string{"pwmfinder/internal/writers"}, outer...),
		"pwmfinder/pkg/":             {"pwmfinder/internal/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "pwmfinder/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "pwmfinder/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
