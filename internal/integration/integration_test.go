// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pwmfinder/internal/app"
	"pwmfinder/pkg/api"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(argv ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndTopTwo(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "chr1.seq", "ACGTACAT\n")
	rf := write(t, dir, "ranges.txt", "chr1:1-8:+\n")

	code, out, errs := run(dir, rf, "consensus", "ACGT", "1", "2")
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	want := "chr1:1-8:+\tchr1\t0\t4\tchr1:1-4:+\t10000\t+\n" +
		"chr1:1-8:+\tchr1\t4\t8\tchr1:5-8:+\t7500\t+\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestEndToEndUnbounded(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "chr1.seq", "ACGTACAT")

	code, out, errs := run("--seq-dir", dir, "--mode", "consensus", "--motif", "ACGT",
		"--param", "4", "--top", "0", "--buffer", "5", "chr1:1-8:+")
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("budget k keeps every window; got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "\t10000\t+") {
		t.Fatalf("best hit first, got %q", lines[0])
	}
}

func TestEndToEndPWMFromFASTAJSON(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "ref.fa", ">s1 test\nGGAGT\nCC\n>s2\nTTTT\n")
	mat := write(t, dir, "m.mat", "# A C G T\n5 -2 1 0\n-1,2,4,-3\n0 0 -1 3\n")

	code, out, errs := run("--fasta", fa, "--mode", "pwm", "--motif", mat,
		"-o", "json", "--sort", "s1", "s2:1-4:-")
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	var got []api.HitV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(got) == 0 || got[0].Score != 0 || got[0].Ref != "s1" || got[0].Start != 2 || got[0].Strand != "+" {
		t.Fatalf("argmax AGT at s1:3-5 should score 0 and lead: %+v", got)
	}
	for _, h := range got {
		if h.Score > 0 {
			t.Fatalf("PWM scores must be <= 0: %+v", h)
		}
	}
}

func TestBadRangeSkippedAndMissingRef(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "chr1.seq", "ACGTACAT")

	code, out, errs := run("--seq-dir", dir, "--mode", "consensus", "--motif", "ACGT", "-p", "1",
		"chr1:5", "chr9", "chr1:1-8:*", "chr1")
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	if strings.Count(errs, "WARN:") != 3 {
		t.Fatalf("want three warnings, got:\n%s", errs)
	}
	if !strings.Contains(out, "chr1:1-4:+\t10000") {
		t.Fatalf("valid range still scanned:\n%s", out)
	}
}

func TestNoHitsExitCode(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "chr1.seq", "GGGG")
	code, _, _ := run("--seq-dir", dir, "--mode", "consensus", "--motif", "ACGT", "chr1")
	if code != 1 {
		t.Fatalf("want default no-match exit 1, got %d", code)
	}
	code, _, _ = run("--seq-dir", dir, "--mode", "consensus", "--motif", "ACGT", "--no-match-exit-code", "0", "chr1")
	if code != 0 {
		t.Fatalf("want 0, got %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{"--seq-dir", dir, "--mode", "hmm", "--motif", "A", "chr1"},
		{"--seq-dir", dir, "--mode", "consensus", "--motif", "ACGT", "-p", "9", "chr1"},
		{"--seq-dir", dir, "--mode", "PWM", "--motif", filepath.Join(dir, "missing.mat"), "chr1"},
		{"--seq-dir", dir, "--mode", "consensus", "--motif", "ACGT", "--ranges", filepath.Join(dir, "missing.txt")},
		{"--bogus"},
	}
	for _, argv := range cases {
		if code, _, errs := run(argv...); code != 2 {
			t.Errorf("%v: want exit 2, got %d (%s)", argv, code, errs)
		}
	}
}

func TestConfigFileAndPrintConfig(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "chr1.seq", "ACGTACAT")
	cfg := write(t, dir, "run.toml", "seq_dir = \""+filepath.ToSlash(dir)+"\"\nmode = \"consensus\"\nmotif = \"ACAT\"\nparam = 1\ntop = 1\nheader = true\n")

	code, out, errs := run("--config", cfg, "chr1:1-8:+")
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "label\t") {
		t.Fatalf("header + one hit expected:\n%s", out)
	}

	code, out, _ = run("--config", cfg, "--top", "9", "--print-config")
	if code != 0 || !strings.Contains(out, "top = 9") || !strings.Contains(out, `mode = "consensus"`) {
		t.Fatalf("print-config (%d):\n%s", code, out)
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := run("--version")
	if code != 0 || !strings.HasPrefix(out, "pwmfinder version ") {
		t.Fatalf("version: %d %q", code, out)
	}
	code, out, _ = run()
	if code != 0 || !strings.Contains(out, "--seq-dir") {
		t.Fatalf("help: %d %q", code, out)
	}
}
