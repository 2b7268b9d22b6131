// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet { return NewFlagSet("test") }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestFlagsAndRangeArgs(t *testing.T) {
	o := mustParse(t,
		"--seq-dir", "seqs",
		"chr1:1-100:+",
		"--mode", "consensus", "--motif", "TATAAA", "-p", "1",
		"chr2",
	)
	if o.SeqDir != "seqs" || o.Mode != "consensus" || o.Motif != "TATAAA" || o.Param != 1 {
		t.Errorf("bad parse %+v", o)
	}
	if len(o.Ranges) != 2 || o.Ranges[0] != "chr1:1-100:+" || o.Ranges[1] != "chr2" {
		t.Errorf("ranges = %v", o.Ranges)
	}
	if o.Top != DefaultTop || o.Buffer != DefaultBuffer || o.Output != "text" || o.NoMatchExitCode != 1 {
		t.Errorf("defaults not applied: %+v", o)
	}
}

func TestLegacyPositionalForm(t *testing.T) {
	o := mustParse(t, "hg19", "ranges.txt", "PWM", "ctcf.mat", "-800", "5")
	if o.SeqDir != "hg19" || o.RangeFile != "ranges.txt" || o.Mode != "PWM" || o.Motif != "ctcf.mat" {
		t.Errorf("legacy mapping wrong: %+v", o)
	}
	if o.Param != -800 || o.Top != 5 || len(o.Ranges) != 0 {
		t.Errorf("legacy numbers wrong: param=%d top=%d ranges=%v", o.Param, o.Top, o.Ranges)
	}
}

func TestSixRangeTokensAreNotLegacy(t *testing.T) {
	o := mustParse(t, "--seq-dir", "d", "--mode", "consensus", "--motif", "ACGT",
		"a", "b", "c", "d", "1", "2")
	if o.RangeFile != "" || len(o.Ranges) != 6 {
		t.Errorf("explicit flags must disable legacy form: %+v", o)
	}
}

func TestConfigMerge(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.toml")
	data := "seq_dir = \"/cfg/seqs\"\nmode = \"PWM\"\nmotif = \"m.mat\"\ntop = 50\nparam = -100\n"
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "--config", cfg, "-n", "3", "chr1")
	if o.SeqDir != "/cfg/seqs" || o.Mode != "PWM" || o.Param != -100 {
		t.Errorf("config values not applied: %+v", o)
	}
	if o.Top != 3 {
		t.Errorf("flag must win over config: top=%d", o.Top)
	}
	if o.Buffer != DefaultBuffer {
		t.Errorf("absent key must keep default: buffer=%d", o.Buffer)
	}
}

func TestConfigMissingFile(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--config", filepath.Join(t.TempDir(), "nope.toml")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %v %+v", err, o)
	}
}

func TestValidationErrors(t *testing.T) {
	base := []string{"--seq-dir", "d", "--mode", "consensus", "--motif", "ACGT"}
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"--mode", "consensus", "--motif", "A", "chr1"}, "--seq-dir or --fasta"},
		{"both sources", append([]string{"--fasta", "x.fa", "chr1"}, base...), "conflicts"},
		{"no ranges", base, "--ranges"},
		{"no mode", []string{"--seq-dir", "d", "--motif", "A", "chr1"}, "--mode"},
		{"no motif", []string{"--seq-dir", "d", "--mode", "PWM", "chr1"}, "--motif"},
		{"neg top", append([]string{"--top", "-1", "chr1"}, base...), "--top"},
		{"bad output", append([]string{"-o", "xml", "chr1"}, base...), "--output"},
		{"exit code", append([]string{"--no-match-exit-code", "300", "chr1"}, base...), "no-match-exit-code"},
	}
	for _, tt := range tests {
		_, err := ParseArgs(newFS(), tt.args)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: want error containing %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestPrintConfigSkipsValidation(t *testing.T) {
	o := mustParse(t, "--print-config", "--top", "7")
	if !o.PrintConfig || o.Config().Top != 7 {
		t.Fatalf("print-config: %+v", o)
	}
}
