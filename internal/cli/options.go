// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"pwmfinder/internal/cliutil"
	"pwmfinder/internal/config"
)

// Defaults shared by flags and the config layer.
const (
	DefaultTop     = 10
	DefaultBuffer  = 1024
	DefaultMaxOpen = 4
	DefaultOutput  = "text"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqDir     string
	FastaFile  string
	RangeFile  string
	Ranges     []string // positional range tokens
	ConfigFile string

	// Motif
	Mode  string
	Motif string
	Param int

	// Search
	Top     int
	Buffer  int
	MaxOpen int

	// Output
	Output          string
	Header          bool
	Sort            bool
	NoMatchExitCode int
	PrintConfig     bool

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// Config returns the file-backed subset of o.
func (o Options) Config() config.Config {
	return config.Config{
		SeqDir: o.SeqDir, Fasta: o.FastaFile, Ranges: o.RangeFile,
		Mode: o.Mode, Motif: o.Motif, Param: o.Param,
		Top: o.Top, Buffer: o.Buffer, Output: o.Output,
		Header: o.Header, Sort: o.Sort, MaxOpen: o.MaxOpen, Quiet: o.Quiet,
	}
}

// aliases maps short flag names to their long form.
var aliases = map[string]string{
	"d": "seq-dir", "r": "ranges", "m": "mode", "p": "param",
	"n": "top", "o": "output", "q": "quiet", "v": "version",
}

func register(fs *flag.FlagSet, o *Options) *bool {
	var help bool

	fs.StringVar(&o.SeqDir, "seq-dir", "", "directory of <ref>.seq files")
	fs.StringVar(&o.SeqDir, "d", "", "alias of --seq-dir")
	fs.StringVar(&o.FastaFile, "fasta", "", "FASTA file (.gz ok, '-' for stdin)")
	fs.StringVar(&o.RangeFile, "ranges", "", "range list file")
	fs.StringVar(&o.RangeFile, "r", "", "alias of --ranges")
	fs.StringVar(&o.ConfigFile, "config", "", "TOML config file")

	fs.StringVar(&o.Mode, "mode", "", "consensus | PWM")
	fs.StringVar(&o.Mode, "m", "", "alias of --mode")
	fs.StringVar(&o.Motif, "motif", "", "consensus sequence or matrix file")
	fs.IntVar(&o.Param, "param", 0, "mismatches (consensus) or minimum score (PWM)")
	fs.IntVar(&o.Param, "p", 0, "alias of --param")

	fs.IntVar(&o.Top, "top", DefaultTop, "hits to keep (0=unbounded)")
	fs.IntVar(&o.Top, "n", DefaultTop, "alias of --top")
	fs.IntVar(&o.Buffer, "buffer", DefaultBuffer, "bases fetched per read")
	fs.IntVar(&o.MaxOpen, "max-open", DefaultMaxOpen, "sequence files kept open")

	fs.StringVar(&o.Output, "output", DefaultOutput, "output: text | json | jsonl")
	fs.StringVar(&o.Output, "o", DefaultOutput, "alias of --output")
	fs.BoolVar(&o.Header, "header", false, "print a header line")
	fs.BoolVar(&o.Sort, "sort", false, "sort output deterministically")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no hits found")
	fs.BoolVar(&o.PrintConfig, "print-config", false, "print effective settings as TOML")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "progress on stderr")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")
	return &help
}

// ParseArgs registers and parses all flags, merges the config file and
// returns a validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	help := register(fs, &opt)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if *help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	set := cliutil.SetFlags(fs, aliases)
	if opt.ConfigFile != "" {
		cf, err := config.Load(opt.ConfigFile)
		if err != nil {
			return opt, err
		}
		Merge(&opt, set, cf)
	} else if legacy(set, posArgs) {
		opt.SeqDir, opt.RangeFile, opt.Mode, opt.Motif = posArgs[0], posArgs[1], posArgs[2], posArgs[3]
		opt.Param, _ = strconv.Atoi(posArgs[4])
		opt.Top, _ = strconv.Atoi(posArgs[5])
		posArgs = nil
	}
	opt.Ranges = posArgs

	if opt.PrintConfig {
		return opt, nil
	}
	return opt, Validate(&opt)
}

// legacy reports whether argv is the bare six-argument form
// "seqFolder rangeFile mode motif param topN".
func legacy(set map[string]bool, pos []string) bool {
	if len(pos) != 6 {
		return false
	}
	for _, n := range []string{"seq-dir", "fasta", "ranges", "mode", "motif", "param", "top"} {
		if set[n] {
			return false
		}
	}
	if _, err := strconv.Atoi(pos[4]); err != nil {
		return false
	}
	_, err := strconv.Atoi(pos[5])
	return err == nil
}

// Merge copies values from cf into o for every option that was not set on
// the command line. set holds canonical (long) flag names.
func Merge(o *Options, set map[string]bool, cf *config.File) {
	take := func(flagName, key string) bool { return !set[flagName] && cf.Has(key) }

	if take("seq-dir", "seq_dir") {
		o.SeqDir = cf.SeqDir
	}
	if take("fasta", "fasta") {
		o.FastaFile = cf.Fasta
	}
	if take("ranges", "ranges") {
		o.RangeFile = cf.Ranges
	}
	if take("mode", "mode") {
		o.Mode = cf.Mode
	}
	if take("motif", "motif") {
		o.Motif = cf.Motif
	}
	if take("param", "param") {
		o.Param = cf.Param
	}
	if take("top", "top") {
		o.Top = cf.Top
	}
	if take("buffer", "buffer") {
		o.Buffer = cf.Buffer
	}
	if take("output", "output") {
		o.Output = cf.Output
	}
	if take("header", "header") {
		o.Header = cf.Header
	}
	if take("sort", "sort") {
		o.Sort = cf.Sort
	}
	if take("max-open", "max_open") {
		o.MaxOpen = cf.MaxOpen
	}
	if take("quiet", "quiet") {
		o.Quiet = cf.Quiet
	}
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	switch {
	case o.SeqDir != "" && o.FastaFile != "":
		return errors.New("--seq-dir conflicts with --fasta")
	case o.SeqDir == "" && o.FastaFile == "":
		return errors.New("provide --seq-dir or --fasta")
	}
	if o.RangeFile == "" && len(o.Ranges) == 0 {
		return errors.New("provide --ranges or at least one range argument")
	}
	if o.Mode == "" {
		return errors.New("--mode is required (consensus | PWM)")
	}
	if o.Motif == "" {
		return errors.New("--motif is required")
	}
	if o.Top < 0 {
		return errors.New("--top must be ≥ 0")
	}
	if o.Buffer < 0 {
		return errors.New("--buffer must be ≥ 0")
	}
	if o.MaxOpen < 0 {
		return errors.New("--max-open must be ≥ 0")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
