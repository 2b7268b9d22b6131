// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"pwmfinder/internal/version"
)

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – top-N motif search over genomic ranges\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --seq-dir DIR --mode consensus --motif TATAAA --param 1 --top 20 chr1:1000-5000:+\n", name)
		fmt.Fprintf(out, "  %s --fasta ref.fa --ranges ranges.txt --mode PWM --motif ctcf.mat --param -800\n", name)
		fmt.Fprintf(out, "  %s seqFolder rangeFile mode motif param topN\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -d, --seq-dir dir           Directory of <ref>.seq files [*]")
		fmt.Fprintln(out, "      --fasta file            FASTA file (.gz ok, '-' for STDIN) [*]")
		fmt.Fprintln(out, "  -r, --ranges file           Range list (ref[:start1-end1[:strand]] tokens)")
		fmt.Fprintln(out, "      RANGE...                Range tokens given as arguments")
		fmt.Fprintln(out, "      --config file           TOML file with defaults for any long option")

		fmt.Fprintln(out, "\nMotif:")
		fmt.Fprintln(out, "  -m, --mode string           consensus | PWM")
		fmt.Fprintln(out, "      --motif string          consensus sequence, or matrix file for PWM")
		fmt.Fprintf(out, "  -p, --param int             mismatches (consensus) or minimum score (PWM, 0=none) [%s]\n", def("param"))

		fmt.Fprintln(out, "\nSearch:")
		fmt.Fprintf(out, "  -n, --top int               Hits to keep (0=unbounded) [%s]\n", def("top"))
		fmt.Fprintf(out, "      --buffer int            Bases fetched per read [%s]\n", def("buffer"))
		fmt.Fprintf(out, "      --max-open int          Sequence files kept open [%s]\n", def("max-open"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --header                Print a header line (text) [%s]\n", def("header"))
		fmt.Fprintf(out, "      --sort                  Sort by score, then coordinates [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no hits found [%s]\n", def("no-match-exit-code"))
		fmt.Fprintln(out, "      --print-config          Print the effective settings as TOML and exit")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Progress and summary on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
