// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pwmfinder/internal/appcore"
	"pwmfinder/internal/cli"
	"pwmfinder/internal/cmdutil"
	"pwmfinder/internal/ranges"
	"pwmfinder/internal/version"
	"pwmfinder/internal/writers"
)

// flush finishes a help/version style write and maps it to an exit code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("pwmfinder")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pwmfinder version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}
	if opts.PrintConfig {
		if err := opts.Config().Write(outw); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return appcore.ExitIO
		}
		return flush(outw, stderr, 0)
	}

	toks := opts.Ranges
	if opts.RangeFile != "" {
		fileToks, err := ranges.ReadFile(opts.RangeFile)
		if err != nil {
			cmdutil.Errorf(stderr, "range file: %v", err)
			return appcore.ExitUsage
		}
		toks = append(toks, fileToks...)
	}
	if len(toks) == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no ranges to scan")
	}

	coreOpts := appcore.Options{
		SeqDir: opts.SeqDir, FastaFile: opts.FastaFile, Ranges: toks,
		Mode: opts.Mode, Motif: opts.Motif, Param: opts.Param,
		Top: opts.Top, Buffer: opts.Buffer, MaxOpen: opts.MaxOpen,
		Quiet: opts.Quiet, Verbose: opts.Verbose, NoMatchExitCode: opts.NoMatchExitCode,
	}
	writer := appcore.NewHitWriterFactory(opts.Output, opts.Sort, opts.Header)
	return appcore.Run(parent, stdout, stderr, coreOpts, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
