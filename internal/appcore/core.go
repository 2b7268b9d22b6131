// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"pwmfinder/internal/cmdutil"
	"pwmfinder/internal/engine"
	"pwmfinder/internal/motif"
	"pwmfinder/internal/ranges"
	"pwmfinder/internal/runutil"
	"pwmfinder/internal/seqsrc"
	"pwmfinder/internal/topn"
	"pwmfinder/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	// Exactly one of SeqDir and FastaFile.
	SeqDir    string
	FastaFile string
	Ranges    []string // unparsed range tokens, in scan order

	Mode  string
	Motif string
	Param int

	Top     int
	Buffer  int
	MaxOpen int

	Quiet           bool
	Verbose         bool
	NoMatchExitCode int
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error)
}

// Run builds the scorers, scans every range into one top-N collector and
// writes the retained hits. ctx is checked between ranges only.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, wf WriterFactory) int {
	began := time.Now()
	outw := bufio.NewWriter(stdout)

	fwd, err := motif.New(o.Mode, o.Motif, o.Param)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
	rev := fwd.ReverseComplement()
	cmdutil.Infof(stderr, o.Verbose, "scorer %s (k=%d)", fwd, fwd.Len())
	if wm, ok := fwd.(*motif.WeightMatrix); ok && o.Verbose {
		_ = wm.Format(stderr)
		cmdutil.Infof(stderr, o.Verbose, "reverse complement matrix:")
		_ = rev.(*motif.WeightMatrix).Format(stderr)
	}

	bufSize, warns := runutil.EffectiveBuffer(o.Buffer, fwd.Len(), engine.DefaultBufferSize)
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}

	var opener seqsrc.Opener
	if o.FastaFile != "" {
		mem, err := seqsrc.LoadFASTA(parent, o.FastaFile)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ExitCanceled
			}
			cmdutil.Errorf(stderr, "%v", err)
			return ExitIO
		}
		cmdutil.Infof(stderr, o.Verbose, "loaded %d sequence(s) from %s", mem.Refs(), o.FastaFile)
		opener = mem
	} else {
		opener = seqsrc.Dir{Path: o.SeqDir}
	}
	cache := seqsrc.NewCache(opener, runutil.EffectiveMaxOpen(o.MaxOpen))
	defer func() { _ = cache.Close() }()

	coll := topn.New(o.Top)
	sc := engine.NewScanner(fwd, rev, bufSize, coll)

	var (
		totals   runutil.Totals
		stats    engine.Stats
		failed   = map[string]bool{}
		canceled bool
	)
	for _, tok := range o.Ranges {
		if parent.Err() != nil {
			canceled = true
			break
		}
		totals.Ranges++
		r, err := ranges.Parse(tok)
		if err != nil {
			cmdutil.Warnf(stderr, o.Quiet, "skipping range: %v", err)
			totals.Skipped++
			continue
		}
		if failed[r.Ref] {
			totals.Skipped++
			continue
		}
		cmdutil.Infof(stderr, o.Verbose, "processing %s", r)
		seq, err := cache.Get(r.Ref)
		if err != nil {
			cmdutil.Warnf(stderr, o.Quiet, "reference %s: %v", r.Ref, err)
			failed[r.Ref] = true
			totals.Skipped++
			continue
		}
		st, err := sc.Scan(seq, r.Ref, r.Start0, r.End1, r.Strand, r.Label)
		stats.Add(st)
		if err != nil {
			totals.Skipped++
			if isRangeError(err) {
				cmdutil.Warnf(stderr, o.Quiet, "skipping range %s: %v", r, err)
				continue
			}
			cmdutil.Warnf(stderr, o.Quiet, "reference %s: %v", r.Ref, err)
			failed[r.Ref] = true
		}
	}

	hits := coll.Hits()
	inCh, writeErr := wf.Start(outw, 64)
	for _, h := range hits {
		inCh <- h
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return ExitIO
	}

	totals.Bases, totals.Windows, totals.Proposed = stats.Fetched, stats.Windows, stats.Proposed
	totals.Reported = len(hits)
	totals.Elapsed = time.Since(began)
	cmdutil.Infof(stderr, o.Verbose, "%s", runutil.Summary(totals))

	switch {
	case canceled:
		return ExitCanceled
	case len(hits) == 0 && len(failed) > 0:
		return ExitIO
	case len(hits) == 0:
		return o.NoMatchExitCode
	}
	return ExitOK
}

// isRangeError reports whether err concerns only the range, not the
// reference it points at.
func isRangeError(err error) bool {
	return errors.Is(err, engine.ErrNoForwardScorer) ||
		errors.Is(err, engine.ErrNoReverseScorer) ||
		errors.Is(err, engine.ErrBadStrand) ||
		errors.Is(err, engine.ErrBadRange)
}
