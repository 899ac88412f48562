package mitabio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

// MITAB lines from big databases can be long. The bufio default of
// 64k is not enough for some IntAct lines.
const (
	initBufSize = 64 * 1024
	maxLineLen  = 16 * 1024 * 1024
)

// Lines gives the lines of r, without line endings. Once the sequence
// is finished, the second function says if reading went wrong.
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, initBufSize), maxLineLen)
	var err error
	n := 0
	seq := func(yield func(string) bool) {
		defer func() { // The consumer may stop on a broken last line before we see the error
			if e := sc.Err(); e != nil {
				err = fmt.Errorf("reading after line %d: %w", n, e)
			}
		}()
		for sc.Scan() {
			n++
			if !yield(sc.Text()) {
				return
			}
		}
	}
	return seq, func() error { return err }
}

// ReadAll parses everything from r. With more than one worker, all the
// lines are read first and parsed in parallel.
// A read error wins over a parse error, since a parse error on a
// truncated line is only a symptom.
func ReadAll(ctx context.Context, r io.Reader, opts *mitab.Options) ([]mitab.Record, error) {
	seq, readErr := Lines(r)
	if opts == nil || opts.Workers <= 1 {
		recs, err := mitab.ParseLines(seq, opts)
		if rerr := readErr(); rerr != nil {
			return nil, rerr
		}
		return recs, err
	}
	lines := slices.Collect(seq)
	if err := readErr(); err != nil {
		return nil, err
	}
	return mitab.ParseParallel(ctx, lines, opts)
}

// ReadFile opens, maybe decompresses, and parses a file.
// The name "-" means standard input.
func ReadFile(ctx context.Context, fname string, opts *mitab.Options) ([]mitab.Record, error) {
	var r io.Reader
	if fname == "-" {
		var err error
		if r, err = WrapMaybe(os.Stdin); err != nil {
			return nil, fmt.Errorf("standard input: %w", err)
		}
	} else {
		f, err := Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	recs, err := ReadAll(ctx, r, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return recs, nil
}
