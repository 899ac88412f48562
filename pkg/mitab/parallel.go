package mitab

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ParseParallel does the same as ParseLines, but the data lines are
// split into one block per worker. Each worker writes into its own part
// of the result, so the order of the input is kept.
// A worker stops at its first bad row. Since blocks before it ran to
// the end, the error from the lowest block is the one ParseLines would
// have given, and that is the one we return.
func ParseParallel(ctx context.Context, lines []string, opts *Options) ([]Record, error) {
	if len(lines) == 0 {
		return nil, &SchemaError{Index: -1}
	}
	if err := CheckHeader(strings.TrimSuffix(lines[0], "\r")); err != nil {
		return nil, err
	}
	data := lines[1:]
	if len(data) == 0 {
		return nil, nil
	}
	nwork := min(opts.workers(), len(data))
	blksz := (len(data) + nwork - 1) / nwork

	recs := make([]Record, len(data))
	errs := make([]*RowError, len(data)) // only used when skipping
	blkErr := make([]*RowError, nwork)

	g, gctx := errgroup.WithContext(ctx)
	for iw := 0; iw < nwork; iw++ {
		lo := iw * blksz
		hi := min(lo+blksz, len(data))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, rerr := parseLine(data[i], i+2) // +1 for header, +1 counting from 1
				if rerr != nil {
					if opts.skip() {
						errs[i] = rerr
						continue
					}
					blkErr[iw] = rerr
					return nil
				}
				recs[i] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, e := range blkErr {
		if e != nil {
			return nil, e
		}
	}
	if !opts.skip() {
		return recs, nil
	}

	out := recs[:0] // squeeze out the bad rows, reporting them in order
	for i := range recs {
		if errs[i] != nil {
			opts.skipped(errs[i])
			continue
		}
		out = append(out, recs[i])
	}
	return out, nil
}
