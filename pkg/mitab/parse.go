package mitab

import (
	"errors"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Options contains the choices passed in from the caller. A nil
// *Options is the same as the zero value: stop at the first bad row,
// one worker, no logging.
type Options struct {
	SkipBadRows bool              // Log and jump over bad rows instead of stopping
	Workers     int               // Used by ParseParallel. Less than 1 means 1.
	Logger      *zap.Logger       // nil means no logging
	OnSkip      func(e *RowError) // Called for each skipped row, if not nil
}

func (o *Options) skip() bool { return o != nil && o.SkipBadRows }

func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// skipped reports a row we are jumping over.
func (o *Options) skipped(e *RowError) {
	o.logger().Warn("skipping bad row",
		zap.Int("line", e.Line),
		zap.Int("column", e.Column),
		zap.Error(e.Err))
	if o.OnSkip != nil {
		o.OnSkip(e)
	}
}

// parseLine is ParseRow, but with the line number filled in
// in the record or error.
func parseLine(line string, n int) (Record, *RowError) {
	r, err := ParseRow(strings.TrimSuffix(line, "\r"))
	if err != nil {
		var rerr *RowError
		if !errors.As(err, &rerr) { // Cannot happen, ParseRow only makes RowErrors
			rerr = &RowError{Err: err}
		}
		rerr.Line = n
		return Record{}, rerr
	}
	r.Line = n
	return r, nil
}

// All checks the header, then yields one record per data line, in
// order. If the header is wrong, we yield the error and nothing else.
// Unless opts says to skip bad rows, the first bad row is yielded as
// an error and is the last thing yielded.
// Like the lines it reads, the sequence can only be used once.
func All(lines iter.Seq[string], opts *Options) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		n := 0
		for line := range lines {
			n++
			if n == 1 {
				if err := CheckHeader(strings.TrimSuffix(line, "\r")); err != nil {
					yield(Record{}, err)
					return
				}
				continue
			}
			r, rerr := parseLine(line, n)
			if rerr != nil {
				if opts.skip() {
					opts.skipped(rerr)
					continue
				}
				yield(Record{}, rerr)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
		if n == 0 {
			yield(Record{}, &SchemaError{Index: -1})
		}
	}
}

// ParseLines collects everything from All. On an error, no records are
// returned.
func ParseLines(lines iter.Seq[string], opts *Options) ([]Record, error) {
	var recs []Record
	for r, err := range All(lines, opts) {
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, nil
}
