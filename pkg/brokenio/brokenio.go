// brokenio is a wrapper around an io.Reader that goes wrong on
// purpose, so we can check that readers pass errors on rather than
// returning half a file as if nothing happened.
// Typical use: You have a reader over a test file. You write
// reader = brokenio.NewReader(reader, n) and the first n bytes come
// through as before. After that, every Read fails.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what Read returns once the byte budget is used up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdr lets failAfter bytes through, then fails.
// If zeroFile is set, the first read returns io.EOF and no data, which
// is what one sees on a zero length file.
type BrknRdr struct {
	rdr_orig  io.Reader
	failAfter int
	nByte     int
	zeroFile  bool
	nCalled   int
}

// NewReader returns a new Reader - a wrapper around the old one.
// A negative failAfter means never fail.
func NewReader(rIn io.Reader, failAfter int) *BrknRdr {
	return &BrknRdr{rdr_orig: rIn, failAfter: failAfter}
}

// SetZeroFile makes the reader look like an empty file.
func (r *BrknRdr) SetZeroFile(z bool) { r.zeroFile = z }

// NByte is how much data has gone through.
func (r *BrknRdr) NByte() int { return r.nByte }

// Read passes on at most the bytes left in the budget.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	r.nCalled++
	if r.zeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	if r.failAfter < 0 {
		n, err = r.rdr_orig.Read(p)
		r.nByte += n
		return n, err
	}
	left := r.failAfter - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the wrapped reader if it can be closed.
func (r *BrknRdr) Close() error {
	if c, ok := r.rdr_orig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
