// 3 Aug 2020

// Package mitabio gets MITAB lines from files and streams. Files are
// memory mapped. If a file or stream starts with the gzip magic number
// we read through a decompressor, so callers do not have to know.
package mitabio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

var gzMagic = []byte{0x1f, 0x8b}

// File is what Open returns. Close unmaps the data, closes the
// decompressor if there is one, then closes the file.
type File struct {
	fp   *os.File
	mm   mmap.MMap
	zrdr *gzip.Reader
	rdr  io.Reader
}

// Open maps a file and decides if it is compressed.
// A zero length file cannot be mapped, so we read it like any other
// file. It will give us no lines, which the parser complains about.
func Open(fname string) (*File, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	f := &File{fp: fp}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.Size() == 0 {
		f.rdr = fp
		return f, nil
	}
	if f.mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		fp.Close()
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	if !bytes.HasPrefix(f.mm, gzMagic) {
		f.rdr = bytes.NewReader(f.mm)
		return f, nil
	}
	if f.zrdr, err = gzip.NewReader(bytes.NewReader(f.mm)); err != nil {
		f.Close()
		return nil, fmt.Errorf("gzip header in %s: %w", fname, err)
	}
	f.rdr = f.zrdr
	return f, nil
}

// Read makes sure we read from the compressed stream and
// not the underlying bytes.
func (f *File) Read(p []byte) (int, error) { return f.rdr.Read(p) }

func (f *File) Close() error {
	var errs []error
	if f.zrdr != nil {
		errs = append(errs, f.zrdr.Close())
	}
	if f.mm != nil {
		errs = append(errs, f.mm.Unmap())
	}
	errs = append(errs, f.fp.Close())
	return errors.Join(errs...)
}

// WrapMaybe is for streams we cannot map, like standard input. It peeks
// at the start and puts a decompressor in front if necessary.
func WrapMaybe(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(magic, gzMagic) {
		return br, nil
	}
	return gzip.NewReader(br)
}
