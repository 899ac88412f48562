package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/mitab/pkg/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

func TestFailAfter(t *testing.T) {
	for _, n := range []int{0, 1, 10, 39} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), n)
		got, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Errorf("fail after %d: want ErrBroken got %v", n, err)
		}
		if string(got) != longstring[:n] {
			t.Errorf("fail after %d: got %q", n, got)
		}
		if rdr.NByte() != n {
			t.Errorf("fail after %d: counted %d bytes", n, rdr.NByte())
		}
	}
}

func TestNeverFail(t *testing.T) {
	for _, n := range []int{-1, len(longstring) + 1} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), n)
		got, err := io.ReadAll(rdr)
		if err != nil || string(got) != longstring {
			t.Errorf("budget %d: got %q, %v", n, got, err)
		}
	}
}

func TestZeroFile(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), -1)
	rdr.SetZeroFile(true)
	tmp := make([]byte, len(longstring))
	n, err := rdr.Read(tmp)
	if n > 0 {
		t.Error("should have received zero bytes")
	}
	if err != io.EOF {
		t.Errorf("Should have received EOF")
	}
	if err := rdr.Close(); err != nil {
		t.Error("close of non-closer", err)
	}
}
