package mitab_test

import (
	"testing"

	"go.uber.org/goleak"
)

// ParseParallel starts goroutines. None may be left when the tests end,
// even after a cancelled context or an error in one block.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
