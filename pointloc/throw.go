package pointloc

import "github.com/pkg/errors"

// Degenerate input is rejected with an error before anything is touched. A
// violated invariant found after that point means the decomposition itself is
// broken, and there is no sane way to continue: those panic.

func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
