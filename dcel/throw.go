package dcel

import "github.com/pkg/errors"

// Threading errors through every edge and face manipulation would bloat the
// signatures without helping anyone: a topology violation means the structure
// is broken, not that the input was bad. Those cases panic instead. Bad input
// is reported through ordinary error returns before anything is mutated.

func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
