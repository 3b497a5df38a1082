package identity

import (
	"github.com/jon429r/parallel-operations/pkg/reduce"
)

// Infer derives a neutral element for op by probing it with a fixed pair
// of equal operands and matching the result against the signatures of the
// four arithmetic shapes. The result depends only on op's behaviour at
// (8, 8).
//
// Infer never fails, but it only guarantees a correct identity for
// addition-, multiplication-, subtraction- and division-shaped operations.
// For anything else (max, min, bitwise, ...) it falls back to T's zero
// value; supply the identity explicitly via parallel.ReduceWith instead.
func Infer[T reduce.Numeric](op reduce.Operation[T]) T {
	probe := op(8, 8)
	switch probe {
	case 16:
		return 0 // addition-like
	case 64:
		return 1 // multiplication-like
	case 0:
		return 0 // subtraction-like
	case 1:
		return 1 // division-like
	default:
		var zero T
		return zero
	}
}
