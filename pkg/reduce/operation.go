// Package reduce defines the shared types for parallel associative
// reduction: the binary Operation, the Partial record produced by chunk
// workers, and the sequential Fold baseline.
//
// CAVEATS:
//   - Operations must be pure. The same operation value is invoked
//     concurrently from several goroutines; captured mutable state is
//     forbidden.
//   - Operations are assumed associative. Commutativity is not required as
//     long as the caller relies on the chunk-order combine guarantee.
package reduce

// Operation combines two values of T into one. It must be stateless and
// free of side effects.
type Operation[T any] func(a, b T) T

// Numeric covers the types whose identity element can be inferred by
// probing an operation: constructible from small integer constants,
// comparable, and zero-valued by default.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Fold accumulates data left to right starting from seed:
// acc = op(acc, element) in element order.
func Fold[T any](data []T, seed T, op Operation[T]) T {
	acc := seed
	for _, v := range data {
		acc = op(acc, v)
	}
	return acc
}
