// Package parallel is the public entry point for parallel associative
// reduction.
//
// Common usage:
//   - Reduce: numeric data, identity inferred from the operation
//   - ReduceWith: any element type, identity supplied by the caller
//   - ReduceTee: ReduceWith plus a per-chunk side effect for observation
//   - FoldChunks: the per-chunk partials without the final combine
//
// Chunk folds run concurrently on a bounded set of goroutines; the
// combine walks partials in chunk index order, so an associative but
// non-commutative operation still yields the left-to-right grand total.
// Calls always run to completion: the context only carries tuning options
// from package core.
package parallel
