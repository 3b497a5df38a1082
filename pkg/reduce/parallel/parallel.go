package parallel

import (
	"context"
	"runtime"

	"github.com/jon429r/parallel-operations/pkg/reduce"
	"github.com/jon429r/parallel-operations/pkg/reduce/core"
	"github.com/jon429r/parallel-operations/pkg/reduce/identity"
)

// Reduce folds data to a single value with op, running chunk folds in
// parallel. The fold seed is inferred from op (see package identity), so
// addition- and multiplication-shaped operations both reduce correctly.
//
// An empty input returns T's zero value and a singleton returns its only
// element; neither engages inference or goroutines. For an associative op
// with a correct identity the result equals the sequential left-to-right
// fold of the whole input. A misinferred identity yields a silently wrong
// result, not an error; use ReduceWith when the identity is not
// arithmetic.
func Reduce[T reduce.Numeric](ctx context.Context, data []T, op reduce.Operation[T]) T {
	if len(data) == 0 {
		var zero T
		return zero
	}
	if len(data) == 1 {
		return data[0]
	}
	return ReduceWith(ctx, data, op, identity.Infer(op))
}

// ReduceWith is Reduce with a caller-supplied identity, usable for any T.
// An empty input returns seed; a singleton returns its only element.
func ReduceWith[T any](ctx context.Context, data []T, op reduce.Operation[T], seed T) T {
	return ReduceTee(ctx, data, op, seed, nil)
}

// ReduceTee is ReduceWith with a side effect: tee receives every Partial
// in chunk order before the combine. A nil tee is ignored. Like op, tee
// must not mutate shared state.
func ReduceTee[T any](ctx context.Context, data []T, op reduce.Operation[T], seed T, tee func(reduce.Partial[T])) T {
	if len(data) == 0 {
		return seed
	}
	if len(data) == 1 {
		return data[0]
	}

	acc := seed
	for _, p := range FoldChunks(ctx, data, op, seed) {
		if tee != nil {
			tee(p)
		}
		acc = op(acc, p.Value())
	}
	return acc
}

// FoldChunks partitions data, folds every chunk concurrently from seed
// and returns the partials in chunk index order, without combining them.
//
// The worker count comes from core.WithMaxWorkers when set, otherwise
// runtime.NumCPU, clamped to [1, len(data)]. The call blocks until every
// chunk fold has completed; the context carries tuning options only and
// does not cancel a running reduction.
func FoldChunks[T any](ctx context.Context, data []T, op reduce.Operation[T], seed T) []reduce.Partial[T] {
	workers := core.GetMaxWorkers(ctx, runtime.NumCPU())
	if workers < 1 {
		workers = 1
	}
	if workers > len(data) {
		workers = len(data)
	}

	chunks := core.Chunks(data, workers, core.GetMinChunkLen(ctx, 1))
	out := core.RunLines(core.ToChanJobs(chunks), seed, op, min(workers, len(chunks)))
	return core.FromChanPartials(out, len(chunks))
}
