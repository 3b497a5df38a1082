package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	ChunkOptionKey  OptionKey = "chunk_options"
)

type WorkerOptions struct {
	MaxCount int
}

type ChunkOptions struct {
	MinLen int
}

// WithMaxWorkers caps the number of concurrent fold lines a reduction may
// use. Zero or negative values are ignored at read time.
func WithMaxWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// WithMinChunkLen sets a lower bound on chunk length, so small inputs are
// not spread across every core. Without this option chunks are sized by
// ceil(len/workers) alone.
func WithMinChunkLen(ctx context.Context, minLen int) context.Context {
	return context.WithValue(ctx, ChunkOptionKey, ChunkOptions{MinLen: minLen})
}

func GetMaxWorkers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func GetMinChunkLen(ctx context.Context, defaultMinLen int) int {
	options, ok := ctx.Value(ChunkOptionKey).(ChunkOptions)
	if ok && options.MinLen > 0 {
		return options.MinLen
	}
	return defaultMinLen
}
