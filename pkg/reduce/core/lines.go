package core

import (
	"sync"

	"github.com/jon429r/parallel-operations/pkg/reduce"
)

// FoldJob describes one chunk handed to a fold line: its index within the
// partition, the offset of its first element in the original input, and
// the chunk view itself.
type FoldJob[T any] struct {
	Chunk int
	Lo    int
	Data  []T
}

// ToChanJobs feeds the chunks of a partition into a job channel, tagged
// with their index and element offset.
func ToChanJobs[T any](chunks [][]T) <-chan FoldJob[T] {
	jobs := make(chan FoldJob[T])

	go func() {
		defer close(jobs)

		lo := 0
		for i, chunk := range chunks {
			jobs <- FoldJob[T]{Chunk: i, Lo: lo, Data: chunk}
			lo += len(chunk)
		}
	}()

	return jobs
}

// RunLines starts the given number of fold lines over the job channel.
// Each line folds its jobs left to right from seed and emits one Partial
// per job. The output channel closes once every line has drained.
//
// Lines run to completion; there is no cancellation path. Each line owns
// its accumulator and only reads the shared input.
func RunLines[T any](jobs <-chan FoldJob[T], seed T, op reduce.Operation[T], lines int) <-chan reduce.Partial[T] {
	out := make(chan reduce.Partial[T])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go line(jobs, out, seed, op, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func line[T any](jobs <-chan FoldJob[T], out chan<- reduce.Partial[T], seed T, op reduce.Operation[T], wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		acc := reduce.Fold(job.Data, seed, op)
		out <- reduce.NewPartial(job.Chunk, job.Lo, job.Lo+len(job.Data), acc)
	}
}

// FromChanPartials collects count partials from out and orders them by
// chunk index, regardless of which line finished first.
func FromChanPartials[T any](out <-chan reduce.Partial[T], count int) []reduce.Partial[T] {
	partials := make([]reduce.Partial[T], count)
	for p := range out {
		partials[p.Chunk()] = p
	}
	return partials
}
