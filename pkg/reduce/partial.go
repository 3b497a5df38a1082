package reduce

import (
	"time"

	"github.com/google/uuid"
)

// Partial is the outcome of folding one chunk of the input. It records
// which chunk it came from and which half-open element range [lo, hi) the
// chunk covered, so partials can be combined in chunk order and traced
// individually.
type Partial[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	chunk     int
	lo        int
	hi        int
	value     T
}

func NewPartial[T any](chunk, lo, hi int, value T) Partial[T] {
	return Partial[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		chunk:     chunk,
		lo:        lo,
		hi:        hi,
		value:     value,
	}
}

func (p Partial[T]) Value() T {
	return p.value
}

// Chunk returns the chunk index within the original partition.
func (p Partial[T]) Chunk() int {
	return p.chunk
}

// Bounds returns the half-open element range [lo, hi) the partial covers.
func (p Partial[T]) Bounds() (lo, hi int) {
	return p.lo, p.hi
}

func (p Partial[T]) Len() int {
	return p.hi - p.lo
}

// CreatedAt time of the fold completion (UTC).
func (p Partial[T]) CreatedAt() time.Time {
	return p.createdAt
}

func (p Partial[T]) Id() uuid.UUID {
	return p.id
}
