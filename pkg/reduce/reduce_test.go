package reduce

import (
	"testing"
)

func TestFold_LeftToRight(t *testing.T) {
	t.Parallel()

	// Subtraction is order sensitive, so the fold order is observable.
	got := Fold([]int{1, 2, 3}, 100, func(a, b int) int { return a - b })
	if got != 94 {
		t.Errorf("Expected ((100-1)-2)-3 = 94, got %d", got)
	}
}

func TestFold_EmptyReturnsSeed(t *testing.T) {
	t.Parallel()

	got := Fold(nil, 42, func(a, b int) int { return a + b })
	if got != 42 {
		t.Errorf("Expected seed 42 for empty input, got %d", got)
	}
}

func TestPartial_Accessors(t *testing.T) {
	t.Parallel()

	p := NewPartial(2, 10, 15, 99)

	if p.Chunk() != 2 {
		t.Errorf("Expected chunk 2, got %d", p.Chunk())
	}
	if lo, hi := p.Bounds(); lo != 10 || hi != 15 {
		t.Errorf("Expected bounds [10, 15), got [%d, %d)", lo, hi)
	}
	if p.Len() != 5 {
		t.Errorf("Expected length 5, got %d", p.Len())
	}
	if p.Value() != 99 {
		t.Errorf("Expected value 99, got %d", p.Value())
	}
	if p.CreatedAt().IsZero() {
		t.Error("Expected non-zero creation time")
	}
}

func TestPartial_DistinctIds(t *testing.T) {
	t.Parallel()

	a := NewPartial(0, 0, 1, 1)
	b := NewPartial(0, 0, 1, 1)
	if a.Id() == b.Id() {
		t.Error("Expected distinct partial ids")
	}
}
