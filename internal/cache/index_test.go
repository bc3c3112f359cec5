package cache

import "testing"

func TestIndexOrdering(t *testing.T) {
	x := NewIndex()
	x.mu.Lock()
	x.insertLocked(100, 1)
	x.insertLocked(50, 2)
	x.insertLocked(200, 3)
	x.mu.Unlock()

	got := x.TopN(10)
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("TopN returned %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopN[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIndexTieBreakByChatID(t *testing.T) {
	x := NewIndex()
	x.mu.Lock()
	x.insertLocked(100, 1)
	x.insertLocked(100, 9)
	x.insertLocked(100, 5)
	x.mu.Unlock()

	got := x.TopN(3)
	want := []int64{9, 5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopN[%d] = %d, want %d (equal orders break by descending id)", i, got[i], want[i])
		}
	}
}

func TestIndexNoDuplicates(t *testing.T) {
	x := NewIndex()
	x.mu.Lock()
	x.insertLocked(100, 1)
	x.insertLocked(100, 1)
	x.mu.Unlock()

	if got := x.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1 (same key inserted twice)", got)
	}
}

func TestIndexRemove(t *testing.T) {
	x := NewIndex()
	x.mu.Lock()
	x.insertLocked(100, 1)
	x.insertLocked(50, 2)
	x.removeLocked(100, 1)
	x.mu.Unlock()

	if got := x.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	if got := x.TopN(1); got[0] != 2 {
		t.Errorf("TopN(1) = %v, want [2]", got)
	}
}

func TestIndexTopNShorterThanAsked(t *testing.T) {
	x := NewIndex()
	x.mu.Lock()
	x.insertLocked(100, 1)
	x.mu.Unlock()

	if got := x.TopN(10); len(got) != 1 {
		t.Errorf("TopN(10) returned %d ids, want 1", len(got))
	}
	if got := x.TopN(0); got != nil {
		t.Errorf("TopN(0) = %v, want nil", got)
	}
}
