package cache

import (
	"sync"
	"testing"

	"github.com/mvieira/tgd/internal/td"
)

func TestStoreUpsertReturnsExisting(t *testing.T) {
	s := NewStore()
	a := s.Upsert(1)
	b := s.Upsert(1)
	if a != b {
		t.Error("Upsert created a second record for the same id")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get(42); ok {
		t.Error("Get(42) = ok on empty store")
	}
	if _, ok := s.Snapshot(42); ok {
		t.Error("Snapshot(42) = ok on empty store")
	}
}

func TestStoreSnapshot(t *testing.T) {
	s := NewStore()
	rec := s.Upsert(7)
	rec.setFields("general", td.KindSupergroup, &td.Message{ID: 10, Date: 1700000000, Text: "hello"})

	sum, ok := s.Snapshot(7)
	if !ok {
		t.Fatal("Snapshot(7) not found")
	}
	if sum.ID != 7 || sum.Title != "general" || sum.Kind != td.KindSupergroup {
		t.Errorf("snapshot = %+v, want id=7 title=general kind=supergroup", sum)
	}
	if sum.LastMessageText != "hello" || sum.LastMessageDate != 1700000000 {
		t.Errorf("last message = %q@%d, want hello@1700000000", sum.LastMessageText, sum.LastMessageDate)
	}
}

func TestStoreSnapshotWithoutLastMessage(t *testing.T) {
	s := NewStore()
	rec := s.Upsert(7)
	rec.setFields("empty", td.KindPrivate, nil)

	sum, _ := s.Snapshot(7)
	if sum.LastMessageText != "" || sum.LastMessageDate != 0 {
		t.Errorf("last message = %q@%d, want empty", sum.LastMessageText, sum.LastMessageDate)
	}
}

func TestStoreConcurrentUpsert(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Upsert(int64(n % 5))
		}(i)
	}
	wg.Wait()

	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}
