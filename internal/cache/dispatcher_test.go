package cache

import (
	"testing"

	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

func newTestDispatcher() (*Store, *Index, *Dispatcher) {
	store := NewStore()
	index := NewIndex()
	return store, index, NewDispatcher(store, index, zap.NewNop())
}

func mainPos(order uint64) td.ChatPosition {
	return td.ChatPosition{List: td.ListMain, Order: order}
}

func TestDispatcherNewChat(t *testing.T) {
	store, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{
		ID:        1,
		Title:     "alpha",
		Kind:      td.KindPrivate,
		Positions: []td.ChatPosition{mainPos(100)},
	}})

	sum, ok := store.Snapshot(1)
	if !ok {
		t.Fatal("chat 1 not in store")
	}
	if sum.Title != "alpha" {
		t.Errorf("title = %q, want alpha", sum.Title)
	}
	if index.Len() != 1 {
		t.Errorf("index size = %d, want 1", index.Len())
	}
}

func TestDispatcherNewChatZeroOrderNotIndexed(t *testing.T) {
	store, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{
		ID:        1,
		Title:     "hidden",
		Positions: []td.ChatPosition{mainPos(0)},
	}})

	if _, ok := store.Get(1); !ok {
		t.Error("chat 1 should be stored")
	}
	if index.Len() != 0 {
		t.Errorf("index size = %d, want 0 (zero order means not in list)", index.Len())
	}
}

func TestDispatcherNewChatOverwrite(t *testing.T) {
	store, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Title: "old", Positions: []td.ChatPosition{mainPos(100)}}})
	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Title: "new", Positions: []td.ChatPosition{mainPos(250)}}})

	sum, _ := store.Snapshot(1)
	if sum.Title != "new" {
		t.Errorf("title = %q, want new", sum.Title)
	}
	// The old index entry must be re-merged away, not duplicated.
	if index.Len() != 1 {
		t.Errorf("index size = %d, want 1", index.Len())
	}
}

func TestDispatcherTitleChanged(t *testing.T) {
	store, _, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Title: "before"}})
	d.Apply(&td.UpdateChatTitle{ChatID: 1, Title: "after"})

	sum, _ := store.Snapshot(1)
	if sum.Title != "after" {
		t.Errorf("title = %q, want after", sum.Title)
	}
}

func TestDispatcherUnknownChatIgnored(t *testing.T) {
	store, index, d := newTestDispatcher()

	// None of these should create a record or panic.
	d.Apply(&td.UpdateChatTitle{ChatID: 9, Title: "ghost"})
	d.Apply(&td.UpdateChatLastMessage{ChatID: 9, LastMessage: &td.Message{Text: "x"}})
	d.Apply(&td.UpdateChatPosition{ChatID: 9, Position: mainPos(10)})

	if store.Len() != 0 {
		t.Errorf("store size = %d, want 0", store.Len())
	}
	if index.Len() != 0 {
		t.Errorf("index size = %d, want 0", index.Len())
	}
}

func TestDispatcherLastMessageReplacesPositions(t *testing.T) {
	store, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{mainPos(100)}}})
	d.Apply(&td.UpdateChatLastMessage{
		ChatID:      1,
		LastMessage: &td.Message{ID: 5, Date: 123, Text: "latest"},
		Positions:   []td.ChatPosition{mainPos(300)},
	})

	sum, _ := store.Snapshot(1)
	if sum.LastMessageText != "latest" {
		t.Errorf("last message = %q, want latest", sum.LastMessageText)
	}
	if index.Len() != 1 {
		t.Fatalf("index size = %d, want 1", index.Len())
	}
	if got := index.TopN(1); got[0] != 1 {
		t.Errorf("TopN(1) = %v, want [1]", got)
	}
}

func TestDispatcherPositionChangedMerges(t *testing.T) {
	_, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{
		mainPos(100),
		{List: td.ListArchive, Order: 77},
	}}})
	d.Apply(&td.UpdateChatPosition{ChatID: 1, Position: mainPos(500)})

	if index.Len() != 1 {
		t.Fatalf("index size = %d, want 1", index.Len())
	}

	// Archive position must be carried over untouched.
	rec, _ := d.store.Get(1)
	rec.mu.Lock()
	var archive int
	for _, p := range rec.positions {
		if p.List == td.ListArchive {
			archive++
		}
	}
	rec.mu.Unlock()
	if archive != 1 {
		t.Errorf("archive positions = %d, want 1", archive)
	}
}

func TestDispatcherPositionChangedIdempotent(t *testing.T) {
	_, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{mainPos(100)}}})
	upd := &td.UpdateChatPosition{ChatID: 1, Position: mainPos(500)}
	d.Apply(upd)
	d.Apply(upd)

	if index.Len() != 1 {
		t.Errorf("index size = %d, want 1 after duplicate position update", index.Len())
	}
	rec, _ := d.store.Get(1)
	rec.mu.Lock()
	n := len(rec.positions)
	rec.mu.Unlock()
	if n != 1 {
		t.Errorf("positions = %d entries, want 1", n)
	}
}

func TestDispatcherZeroOrderRemovesFromIndexOnly(t *testing.T) {
	store, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Title: "gone", Positions: []td.ChatPosition{mainPos(100)}}})
	d.Apply(&td.UpdateChatPosition{ChatID: 1, Position: mainPos(0)})

	if index.Len() != 0 {
		t.Errorf("index size = %d, want 0", index.Len())
	}
	// The record stays retrievable.
	if _, ok := store.Snapshot(1); !ok {
		t.Error("chat 1 should remain in the store after leaving the list")
	}
}

func TestDispatcherNonMainPositionIgnored(t *testing.T) {
	_, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{mainPos(100)}}})
	d.Apply(&td.UpdateChatPosition{ChatID: 1, Position: td.ChatPosition{List: td.ListArchive, Order: 900}})

	if index.Len() != 1 {
		t.Errorf("index size = %d, want 1 (archive update must not touch the main index)", index.Len())
	}
	if got := index.TopN(1); got[0] != 1 {
		t.Errorf("TopN(1) = %v, want [1]", got)
	}
}

// TestDispatcherConsistency interleaves updates across chats and checks the
// store/index pairing afterwards: every non-zero main-list position has
// exactly one index entry and the index references only stored chats.
func TestDispatcherConsistency(t *testing.T) {
	store, index, d := newTestDispatcher()

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{mainPos(100)}}})
	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 2, Positions: []td.ChatPosition{mainPos(50)}}})
	d.Apply(&td.UpdateChatPosition{ChatID: 1, Position: mainPos(200)})
	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 3, Positions: []td.ChatPosition{mainPos(0)}}})
	d.Apply(&td.UpdateChatPosition{ChatID: 2, Position: mainPos(0)})
	d.Apply(&td.UpdateChatPosition{ChatID: 2, Position: mainPos(75)})

	if index.Len() != 2 {
		t.Fatalf("index size = %d, want 2", index.Len())
	}
	for _, id := range index.TopN(10) {
		rec, ok := store.Get(id)
		if !ok {
			t.Fatalf("index references chat %d missing from store", id)
		}
		rec.mu.Lock()
		var main int
		for _, p := range rec.positions {
			if p.List == td.ListMain && p.Order != 0 {
				main++
			}
		}
		rec.mu.Unlock()
		if main != 1 {
			t.Errorf("chat %d has %d non-zero main positions, want 1", id, main)
		}
	}
}
