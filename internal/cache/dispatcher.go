package cache

import (
	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

// Dispatcher applies incoming update events to the store and the main-list
// index, keeping the two pairwise consistent: a chat holds a non-zero
// main-list position exactly when the index holds its (order, id) key.
type Dispatcher struct {
	store  *Store
	index  *Index
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher over the given store and index.
func NewDispatcher(store *Store, index *Index, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{store: store, index: index, logger: logger}
}

// Apply processes one update event. Events referencing unknown chats are
// dropped silently: the update stream races with backfill completion and
// such misses are expected, not errors.
func (d *Dispatcher) Apply(upd td.Update) {
	switch u := upd.(type) {
	case *td.UpdateNewChat:
		rec := d.store.Upsert(u.Chat.ID)
		rec.setFields(u.Chat.Title, u.Chat.Kind, u.Chat.LastMessage)
		d.setPositions(rec, u.Chat.Positions)

	case *td.UpdateChatTitle:
		rec, ok := d.store.Get(u.ChatID)
		if !ok {
			return
		}
		rec.mu.Lock()
		rec.title = u.Title
		rec.mu.Unlock()

	case *td.UpdateChatLastMessage:
		rec, ok := d.store.Get(u.ChatID)
		if !ok {
			return
		}
		rec.mu.Lock()
		rec.lastMessage = u.LastMessage
		rec.mu.Unlock()
		// The backend sends the full position set here, not a delta.
		d.setPositions(rec, u.Positions)

	case *td.UpdateChatPosition:
		if u.Position.List != td.ListMain {
			return
		}
		rec, ok := d.store.Get(u.ChatID)
		if !ok {
			return
		}
		rec.mu.Lock()
		merged := make([]td.ChatPosition, 0, len(rec.positions)+1)
		if u.Position.Order != 0 {
			merged = append(merged, u.Position)
		}
		for _, p := range rec.positions {
			if p.List != td.ListMain {
				merged = append(merged, p)
			}
		}
		rec.mu.Unlock()
		d.setPositions(rec, merged)

	default:
		// Update kinds the cache does not track.
	}
}

// setPositions swaps the record's position set and mirrors its main-list
// entries in the index, all inside one index critical section so a
// concurrent TopN never observes the removal without the re-insert.
// Lock order is always index before chat record.
func (d *Dispatcher) setPositions(rec *Record, positions []td.ChatPosition) {
	d.index.mu.Lock()
	rec.mu.Lock()

	for _, p := range rec.positions {
		if p.List == td.ListMain && p.Order != 0 {
			d.index.removeLocked(p.Order, rec.id)
		}
	}

	rec.positions = positions

	for _, p := range rec.positions {
		if p.List == td.ListMain && p.Order != 0 {
			d.index.insertLocked(p.Order, rec.id)
		}
	}

	rec.mu.Unlock()
	d.index.mu.Unlock()
}
