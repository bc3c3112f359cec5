package cache

import "sync"

// Store is the concurrent chat-id → record map. Records are created by
// update events or by direct fetches and are never removed; a chat that
// leaves every list keeps its record and only loses its index entries.
type Store struct {
	mu    sync.RWMutex
	chats map[int64]*Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{chats: make(map[int64]*Record)}
}

// Get returns the record for id, if present.
func (s *Store) Get(id int64) (*Record, bool) {
	s.mu.RLock()
	rec, ok := s.chats[id]
	s.mu.RUnlock()
	return rec, ok
}

// Upsert returns the record for id, creating an empty one atomically if it
// does not exist yet.
func (s *Store) Upsert(id int64) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.chats[id]; ok {
		return rec
	}
	rec := &Record{id: id}
	s.chats[id] = rec
	return rec
}

// Snapshot returns a consistent summary copy of the record for id.
func (s *Store) Snapshot(id int64) (ChatSummary, bool) {
	rec, ok := s.Get(id)
	if !ok {
		return ChatSummary{}, false
	}
	return rec.Snapshot(), true
}

// Len returns the number of tracked chats.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}
