package cache

import (
	"sync"

	"github.com/mvieira/tgd/internal/td"
)

// ChatSummary is the immutable view of a chat handed out to the API layer.
type ChatSummary struct {
	ID              int64
	Title           string
	Kind            td.ChatKind
	LastMessageText string
	LastMessageDate int64
}

// Record is a mutable chat entry. Every field access goes through mu; the
// positions slice is additionally mirrored into the main-list index by the
// dispatcher, which takes the index lock before mu.
type Record struct {
	mu          sync.Mutex
	id          int64
	title       string
	kind        td.ChatKind
	lastMessage *td.Message
	positions   []td.ChatPosition
}

// Snapshot returns a consistent copy of the record's summary fields.
func (r *Record) Snapshot() ChatSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := ChatSummary{
		ID:    r.id,
		Title: r.title,
		Kind:  r.kind,
	}
	if r.lastMessage != nil {
		s.LastMessageText = r.lastMessage.Text
		s.LastMessageDate = r.lastMessage.Date
	}
	return s
}

// setFields overwrites the record's summary fields, leaving positions alone.
func (r *Record) setFields(title string, kind td.ChatKind, lastMessage *td.Message) {
	r.mu.Lock()
	r.title = title
	r.kind = kind
	r.lastMessage = lastMessage
	r.mu.Unlock()
}
