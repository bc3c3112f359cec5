package cache

import (
	"context"

	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

// Authorizer reports whether the session may issue backend requests.
type Authorizer interface {
	IsAuthorized() bool
}

// TopChats is the result of a GetTop query. TotalKnown is the index size at
// snapshot time, which may exceed len(Chats).
type TopChats struct {
	Chats      []ChatSummary
	TotalKnown int
}

// Synchronizer answers chat list queries from the local index, backfilling
// from the backend when the index does not yet hold enough entries.
type Synchronizer struct {
	store  *Store
	index  *Index
	client td.Client
	auth   Authorizer
	logger *zap.Logger
}

// NewSynchronizer creates a synchronizer over the shared store and index.
func NewSynchronizer(store *Store, index *Index, client td.Client, auth Authorizer, logger *zap.Logger) *Synchronizer {
	return &Synchronizer{
		store:  store,
		index:  index,
		client: client,
		auth:   auth,
		logger: logger,
	}
}

type topOutcome struct {
	res TopChats
	err error
}

// GetTop returns the top limit chats of the main list. If the index holds
// fewer entries and the list is not known to be exhausted, it issues a
// loadChats backfill and completes once the corresponding updates have been
// applied. Concurrent callers are not deduplicated; each issues its own
// backfill.
func (s *Synchronizer) GetTop(ctx context.Context, limit int) (TopChats, error) {
	if !s.auth.IsAuthorized() {
		return TopChats{}, ErrNotAuthorized
	}

	done := make(chan topOutcome, 1)
	s.collect(limit, func(res TopChats, err error) {
		done <- topOutcome{res: res, err: err}
	})

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return TopChats{}, ctx.Err()
	}
}

// collect is the level-triggered backfill loop. Each pass re-checks the
// index under its lock; if entries are missing it asks the backend for the
// difference and re-enters from the response callback. The loaded chats
// themselves arrive through the update stream, not through the loadChats
// response, so an Ok acknowledgement only means "check again".
//
// If the backend keeps acknowledging without ever delivering the promised
// updates or the exhausted code, the loop re-enters indefinitely. That
// liveness risk is inherent to the protocol and deliberately not guarded
// here.
func (s *Synchronizer) collect(limit int, fn func(TopChats, error)) {
	s.index.mu.Lock()
	if !s.index.complete && limit > s.index.lenLocked() {
		missing := limit - s.index.lenLocked()
		s.index.mu.Unlock()

		s.logger.Debug("backfilling main chat list", zap.Int("missing", missing))
		s.client.Send(td.LoadChats{List: td.ListMain, Limit: int32(missing)}, func(obj td.Object) {
			switch r := obj.(type) {
			case td.Ok:
				// Chats were (or will shortly be) delivered as updates.
				s.collect(limit, fn)
			case td.Error:
				if r.Code == td.ErrorCodeNotFound {
					// The list is exhausted: deliver whatever is cached.
					s.index.mu.Lock()
					s.index.complete = true
					s.index.mu.Unlock()
					s.collect(limit, fn)
					return
				}
				fn(TopChats{}, remoteErr(r))
			default:
				fn(TopChats{}, ErrUnexpectedResponse)
			}
		})
		return
	}

	n := limit
	if size := s.index.lenLocked(); n > size {
		n = size
	}
	ids := s.index.topNLocked(n)
	total := s.index.lenLocked()

	// Resolve ids while still holding the index lock (index before chat is
	// the legal lock order) so the snapshot matches one index state. Ids
	// whose record has meanwhile vanished from the pairing are skipped.
	chats := make([]ChatSummary, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.store.Get(id); ok {
			chats = append(chats, rec.Snapshot())
		}
	}
	s.index.mu.Unlock()

	fn(TopChats{Chats: chats, TotalKnown: total}, nil)
}

type byIDOutcome struct {
	res ChatSummary
	err error
}

// GetByID returns one chat summary. A cache hit answers locally; a miss
// issues a direct getChat fetch and stores the result without touching the
// ordered index. The chat stays list-invisible until an update event
// assigns it a position.
func (s *Synchronizer) GetByID(ctx context.Context, chatID int64) (ChatSummary, error) {
	if !s.auth.IsAuthorized() {
		return ChatSummary{}, ErrNotAuthorized
	}

	if sum, ok := s.store.Snapshot(chatID); ok {
		return sum, nil
	}

	done := make(chan byIDOutcome, 1)
	s.client.Send(td.GetChat{ChatID: chatID}, func(obj td.Object) {
		switch r := obj.(type) {
		case td.Chat:
			rec := s.store.Upsert(r.ID)
			rec.setFields(r.Title, r.Kind, r.LastMessage)
			done <- byIDOutcome{res: rec.Snapshot()}
		case td.Error:
			if r.Code == td.ErrorCodeNotFound {
				done <- byIDOutcome{err: ErrChatNotFound}
				return
			}
			done <- byIDOutcome{err: remoteErr(r)}
		default:
			done <- byIDOutcome{err: ErrUnexpectedResponse}
		}
	})

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return ChatSummary{}, ctx.Err()
	}
}
