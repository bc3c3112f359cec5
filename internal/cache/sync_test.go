package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

type fakeAuth struct{ ok bool }

func (f *fakeAuth) IsAuthorized() bool { return f.ok }

// fakeClient records requests and answers them synchronously through respond.
type fakeClient struct {
	mu       sync.Mutex
	requests []td.Request
	respond  func(req td.Request, fn td.ResultHandler)
}

func (f *fakeClient) Send(req td.Request, fn td.ResultHandler) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	respond := f.respond
	f.mu.Unlock()
	if respond != nil {
		respond(req, fn)
	}
}

func (f *fakeClient) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestSync(client td.Client) (*Store, *Index, *Dispatcher, *Synchronizer) {
	store := NewStore()
	index := NewIndex()
	d := NewDispatcher(store, index, zap.NewNop())
	s := NewSynchronizer(store, index, client, &fakeAuth{ok: true}, zap.NewNop())
	return store, index, d, s
}

func TestGetTopNotAuthorized(t *testing.T) {
	store := NewStore()
	index := NewIndex()
	s := NewSynchronizer(store, index, &fakeClient{}, &fakeAuth{ok: false}, zap.NewNop())

	if _, err := s.GetTop(context.Background(), 5); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("GetTop error = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.GetByID(context.Background(), 1); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("GetByID error = %v, want ErrNotAuthorized", err)
	}
}

// TestGetTopPagination follows the list through a reposition: ids 1 and 2
// enter at orders 100 and 50, then chat 2 jumps to 200 and overtakes.
func TestGetTopPagination(t *testing.T) {
	client := &fakeClient{}
	_, _, d, s := newTestSync(client)

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Title: "one", Positions: []td.ChatPosition{mainPos(100)}}})
	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 2, Title: "two", Positions: []td.ChatPosition{mainPos(50)}}})

	top, err := s.GetTop(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetTop error = %v", err)
	}
	if top.TotalKnown != 2 || len(top.Chats) != 2 {
		t.Fatalf("got %d chats totalKnown=%d, want 2/2", len(top.Chats), top.TotalKnown)
	}
	if top.Chats[0].ID != 1 || top.Chats[1].ID != 2 {
		t.Errorf("order = [%d %d], want [1 2]", top.Chats[0].ID, top.Chats[1].ID)
	}

	d.Apply(&td.UpdateChatPosition{ChatID: 2, Position: mainPos(200)})

	top, err = s.GetTop(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetTop error = %v", err)
	}
	if top.Chats[0].ID != 2 || top.Chats[1].ID != 1 {
		t.Errorf("order after reposition = [%d %d], want [2 1]", top.Chats[0].ID, top.Chats[1].ID)
	}
	if client.count() != 0 {
		t.Errorf("issued %d backfill requests, want 0 (index already full)", client.count())
	}
}

// TestGetTopBackfill acknowledges the loadChats request after feeding the
// promised chats through the update path, the way the real backend behaves.
func TestGetTopBackfill(t *testing.T) {
	client := &fakeClient{}
	_, _, d, s := newTestSync(client)

	client.respond = func(req td.Request, fn td.ResultHandler) {
		load, ok := req.(td.LoadChats)
		if !ok {
			t.Fatalf("unexpected request %T", req)
		}
		if load.List != td.ListMain {
			t.Errorf("backfill list = %q, want main", load.List)
		}
		if load.Limit != 3 {
			t.Errorf("backfill limit = %d, want 3", load.Limit)
		}
		// The chats arrive as updates before the acknowledgement.
		d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{mainPos(30)}}})
		d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 2, Positions: []td.ChatPosition{mainPos(20)}}})
		d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 3, Positions: []td.ChatPosition{mainPos(10)}}})
		fn(td.Ok{})
	}

	top, err := s.GetTop(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetTop error = %v", err)
	}
	if len(top.Chats) != 3 || top.TotalKnown != 3 {
		t.Fatalf("got %d chats totalKnown=%d, want 3/3", len(top.Chats), top.TotalKnown)
	}
	if client.count() != 1 {
		t.Errorf("issued %d backfill requests, want 1", client.count())
	}
}

// TestGetTopExhausted: with 3 chats ever known and a backend that always
// answers "list exhausted", GetTop(10) terminates with exactly those 3.
func TestGetTopExhausted(t *testing.T) {
	client := &fakeClient{}
	_, index, d, s := newTestSync(client)

	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 1, Positions: []td.ChatPosition{mainPos(300)}}})
	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 2, Positions: []td.ChatPosition{mainPos(200)}}})
	d.Apply(&td.UpdateNewChat{Chat: td.Chat{ID: 3, Positions: []td.ChatPosition{mainPos(100)}}})

	client.respond = func(_ td.Request, fn td.ResultHandler) {
		fn(td.Error{Code: td.ErrorCodeNotFound, Message: "Not Found"})
	}

	top, err := s.GetTop(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetTop error = %v", err)
	}
	if len(top.Chats) != 3 || top.TotalKnown != 3 {
		t.Fatalf("got %d chats totalKnown=%d, want 3/3", len(top.Chats), top.TotalKnown)
	}
	if client.count() != 1 {
		t.Errorf("issued %d backfill requests, want 1", client.count())
	}
	if !index.Complete() {
		t.Error("index should be flagged complete after exhausted response")
	}

	// Subsequent calls never hit the backend again.
	if _, err := s.GetTop(context.Background(), 10); err != nil {
		t.Fatal(err)
	}
	if client.count() != 1 {
		t.Errorf("issued %d total requests, want still 1", client.count())
	}
}

func TestGetTopRemoteError(t *testing.T) {
	client := &fakeClient{
		respond: func(_ td.Request, fn td.ResultHandler) {
			fn(td.Error{Code: 500, Message: "internal"})
		},
	}
	_, _, _, s := newTestSync(client)

	_, err := s.GetTop(context.Background(), 5)
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("GetTop error = %v, want RemoteError", err)
	}
	if remote.Code != 500 {
		t.Errorf("code = %d, want 500", remote.Code)
	}
}

func TestGetTopUnexpectedResponse(t *testing.T) {
	client := &fakeClient{
		respond: func(_ td.Request, fn td.ResultHandler) {
			fn(td.Chat{ID: 1})
		},
	}
	_, _, _, s := newTestSync(client)

	if _, err := s.GetTop(context.Background(), 5); !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("GetTop error = %v, want ErrUnexpectedResponse", err)
	}
}

func TestGetByIDCacheMiss(t *testing.T) {
	client := &fakeClient{
		respond: func(req td.Request, fn td.ResultHandler) {
			get, ok := req.(td.GetChat)
			if !ok {
				t.Fatalf("unexpected request %T", req)
			}
			fn(td.Chat{ID: get.ChatID, Title: "fetched", Kind: td.KindPrivate})
		},
	}
	_, index, _, s := newTestSync(client)

	sum, err := s.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetByID error = %v", err)
	}
	if sum.ID != 99 || sum.Title != "fetched" {
		t.Errorf("summary = %+v, want id=99 title=fetched", sum)
	}
	if client.count() != 1 {
		t.Fatalf("issued %d fetches, want 1", client.count())
	}

	// Second lookup is served from the cache.
	if _, err := s.GetByID(context.Background(), 99); err != nil {
		t.Fatal(err)
	}
	if client.count() != 1 {
		t.Errorf("issued %d fetches, want still 1", client.count())
	}

	// A fetched-only chat never shows up in the ordered list.
	if index.Len() != 0 {
		t.Errorf("index size = %d, want 0", index.Len())
	}
}

func TestGetByIDNotFound(t *testing.T) {
	client := &fakeClient{
		respond: func(_ td.Request, fn td.ResultHandler) {
			fn(td.Error{Code: td.ErrorCodeNotFound, Message: "chat not found"})
		},
	}
	_, _, _, s := newTestSync(client)

	if _, err := s.GetByID(context.Background(), 1); !errors.Is(err, ErrChatNotFound) {
		t.Errorf("GetByID error = %v, want ErrChatNotFound", err)
	}
}

func TestGetByIDRemoteError(t *testing.T) {
	client := &fakeClient{
		respond: func(_ td.Request, fn td.ResultHandler) {
			fn(td.Error{Code: 420, Message: "FLOOD_WAIT"})
		},
	}
	_, _, _, s := newTestSync(client)

	_, err := s.GetByID(context.Background(), 1)
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("GetByID error = %v, want RemoteError", err)
	}
}
