package td

import (
	"testing"
	"time"

	"github.com/mvieira/tgd/internal/bus"
	"go.uber.org/zap"
)

func recvEvent(t *testing.T, ch <-chan bus.Event) bus.Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return bus.Event{}
	}
}

func TestHandlerPublishesChatUpdates(t *testing.T) {
	b := bus.New()
	ch, cancel := b.Subscribe("td.update.chat", 8)
	defer cancel()

	h := NewHandler(b, zap.NewNop())

	tests := []struct {
		upd  Update
		kind string
	}{
		{&UpdateNewChat{Chat: Chat{ID: 1}}, EventNewChat},
		{&UpdateChatTitle{ChatID: 1, Title: "t"}, EventChatTitle},
		{&UpdateChatLastMessage{ChatID: 1}, EventChatLastMessage},
		{&UpdateChatPosition{ChatID: 1}, EventChatPosition},
	}
	for _, tt := range tests {
		h.Handle(tt.upd)
		evt := recvEvent(t, ch)
		if evt.Kind != tt.kind {
			t.Errorf("kind = %q, want %q", evt.Kind, tt.kind)
		}
		if evt.Payload != tt.upd {
			t.Errorf("payload = %v, want the update itself", evt.Payload)
		}
	}
}

func TestHandlerAuthStateNotSentToChatSubscribers(t *testing.T) {
	b := bus.New()
	chatCh, cancelChat := b.Subscribe("td.update.chat", 1)
	defer cancelChat()
	authCh, cancelAuth := b.Subscribe("td.update.auth", 1)
	defer cancelAuth()

	h := NewHandler(b, zap.NewNop())
	h.Handle(&UpdateAuthorizationState{State: AuthStateReady})

	evt := recvEvent(t, authCh)
	if evt.Kind != EventAuthState {
		t.Errorf("kind = %q, want %q", evt.Kind, EventAuthState)
	}

	select {
	case evt := <-chatCh:
		t.Errorf("chat subscriber received %q, want nothing", evt.Kind)
	default:
	}
}
