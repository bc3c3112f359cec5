package td

import (
	"time"

	"github.com/mvieira/tgd/internal/bus"
	"go.uber.org/zap"
)

// Event kinds published for each update variant. The cache engine subscribes
// to "td.update.chat" and the auth service to "td.update.auth".
const (
	EventNewChat         = "td.update.chat.new"
	EventChatTitle       = "td.update.chat.title"
	EventChatLastMessage = "td.update.chat.last_message"
	EventChatPosition    = "td.update.chat.position"
	EventAuthState       = "td.update.auth.state"
)

// Handler receives typed updates from the backend connection and publishes
// them as domain events on the bus. It does not call the cache engine or the
// auth service directly; both subscribe to the bus independently.
type Handler struct {
	bus    *bus.Bus
	logger *zap.Logger
}

// NewHandler creates a new update handler.
func NewHandler(b *bus.Bus, logger *zap.Logger) *Handler {
	return &Handler{bus: b, logger: logger}
}

// Handle is the connection's update callback.
func (h *Handler) Handle(upd Update) {
	switch u := upd.(type) {
	case *UpdateNewChat:
		h.publish(EventNewChat, u)
	case *UpdateChatTitle:
		h.publish(EventChatTitle, u)
	case *UpdateChatLastMessage:
		h.publish(EventChatLastMessage, u)
	case *UpdateChatPosition:
		h.publish(EventChatPosition, u)
	case *UpdateAuthorizationState:
		h.logger.Info("authorization state updated", zap.String("state", string(u.State)))
		h.publish(EventAuthState, u)
	}
}

func (h *Handler) publish(kind string, upd Update) {
	h.bus.Publish(bus.Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Payload:   upd,
	})
}
