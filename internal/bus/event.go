package bus

import "time"

// Event represents a domain event published on the bus.
// Kind is a dot-separated name, e.g. "td.update.new_chat" or
// "auth.state_changed"; Payload carries the event-specific value.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
