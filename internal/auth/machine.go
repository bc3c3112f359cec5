package auth

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mvieira/tgd/internal/bus"
)

// State represents a step of the Telegram authorization flow.
type State string

const (
	Booting         State = "BOOTING"
	WaitParameters  State = "WAIT_PARAMETERS"
	WaitPhoneNumber State = "WAIT_PHONE_NUMBER"
	WaitCode        State = "WAIT_CODE"
	Ready           State = "READY"
	LoggingOut      State = "LOGGING_OUT"
	Closing         State = "CLOSING"
	Closed          State = "CLOSED"
	Error           State = "ERROR"
)

// validTransitions defines allowed state transitions. WaitParameters can go
// straight to Ready when a previous session's credentials are still valid.
var validTransitions = map[State][]State{
	Booting:         {WaitParameters, Error},
	WaitParameters:  {WaitPhoneNumber, Ready, Closing, Error},
	WaitPhoneNumber: {WaitCode, Closing, Error},
	WaitCode:        {Ready, WaitPhoneNumber, Closing, Error},
	Ready:           {LoggingOut, Closing, Error},
	LoggingOut:      {WaitPhoneNumber, Closing, Closed, Error},
	Closing:         {Closed, Error},
	Closed:          {Booting},
	Error:           {Booting},
}

// Machine tracks and enforces authorization state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Booting state.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Booting,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	if m.bus != nil {
		m.bus.Publish(bus.Event{
			Kind:      "auth.state_changed",
			Timestamp: time.Now(),
			Payload: StateChange{
				From: from,
				To:   to,
			},
		})
	}
	return nil
}

// StateChange is the payload for auth state change events.
type StateChange struct {
	From State
	To   State
}
