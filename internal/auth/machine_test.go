package auth

import (
	"testing"
	"time"

	"github.com/mvieira/tgd/internal/bus"
)

func TestMachineStartsBooting(t *testing.T) {
	m := NewMachine(nil)
	if got := m.Current(); got != Booting {
		t.Errorf("Current() = %s, want %s", got, Booting)
	}
}

func TestMachineLoginFlow(t *testing.T) {
	m := NewMachine(nil)
	for _, to := range []State{WaitParameters, WaitPhoneNumber, WaitCode, Ready} {
		if err := m.Transition(to); err != nil {
			t.Fatalf("Transition(%s) error = %v", to, err)
		}
	}
	if got := m.Current(); got != Ready {
		t.Errorf("Current() = %s, want %s", got, Ready)
	}
}

func TestMachineResumedSessionSkipsLogin(t *testing.T) {
	m := NewMachine(nil)
	if err := m.Transition(WaitParameters); err != nil {
		t.Fatalf("Transition(WaitParameters) error = %v", err)
	}
	if err := m.Transition(Ready); err != nil {
		t.Errorf("Transition(Ready) error = %v, want direct jump allowed", err)
	}
}

func TestMachineRejectsInvalidTransition(t *testing.T) {
	m := NewMachine(nil)
	if err := m.Transition(Ready); err == nil {
		t.Error("Transition(Booting -> Ready) expected error")
	}
	if got := m.Current(); got != Booting {
		t.Errorf("Current() = %s after rejected transition, want %s", got, Booting)
	}
}

func TestMachineWrongCodeRetriesPhoneNumber(t *testing.T) {
	m := NewMachine(nil)
	for _, to := range []State{WaitParameters, WaitPhoneNumber, WaitCode} {
		if err := m.Transition(to); err != nil {
			t.Fatalf("Transition(%s) error = %v", to, err)
		}
	}
	if err := m.Transition(WaitPhoneNumber); err != nil {
		t.Errorf("Transition(WaitCode -> WaitPhoneNumber) error = %v", err)
	}
}

func TestMachinePublishesStateChange(t *testing.T) {
	b := bus.New()
	ch, cancel := b.Subscribe("auth.state_changed", 4)
	defer cancel()

	m := NewMachine(b)
	if err := m.Transition(WaitParameters); err != nil {
		t.Fatalf("Transition error = %v", err)
	}

	select {
	case evt := <-ch:
		change, ok := evt.Payload.(StateChange)
		if !ok {
			t.Fatalf("payload = %T, want StateChange", evt.Payload)
		}
		if change.From != Booting || change.To != WaitParameters {
			t.Errorf("change = %+v", change)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state change event")
	}
}

func TestMachineRejectedTransitionNotPublished(t *testing.T) {
	b := bus.New()
	ch, cancel := b.Subscribe("auth.state_changed", 4)
	defer cancel()

	m := NewMachine(b)
	if err := m.Transition(Closed); err == nil {
		t.Fatal("Transition(Booting -> Closed) expected error")
	}

	select {
	case evt := <-ch:
		t.Errorf("received %v for rejected transition, want nothing", evt.Payload)
	default:
	}
}
