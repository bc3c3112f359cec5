package auth

import (
	"context"
	"testing"
	"time"

	"github.com/mvieira/tgd/internal/bus"
	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

// fakeClient records requests and answers each one synchronously through the
// configured respond function.
type fakeClient struct {
	requests []td.Request
	respond  func(req td.Request) td.Object
}

func (c *fakeClient) Send(req td.Request, fn td.ResultHandler) {
	c.requests = append(c.requests, req)
	if fn != nil && c.respond != nil {
		fn(c.respond(req))
	}
}

func newTestService(client *fakeClient) *Service {
	b := bus.New()
	params := td.SetTdlibParameters{APIID: 12345, APIHash: "hash"}
	return NewService(NewMachine(b), client, params, b, zap.NewNop())
}

func TestServiceSendsParametersOnHandshake(t *testing.T) {
	client := &fakeClient{respond: func(td.Request) td.Object { return td.Ok{} }}
	svc := newTestService(client)

	svc.handleState(td.AuthStateWaitTdlibParameters)

	if got := svc.State(); got != WaitParameters {
		t.Errorf("State() = %s, want %s", got, WaitParameters)
	}
	if len(client.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(client.requests))
	}
	params, ok := client.requests[0].(td.SetTdlibParameters)
	if !ok {
		t.Fatalf("request = %T, want SetTdlibParameters", client.requests[0])
	}
	if params.APIID != 12345 || params.APIHash != "hash" {
		t.Errorf("params = %+v", params)
	}
}

func TestServiceRejectedParametersEnterErrorState(t *testing.T) {
	client := &fakeClient{respond: func(td.Request) td.Object {
		return td.Error{Code: 400, Message: "api_id invalid"}
	}}
	svc := newTestService(client)

	svc.handleState(td.AuthStateWaitTdlibParameters)

	if got := svc.State(); got != Error {
		t.Errorf("State() = %s, want %s", got, Error)
	}
}

func TestServiceReadyAuthorizes(t *testing.T) {
	client := &fakeClient{respond: func(td.Request) td.Object { return td.Ok{} }}
	svc := newTestService(client)

	for _, st := range []td.AuthState{
		td.AuthStateWaitTdlibParameters,
		td.AuthStateWaitPhoneNumber,
		td.AuthStateWaitCode,
		td.AuthStateReady,
	} {
		svc.handleState(st)
	}

	if !svc.IsAuthorized() {
		t.Error("IsAuthorized() = false after ready state")
	}
	if got := svc.State(); got != Ready {
		t.Errorf("State() = %s, want %s", got, Ready)
	}
}

func TestServiceLogoutRevokesAuthorization(t *testing.T) {
	client := &fakeClient{respond: func(td.Request) td.Object { return td.Ok{} }}
	svc := newTestService(client)

	svc.handleState(td.AuthStateWaitTdlibParameters)
	svc.handleState(td.AuthStateReady)
	if !svc.IsAuthorized() {
		t.Fatal("IsAuthorized() = false, want true after ready")
	}

	svc.handleState(td.AuthStateLoggingOut)
	if svc.IsAuthorized() {
		t.Error("IsAuthorized() = true after logout")
	}
	if got := svc.State(); got != LoggingOut {
		t.Errorf("State() = %s, want %s", got, LoggingOut)
	}
}

func TestSendPhoneNumberOutsideFlow(t *testing.T) {
	client := &fakeClient{}
	svc := newTestService(client)

	if err := svc.SendPhoneNumber(context.Background(), "+5511999990000"); err == nil {
		t.Error("SendPhoneNumber expected error in booting state")
	}
	if len(client.requests) != 0 {
		t.Errorf("requests = %d, want 0", len(client.requests))
	}
}

func TestSendPhoneNumber(t *testing.T) {
	client := &fakeClient{respond: func(td.Request) td.Object { return td.Ok{} }}
	svc := newTestService(client)

	svc.handleState(td.AuthStateWaitTdlibParameters)
	svc.handleState(td.AuthStateWaitPhoneNumber)

	if err := svc.SendPhoneNumber(context.Background(), "+5511999990000"); err != nil {
		t.Fatalf("SendPhoneNumber error = %v", err)
	}

	last := client.requests[len(client.requests)-1]
	req, ok := last.(td.SetAuthenticationPhoneNumber)
	if !ok {
		t.Fatalf("request = %T, want SetAuthenticationPhoneNumber", last)
	}
	if req.PhoneNumber != "+5511999990000" {
		t.Errorf("phone number = %q", req.PhoneNumber)
	}
}

func TestCheckCodeRejectedByBackend(t *testing.T) {
	client := &fakeClient{respond: func(req td.Request) td.Object {
		if _, ok := req.(td.CheckAuthenticationCode); ok {
			return td.Error{Code: 400, Message: "PHONE_CODE_INVALID"}
		}
		return td.Ok{}
	}}
	svc := newTestService(client)

	svc.handleState(td.AuthStateWaitTdlibParameters)
	svc.handleState(td.AuthStateWaitPhoneNumber)
	svc.handleState(td.AuthStateWaitCode)

	if err := svc.CheckCode(context.Background(), "00000"); err == nil {
		t.Error("CheckCode expected error for rejected code")
	}
}

func TestCheckCodeGuard(t *testing.T) {
	client := &fakeClient{}
	svc := newTestService(client)

	if err := svc.CheckCode(context.Background(), "12345"); err == nil {
		t.Error("CheckCode expected error outside wait-code state")
	}
}

func TestServiceConsumesBusUpdates(t *testing.T) {
	client := &fakeClient{respond: func(td.Request) td.Object { return td.Ok{} }}
	b := bus.New()
	svc := NewService(NewMachine(b), client, td.SetTdlibParameters{}, b, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)
	defer svc.Stop()

	b.Publish(bus.Event{
		Kind:    td.EventAuthState,
		Payload: &td.UpdateAuthorizationState{State: td.AuthStateWaitTdlibParameters},
	})

	deadline := time.Now().Add(2 * time.Second)
	for svc.State() != WaitParameters {
		if time.Now().After(deadline) {
			t.Fatalf("State() = %s, want %s", svc.State(), WaitParameters)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
