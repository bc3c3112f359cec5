package auth

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/mvieira/tgd/internal/bus"
	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

// Service drives the Telegram authorization flow. It subscribes to auth
// state updates on the bus, answers the parameter handshake on its own, and
// exposes phone number and code entry to the API layer.
type Service struct {
	machine    *Machine
	client     td.Client
	params     td.SetTdlibParameters
	bus        *bus.Bus
	logger     *zap.Logger
	cancel     context.CancelFunc
	authorized atomic.Bool
}

// NewService creates the auth service. params is sent verbatim when the
// backend asks for its parameters.
func NewService(machine *Machine, client td.Client, params td.SetTdlibParameters, b *bus.Bus, logger *zap.Logger) *Service {
	return &Service{
		machine: machine,
		client:  client,
		params:  params,
		bus:     b,
		logger:  logger,
	}
}

// Start subscribes to authorization state updates on the bus.
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	ch, unsub := s.bus.Subscribe("td.update.auth", 64)

	go func() {
		defer unsub()
		for {
			select {
			case evt := <-ch:
				if upd, ok := evt.Payload.(*td.UpdateAuthorizationState); ok {
					s.handleState(upd.State)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the service.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// IsAuthorized reports whether the session has completed authorization.
func (s *Service) IsAuthorized() bool {
	return s.authorized.Load()
}

// State returns the current authorization state.
func (s *Service) State() State {
	return s.machine.Current()
}

func (s *Service) handleState(st td.AuthState) {
	switch st {
	case td.AuthStateWaitTdlibParameters:
		s.transition(WaitParameters)
		s.client.Send(s.params, func(obj td.Object) {
			if e, ok := obj.(td.Error); ok {
				s.logger.Error("setTdlibParameters rejected",
					zap.Int32("code", e.Code), zap.String("message", e.Message))
				s.transition(Error)
			}
		})
	case td.AuthStateWaitPhoneNumber:
		s.authorized.Store(false)
		s.transition(WaitPhoneNumber)
	case td.AuthStateWaitCode:
		s.transition(WaitCode)
	case td.AuthStateReady:
		s.authorized.Store(true)
		s.transition(Ready)
		s.logger.Info("authorization complete")
	case td.AuthStateLoggingOut:
		s.authorized.Store(false)
		s.transition(LoggingOut)
	case td.AuthStateClosing:
		s.authorized.Store(false)
		s.transition(Closing)
	case td.AuthStateClosed:
		s.transition(Closed)
	default:
		s.logger.Warn("unhandled authorization state", zap.String("state", string(st)))
	}
}

func (s *Service) transition(to State) {
	if err := s.machine.Transition(to); err != nil {
		s.logger.Warn("auth transition rejected", zap.Error(err))
	}
}

// SendPhoneNumber submits the account phone number. Only valid while the
// backend is waiting for one.
func (s *Service) SendPhoneNumber(ctx context.Context, phoneNumber string) error {
	if cur := s.machine.Current(); cur != WaitPhoneNumber {
		return fmt.Errorf("not waiting for phone number (state %s)", cur)
	}
	return s.await(ctx, td.SetAuthenticationPhoneNumber{PhoneNumber: phoneNumber})
}

// CheckCode submits the login code sent to the account.
func (s *Service) CheckCode(ctx context.Context, code string) error {
	if cur := s.machine.Current(); cur != WaitCode {
		return fmt.Errorf("not waiting for authentication code (state %s)", cur)
	}
	return s.await(ctx, td.CheckAuthenticationCode{Code: code})
}

// await sends a request and blocks until its acknowledgement arrives.
func (s *Service) await(ctx context.Context, req td.Request) error {
	done := make(chan error, 1)
	s.client.Send(req, func(obj td.Object) {
		switch r := obj.(type) {
		case td.Ok:
			done <- nil
		case td.Error:
			done <- fmt.Errorf("telegram error %d: %s", r.Code, r.Message)
		default:
			done <- fmt.Errorf("unexpected response type %T", obj)
		}
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
