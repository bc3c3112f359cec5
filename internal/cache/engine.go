package cache

import (
	"context"

	"github.com/mvieira/tgd/internal/bus"
	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

// Engine feeds the dispatcher from the bus. It subscribes to
// "td.update.chat" events and applies them one at a time, in arrival order.
type Engine struct {
	dispatcher *Dispatcher
	bus        *bus.Bus
	logger     *zap.Logger
	cancel     context.CancelFunc
}

// NewEngine creates a new cache engine.
func NewEngine(d *Dispatcher, b *bus.Bus, logger *zap.Logger) *Engine {
	return &Engine{
		dispatcher: d,
		bus:        b,
		logger:     logger,
	}
}

// Start subscribes to inbound chat update events on the bus.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	ch, unsub := e.bus.Subscribe("td.update.chat", 256)

	go func() {
		defer unsub()
		for {
			select {
			case evt := <-ch:
				e.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
}

func (e *Engine) handleEvent(evt bus.Event) {
	upd, ok := evt.Payload.(td.Update)
	if !ok {
		return
	}
	e.dispatcher.Apply(upd)
}
