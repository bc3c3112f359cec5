// Package tdjson implements td.Client over TDLib's td_json_client C API.
// Requests are correlated with responses through the "@extra" field; updates
// are delivered to a registered handler from the receive loop.
package tdjson

/*
#cgo LDFLAGS: -ltdjson
#include <stdlib.h>
#include <td/telegram/td_json_client.h>
*/
import "C"

import (
	"context"
	"sync"
	"unsafe"

	"github.com/google/uuid"
	"github.com/mvieira/tgd/internal/td"
	"go.uber.org/zap"
)

const receiveTimeoutSeconds = 1.0

// Conn is a single TDLib JSON client instance.
type Conn struct {
	client   unsafe.Pointer
	logger   *zap.Logger
	onUpdate func(td.Update)

	mu      sync.Mutex
	pending map[string]td.ResultHandler
	closed  bool
}

// New creates a TDLib client instance. Run must be called to start delivering
// responses and updates.
func New(logger *zap.Logger) *Conn {
	return &Conn{
		client:  C.td_json_client_create(),
		logger:  logger,
		pending: make(map[string]td.ResultHandler),
	}
}

// OnUpdate registers the update callback. Must be called before Run.
func (c *Conn) OnUpdate(fn func(td.Update)) {
	c.onUpdate = fn
}

// Send marshals the request and hands it to TDLib. fn, if non-nil, is invoked
// from the receive loop with the correlated response.
func (c *Conn) Send(req td.Request, fn td.ResultHandler) {
	extra := ""
	if fn != nil {
		extra = uuid.New().String()
	}

	data, err := td.MarshalRequest(req, extra)
	if err != nil {
		c.logger.Error("marshal request", zap.Error(err))
		if fn != nil {
			fn(td.Error{Code: 400, Message: err.Error()})
		}
		return
	}

	if fn != nil {
		c.mu.Lock()
		c.pending[extra] = fn
		c.mu.Unlock()
	}

	cstr := C.CString(string(data))
	defer C.free(unsafe.Pointer(cstr))
	C.td_json_client_send(c.client, cstr)
}

// Execute runs a synchronous request (only a few TDLib requests support this,
// e.g. setLogVerbosityLevel).
func (c *Conn) Execute(req td.Request) td.Object {
	data, err := td.MarshalRequest(req, "")
	if err != nil {
		return td.Error{Code: 400, Message: err.Error()}
	}
	cstr := C.CString(string(data))
	defer C.free(unsafe.Pointer(cstr))

	res := C.td_json_client_execute(c.client, cstr)
	if res == nil {
		return td.Ok{}
	}
	obj, _, err := td.ParseObject([]byte(C.GoString(res)))
	if err != nil || obj == nil {
		return td.Ok{}
	}
	return obj
}

// Run receives payloads from TDLib until the context is cancelled, routing
// responses to their pending handlers and updates to the update callback.
func (c *Conn) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res := C.td_json_client_receive(c.client, C.double(receiveTimeoutSeconds))
		if res == nil {
			continue
		}
		c.route([]byte(C.GoString(res)))
	}
}

func (c *Conn) route(data []byte) {
	obj, extra, err := td.ParseObject(data)
	if err != nil {
		c.logger.Warn("failed to parse payload", zap.Error(err))
		return
	}

	if extra != "" {
		c.mu.Lock()
		fn := c.pending[extra]
		delete(c.pending, extra)
		c.mu.Unlock()
		if fn != nil && obj != nil {
			fn(obj)
		}
		return
	}

	if upd, ok := obj.(td.Update); ok && c.onUpdate != nil {
		c.onUpdate(upd)
	}
}

// Close destroys the TDLib client instance. Pending handlers are dropped.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.pending = make(map[string]td.ResultHandler)
	c.mu.Unlock()

	C.td_json_client_destroy(c.client)
}
