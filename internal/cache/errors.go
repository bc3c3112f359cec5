package cache

import (
	"errors"
	"fmt"

	"github.com/mvieira/tgd/internal/td"
)

// ErrNotAuthorized is returned when a cache operation is invoked before an
// authorized session exists.
var ErrNotAuthorized = errors.New("not authorized")

// ErrUnexpectedResponse is returned when the backend answers a request with a
// payload shape the cache does not recognize.
var ErrUnexpectedResponse = errors.New("unexpected response type")

// ErrChatNotFound is returned when a direct fetch confirms the chat does not
// exist.
var ErrChatNotFound = errors.New("chat not found")

// RemoteError is a backend rejection of a single request. It is terminal for
// the call that produced it; the cache stays usable.
type RemoteError struct {
	Code    int32
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("telegram error %d: %s", e.Code, e.Message)
}

func remoteErr(e td.Error) error {
	return &RemoteError{Code: e.Code, Message: e.Message}
}
