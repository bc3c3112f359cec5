package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvieira/tgd/internal/cache"
	"github.com/mvieira/tgd/internal/td"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus maps cache errors to gRPC status codes.
func toStatus(op string, err error) error {
	var remote *cache.RemoteError
	switch {
	case errors.Is(err, cache.ErrNotAuthorized):
		return grpcstatus.Errorf(codes.Unauthenticated, "%s: not authorized", op)
	case errors.Is(err, cache.ErrChatNotFound):
		return grpcstatus.Errorf(codes.NotFound, "%s: chat not found", op)
	case errors.Is(err, cache.ErrUnexpectedResponse):
		return grpcstatus.Errorf(codes.Internal, "%s: unexpected backend response", op)
	case errors.As(err, &remote):
		return grpcstatus.Errorf(codes.Unavailable, "%s: %v", op, remote)
	default:
		return grpcstatus.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// sendAwait bridges the backend's callback delivery to a blocking call for
// unary handlers.
func sendAwait(ctx context.Context, client td.Client, req td.Request) (td.Object, error) {
	done := make(chan td.Object, 1)
	client.Send(req, func(obj td.Object) {
		done <- obj
	})
	select {
	case obj := <-done:
		if e, ok := obj.(td.Error); ok {
			return nil, fmt.Errorf("telegram error %d: %s", e.Code, e.Message)
		}
		return obj, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
