package ports

import (
	"context"
	"encoding/json"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
)

// BackendRequest is one call against the reservation backend.
type BackendRequest struct {
	// Operation labels metrics and logs.
	Operation endpoint.Name
	Method    string
	// Path is relative to the configured base URL.
	Path string
	Body any
	// Context completes the fallback message "Failed to {Context}.".
	Context string
}

// Dispatcher issues backend calls. It never returns an error: failures are
// normalized into the envelope.
type Dispatcher interface {
	Dispatch(ctx context.Context, req BackendRequest) domain.Result[json.RawMessage]
}

// BatchCall is one pending operation in a batch.
type BatchCall func(ctx context.Context) domain.Result[any]

// Batcher issues calls concurrently and returns one envelope per call, in
// input order, once all of them settled.
type Batcher interface {
	Run(ctx context.Context, calls ...BatchCall) []domain.Result[any]
}
