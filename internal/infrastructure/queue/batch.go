package queue

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/apierror"
	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
	"github.com/labreserve/switch-console/internal/pkg/metrics"
)

var _ ports.Batcher = (*Batch)(nil)

// batchContext names a call that failed outside the normal dispatch path.
const batchContext = "batch operation"

// Batch issues calls concurrently and returns once all of them settled.
type Batch struct {
	pool *Pool
	log  zerolog.Logger
}

func NewBatch(pool *Pool, log zerolog.Logger) *Batch {
	return &Batch{pool: pool, log: log}
}

// Run returns one envelope per call in input order. A failing call never
// short-circuits the others; a panicking call yields a failed envelope with
// status 500.
func (b *Batch) Run(ctx context.Context, calls ...ports.BatchCall) []domain.Result[any] {
	metrics.BatchSize.Observe(float64(len(calls)))

	jobs := make([]func(context.Context) domain.Result[any], len(calls))
	for i, c := range calls {
		jobs[i] = c
	}

	results := Settle(ctx, b.pool, jobs, func(index int, err error) domain.Result[any] {
		b.log.Error().Err(err).Int("index", index).Msg("batch call failed")
		return domain.Fail[any](apierror.Fallback(batchContext), http.StatusInternalServerError)
	})

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	if failed > 0 {
		b.log.Debug().Int("calls", len(calls)).Int("failed", failed).Msg("batch settled with failures")
	}
	return results
}
