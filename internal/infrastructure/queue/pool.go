package queue

import (
	"context"
	"fmt"
	"sync"
)

const defaultWorkers = 8

// Pool runs jobs on a fixed set of workers. Every job settles: a panic is
// turned into a value by the recover hook instead of tearing down the pool.
type Pool struct {
	workers int
}

// NewPool creates a Pool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Pool{workers: numWorkers}
}

// Workers reports the configured concurrency.
func (p *Pool) Workers() int { return p.workers }

type job[T any] struct {
	index int
	run   func(context.Context) T
}

// Settle runs every job and waits for all of them. out[i] is the value of
// jobs[i] regardless of completion order. recovered builds the value for a
// job that panicked.
func Settle[T any](ctx context.Context, p *Pool, jobs []func(context.Context) T, recovered func(index int, err error) T) []T {
	out := make([]T, len(jobs))
	if len(jobs) == 0 {
		return out
	}

	n := min(p.workers, len(jobs))
	ch := make(chan job[T], len(jobs))
	for i, fn := range jobs {
		ch <- job[T]{index: i, run: fn}
	}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for j := range ch {
				out[j.index] = runOne(ctx, j, recovered)
			}
		}()
	}
	wg.Wait()
	return out
}

func runOne[T any](ctx context.Context, j job[T], recovered func(int, error) T) (v T) {
	defer func() {
		if r := recover(); r != nil {
			v = recovered(j.index, fmt.Errorf("job %d panicked: %v", j.index, r))
		}
	}()
	return j.run(ctx)
}
