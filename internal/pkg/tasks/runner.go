package tasks

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Runner executes fire-and-forget tasks detached from the request that
// scheduled them. Task contexts derive from the runner's own base context,
// so cancelling the originating HTTP request never cancels a task; only
// Stop does, after draining up to the configured timeout.
type Runner struct {
	base         context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	logger       *slog.Logger
	drainTimeout time.Duration
}

func NewRunner(logger *slog.Logger, drainTimeout time.Duration) *Runner {
	base, cancel := context.WithCancel(context.Background())
	if drainTimeout <= 0 {
		drainTimeout = 10 * time.Second
	}
	return &Runner{
		base:         base,
		cancel:       cancel,
		logger:       logger,
		drainTimeout: drainTimeout,
	}
}

// Go schedules fn on its own goroutine and returns immediately. Errors and
// panics are logged; nothing propagates back to the caller, which by
// contract has already responded.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("background task panicked",
					"task", name,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := fn(r.base); err != nil {
			r.logger.Error("background task failed", "task", name, "error", err.Error())
		}
	}()
}

// Stop waits for in-flight tasks to finish, then cancels the base context
// for anything still running past the drain timeout.
func (r *Runner) Stop() {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(r.drainTimeout):
		r.logger.Warn("background tasks did not drain in time, cancelling", "timeout", r.drainTimeout)
	}
	r.cancel()
}
