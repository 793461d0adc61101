package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// ErrPanic wraps the value recovered from a panicking task.
var ErrPanic = errors.New("goroutine panicked")

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// A plain Manager collects every error for Wait. One built by WithContext
// keeps only the first error and cancels its context when that happens.
type Manager struct {
	mu     sync.Mutex
	errs   []error
	wg     *sync.WaitGroup
	sema   chan struct{}
	cancel context.CancelCauseFunc
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		wg:   &sync.WaitGroup{},
		sema: make(chan struct{}, maxGoroutine), // Semaphore to limit goroutines
	}
}

// WithContext returns a Manager bound to a context derived from ctx. The
// derived context is canceled, with the failure as its cause, as soon as one
// task fails; pass it to Go so that pending tasks are skipped.
func WithContext(ctx context.Context, maxGoroutine int) (*Manager, context.Context) {
	g := NewManager(maxGoroutine)
	ctx, g.cancel = context.WithCancelCause(ctx)

	return g, ctx
}

// Go schedules a function to run in a goroutine, blocking until a slot is free.
//
// If the context is canceled before a slot frees up, the function is not run
// and a warning is logged. A panic inside f is recovered and reported by Wait
// as an error wrapping ErrPanic.
func (g *Manager) Go(pCtx context.Context, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}: // Acquire a semaphore slot
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "goroutine canceled before start", "because", pCtx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			<-g.sema // Release semaphore slot

			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				slog.ErrorContext(pCtx, "panic occurred in goroutine", "because", rvr, "stack", string(stack))
				g.collect(fmt.Errorf("%w: %v", ErrPanic, rvr))
			}
		}()

		select {
		case <-pCtx.Done():
			slog.WarnContext(pCtx, "goroutine canceled", "because", pCtx.Err())
			g.collect(pCtx.Err())
		default:
			if err := f(pCtx); err != nil {
				g.collect(err)
			}
		}
	}()
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel == nil {
		g.errs = append(g.errs, err)
		return
	}
	if len(g.errs) == 0 {
		g.errs = append(g.errs, err)
		g.cancel(err)
	}
}

// Wait blocks until all scheduled goroutines finish. It returns the joined
// task errors, or only the first one for a Manager built by WithContext.
func (g *Manager) Wait() error {
	g.wg.Wait()
	if g.cancel != nil {
		g.cancel(context.Canceled)
	}

	return errors.Join(g.errs...)
}
