// Package bridge turns blocking closures into futures resolved on a
// ports.BlockingExecutor.
package bridge

import (
	"context"
	"sync"

	"go.trai.ch/asyncwalk/internal/core/ports"
)

// Future is the handle to one blocking closure running on an executor.
// It resolves exactly once. A cancelled future never resolves; its value goes
// to the discard function instead.
type Future[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	resolved  bool
	cancelled bool
	discard   func(T)
	val       T
	err       error
}

// Submit schedules fn on ex and returns its future. It never blocks.
// If ex refuses the work the future resolves immediately with that error.
func Submit[T any](ex ports.BlockingExecutor, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	if err := ex.Go(func() {
		v, err := fn()
		f.resolve(v, err)
	}); err != nil {
		var zero T
		f.resolve(zero, err)
	}
	return f
}

// Resolved returns an already completed future.
func Resolved[T any](v T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.resolve(v, err)
	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.mu.Lock()
	if f.cancelled {
		discard := f.discard
		f.mu.Unlock()
		if discard != nil {
			discard(v)
		}
		return
	}
	f.val, f.err = v, err
	f.resolved = true
	f.mu.Unlock()
	close(f.done)
}

// Done returns a channel closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the result is available, without blocking.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the closure's result. It must only be called after Done is closed.
func (f *Future[T]) Result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.val, f.err
}

// Wait parks until the result is available or ctx is done.
// A cancelled ctx leaves the future untouched so it can be waited on again.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel abandons the future. The closure keeps running; whatever it returns,
// failed or not, is handed to discard, which may be nil. If the future had
// already resolved discard receives the value right away.
// Cancel is idempotent; only the first call's discard is used.
func (f *Future[T]) Cancel(discard func(T)) {
	f.mu.Lock()
	if f.cancelled {
		f.mu.Unlock()
		return
	}
	f.cancelled = true
	f.discard = discard
	if !f.resolved {
		f.mu.Unlock()
		return
	}
	v := f.val
	var zero T
	f.val = zero
	f.mu.Unlock()
	if discard != nil {
		discard(v)
	}
}
