// Package pool implements a bounded worker pool for blocking filesystem calls.
package pool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"golang.org/x/sync/semaphore"
)

var _ ports.BlockingExecutor = (*Pool)(nil)

// Pool runs blocking tasks on goroutines, at most size of them at once.
// Submitting never blocks the caller; tasks beyond the limit wait for a slot.
type Pool struct {
	sem  *semaphore.Weighted
	size int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	inFlight atomic.Int64
	queued   atomic.Int64
}

// New creates a pool with the given capacity. A size of zero or less uses one
// slot per CPU.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the pool capacity.
func (p *Pool) Size() int {
	return p.size
}

// Go schedules task. It returns domain.ErrPoolClosed after Close.
func (p *Pool) Go(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return domain.ErrPoolClosed
	}

	p.wg.Add(1)
	p.queued.Add(1)
	go func() {
		defer p.wg.Done()
		// Acquire cannot fail with a background context.
		_ = p.sem.Acquire(context.Background(), 1)
		p.queued.Add(-1)
		p.inFlight.Add(1)
		defer func() {
			p.inFlight.Add(-1)
			p.sem.Release(1)
		}()
		task()
	}()
	return nil
}

// InFlight returns the number of tasks currently running.
func (p *Pool) InFlight() int {
	return int(p.inFlight.Load())
}

// Queued returns the number of tasks waiting for a slot.
func (p *Pool) Queued() int {
	return int(p.queued.Load())
}

// Close stops accepting work and waits for every scheduled task to finish.
// Tasks already scheduled still run so their futures resolve.
func (p *Pool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
	return nil
}
