package ports

// BlockingExecutor runs blocking work away from the calling goroutine.
//
//go:generate mockgen -source=bridge.go -destination=mocks/mock_bridge.go -package=mocks
type BlockingExecutor interface {
	// Go schedules task on a worker and returns without waiting for it.
	// It returns domain.ErrPoolClosed once the executor no longer accepts work,
	// in which case task never runs.
	Go(task func()) error
}
