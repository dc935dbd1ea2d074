// Package scheduler implements the asynchronous depth-first traversal.
package scheduler

import (
	"context"

	"go.trai.ch/asyncwalk/internal/core/ports"
)

// Scheduler creates traversals. It holds the collaborators every traversal
// shares: the filesystem, the blocking executor, tracing and logging.
// Traversals share no state with each other.
type Scheduler struct {
	fs       ports.FileSystem
	executor ports.BlockingExecutor
	tracer   ports.Tracer
	logger   ports.Logger
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	fs ports.FileSystem,
	executor ports.BlockingExecutor,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		fs:       fs,
		executor: executor,
		tracer:   tracer,
		logger:   logger,
	}
}

// Walk starts a traversal of root. Nothing is opened until the first pull.
// ctx only parents the traversal's spans; cancellation is handled per pull.
func (s *Scheduler) Walk(ctx context.Context, root string) *Traversal {
	ctx, span := s.tracer.Start(ctx, "walk", ports.WithAttribute("walk.root", root))
	return newTraversal(ctx, s, root, span)
}
