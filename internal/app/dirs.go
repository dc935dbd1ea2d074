package app

import (
	"context"
	"errors"
	"iter"

	"go.trai.ch/asyncwalk/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/asyncwalk/internal/engine/scheduler"
)

var _ ports.DirWalker = (*dirWalker)(nil)

// dirWalker lists directories through async traversals, pruning ignored names.
type dirWalker struct {
	sched  *scheduler.Scheduler
	filter *fs.Filter
}

func (w *dirWalker) Dirs(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if !yield(root, nil) {
			return
		}

		t := w.sched.Walk(ctx, root)
		for entry, err := range t.Entries(ctx) {
			if err != nil {
				var te *domain.TraversalError
				if errors.As(err, &te) && te.Root {
					// Already reported through the root itself.
					return
				}
				if !yield("", err) {
					return
				}
				continue
			}
			if !entry.IsDir() {
				continue
			}
			if w.filter.Match(entry.Name()) {
				t.SkipDir()
				continue
			}
			if !yield(entry.Path(), nil) {
				return
			}
		}
	}
}
