package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// WalkOptions configures the walk command.
type WalkOptions struct {
	CommonOptions
	// Stat fetches metadata for every entry; it is also enabled by the config file.
	Stat     bool
	FailFast bool
}

// Walk streams every entry below opts.Root to the renderer.
// It returns domain.ErrTraversalFailed when any error item was seen.
func (a *App) Walk(ctx context.Context, opts WalkOptions) error {
	rc, err := a.resolve(opts.CommonOptions)
	if err != nil {
		return err
	}
	rc.stat = rc.stat || opts.Stat

	sess := a.newSession(rc)
	defer a.closeSession(rc, sess)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := a.newRenderer(ctx, rc.mode, rc.root, cancel)

	var summary domain.Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()

		var err error
		summary, err = a.walk(gctx, sess, rc, renderer, opts.FailFast)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if summary.Errors > 0 {
		return domain.ErrTraversalFailed
	}
	return nil
}

// walk drains one traversal into r and returns what it saw. Only a
// cancelled context is returned as an error; per-entry failures are counted.
func (a *App) walk(
	ctx context.Context,
	sess *session,
	rc *runConfig,
	r ports.Renderer,
	failFast bool,
) (domain.Summary, error) {
	start := time.Now()
	summary := domain.Summary{Root: rc.root}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	t := sess.sched.Walk(ctx, rc.root)
	for entry, err := range t.Entries(ctx) {
		if err != nil {
			var te *domain.TraversalError
			if !errors.As(err, &te) {
				return summary, err
			}
			summary.AddError()
			r.OnError(err)
			if failFast {
				break
			}
			continue
		}

		if rc.filter.Match(entry.Name()) {
			if entry.IsDir() {
				t.SkipDir()
			}
			continue
		}

		summary.AddEntry(entry)

		var meta *domain.Metadata
		if rc.stat {
			meta, err = entry.Metadata(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return summary, ctx.Err()
				}
				summary.AddError()
				r.OnError(err)
			} else if !meta.IsDir() {
				summary.Bytes += meta.Size
			}
		}

		r.OnEntry(entry, meta)
	}

	summary.Elapsed = time.Since(start)
	r.OnSummary(summary)
	return summary, nil
}
