package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/asyncwalk/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

// WatchOptions configures the watch command.
type WatchOptions struct {
	CommonOptions
	// Debounce is the coalescing window; zero means watcher.DefaultDebounceWindow.
	Debounce time.Duration
}

type watchRecord struct {
	Op   string `json:"op"`
	Path string `json:"path"`
}

// Watch prints debounced change events below opts.Root until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	rc, err := a.resolve(opts.CommonOptions)
	if err != nil {
		return err
	}

	sess := a.newSession(rc)
	defer a.closeSession(rc, sess)

	w, err := a.watchers.New(&dirWalker{sched: sess.sched, filter: rc.filter})
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Stop(); err != nil {
			a.logger.Warn("failed to stop watcher", "error", err.Error())
		}
	}()

	if err := w.Start(ctx, rc.root); err != nil {
		return err
	}
	a.logger.Info("watching", "root", rc.root)

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	var mu sync.Mutex
	enc := json.NewEncoder(a.stdout)
	d := watcher.NewDebouncer(window, func(events []ports.WatchEvent) {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			if rc.mode == domain.OutputJSON {
				_ = enc.Encode(watchRecord{Op: e.Operation.String(), Path: e.Path})
				continue
			}
			_, _ = fmt.Fprintf(a.stdout, "%-6s %s\n", e.Operation, e.Path)
		}
	})

	for e := range w.Events() {
		d.Add(e)
	}
	d.Flush()

	return nil
}
