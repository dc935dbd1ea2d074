// Package watcher streams file system changes below a tree.
package watcher

import (
	"context"
	"errors"
	"iter"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher with fsnotify. The directories to watch
// are discovered through a ports.DirWalker, both at start and whenever a
// directory is created later.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	walker    ports.DirWalker
	logger    ports.Logger
	root      domain.InternedString
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher(walker ports.DirWalker, logger ports.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherCreateFailed.Error())
	}
	return &Watcher{
		fsWatcher: fw,
		walker:    walker,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start registers every directory of the tree and begins delivering events.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = domain.NewInternedString(root)

	if err := w.addTree(ctx, root); err != nil {
		return err
	}

	go w.processEvents(ctx)
	return nil
}

// Root returns the directory passed to Start.
func (w *Watcher) Root() string {
	return w.root.String()
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
// It ends when the watcher stops or the Start context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// addTree watches dir and every directory below it. Only a failure to list
// dir itself is returned; anything deeper is logged and skipped.
func (w *Watcher) addTree(ctx context.Context, dir string) error {
	for path, err := range w.walker.Dirs(ctx, dir) {
		if err != nil {
			var te *domain.TraversalError
			if errors.As(err, &te) && te.Root {
				return zerr.With(zerr.Wrap(err, domain.ErrWatchAddFailed.Error()), "path", dir)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("skipping directory", "error", err.Error())
			continue
		}

		if err := w.fsWatcher.Add(path); err != nil {
			if path == dir {
				return zerr.With(zerr.Wrap(err, domain.ErrWatchAddFailed.Error()), "path", path)
			}
			w.logger.Warn("failed to watch directory", "path", path, "error", err.Error())
		}
	}
	return nil
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			if watchEvent.Operation == ports.OpCreate {
				w.addCreated(ctx, event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file system watch error", "error", err.Error())
		}
	}
}

// addCreated starts watching a directory created after Start.
func (w *Watcher) addCreated(ctx context.Context, path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.addTree(ctx, path); err != nil && ctx.Err() == nil {
		w.logger.Warn("failed to watch new directory", "path", path, "error", err.Error())
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
