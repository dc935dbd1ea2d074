package scheduler_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/pool"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/asyncwalk/internal/core/ports/mocks"
	"go.trai.ch/asyncwalk/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

// newScheduler builds a scheduler with permissive tracer and logger mocks.
func newScheduler(t *testing.T, fsys ports.FileSystem, ex ports.BlockingExecutor) *scheduler.Scheduler {
	t.Helper()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return scheduler.NewScheduler(fsys, ex, tracer, logger)
}

// newPool returns a pool that is drained when the test ends.
func newPool(t *testing.T, size int) *pool.Pool {
	t.Helper()
	p := pool.New(size)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

type result struct {
	entries []*domain.Entry
	errs    []*domain.TraversalError
}

func (r result) paths() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Path())
	}
	return out
}

// drain pulls the traversal to completion.
func drain(t *testing.T, tr *scheduler.Traversal) result {
	t.Helper()
	var r result
	for {
		e, err := tr.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return r
		}
		if err != nil {
			var te *domain.TraversalError
			require.ErrorAs(t, err, &te)
			r.errs = append(r.errs, te)
			continue
		}
		r.entries = append(r.entries, e)
	}
}

// writeTree creates files and directories under root. Names ending in "/" are
// directories.
func writeTree(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(p, domain.DirPerm))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(name), domain.PrivateFilePerm))
	}
}

// requirePreOrder checks that between a directory and any of its descendants
// only other descendants of that directory appear.
func requirePreOrder(t *testing.T, root string, paths []string) {
	t.Helper()
	index := make(map[string]int, len(paths))
	for i, p := range paths {
		index[p] = i
	}
	for i, p := range paths {
		parent := filepath.Dir(p)
		if parent == root {
			continue
		}
		pi, ok := index[parent]
		require.True(t, ok, "parent of %s was never yielded", p)
		require.Less(t, pi, i, "%s yielded before its parent", p)
		for _, between := range paths[pi+1 : i] {
			require.True(t, strings.HasPrefix(between, parent+string(filepath.Separator)),
				"%s interleaves the subtree of %s", between, parent)
		}
	}
}

// countingFS tracks open handles and concurrent blocking calls.
type countingFS struct {
	ports.FileSystem

	mu     sync.Mutex
	open   int
	opened map[string]int

	busy    atomic.Int32
	maxBusy atomic.Int32
}

func newCountingFS(inner ports.FileSystem) *countingFS {
	return &countingFS{FileSystem: inner, opened: make(map[string]int)}
}

func (c *countingFS) enter() func() {
	n := c.busy.Add(1)
	for {
		m := c.maxBusy.Load()
		if n <= m || c.maxBusy.CompareAndSwap(m, n) {
			break
		}
	}
	return func() { c.busy.Add(-1) }
}

func (c *countingFS) OpenDir(path string) (ports.DirHandle, error) {
	defer c.enter()()
	h, err := c.FileSystem.OpenDir(path)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.open++
	c.opened[path]++
	c.mu.Unlock()
	return &countingHandle{inner: h, fs: c}, nil
}

func (c *countingFS) openHandles() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *countingFS) openCount(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened[path]
}

type countingHandle struct {
	inner ports.DirHandle
	fs    *countingFS
	once  sync.Once
}

func (h *countingHandle) ReadEntry() (ports.DirEntry, error) {
	defer h.fs.enter()()
	return h.inner.ReadEntry()
}

func (h *countingHandle) Buffered() bool {
	bh, ok := h.inner.(ports.BufferedDirHandle)
	return ok && bh.Buffered()
}

func (h *countingHandle) Close() error {
	var err error
	h.once.Do(func() {
		err = h.inner.Close()
		h.fs.mu.Lock()
		h.fs.open--
		h.fs.mu.Unlock()
	})
	return err
}

// countingExecutor counts submitted tasks.
type countingExecutor struct {
	inner ports.BlockingExecutor
	tasks atomic.Int32
}

func (c *countingExecutor) Go(task func()) error {
	c.tasks.Add(1)
	return c.inner.Go(task)
}

// gatedExecutor holds every task until the gate is opened.
type gatedExecutor struct {
	inner ports.BlockingExecutor
	gate  chan struct{}
}

func newGatedExecutor(inner ports.BlockingExecutor) *gatedExecutor {
	return &gatedExecutor{inner: inner, gate: make(chan struct{})}
}

func (g *gatedExecutor) Go(task func()) error {
	return g.inner.Go(func() {
		<-g.gate
		task()
	})
}

func (g *gatedExecutor) open() {
	close(g.gate)
}
