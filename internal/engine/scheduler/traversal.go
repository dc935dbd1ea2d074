package scheduler

import (
	"context"
	"errors"
	"io"
	"iter"
	"path/filepath"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/asyncwalk/internal/engine/bridge"
)

// Status is the outcome of a non-blocking pull.
type Status uint8

const (
	// StatusPending means a blocking operation is in flight; wait on Ready.
	StatusPending Status = iota
	// StatusReady means an item was produced.
	StatusReady
	// StatusDone means the traversal is finished. It stays finished.
	StatusDone
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	default:
		return "done"
	}
}

// Item is one element of a traversal: either an entry or a per-path error.
type Item struct {
	Entry *domain.Entry
	Err   error
}

type opKind uint8

const (
	opOpen opKind = iota
	opRead
)

// frame is one directory on the traversal stack.
type frame struct {
	path   string
	depth  int
	state  domain.HandleState
	handle ports.DirHandle
}

type opResult struct {
	handle ports.DirHandle
	entry  ports.DirEntry
}

// pending is the single blocking operation a traversal may have in flight.
type pending struct {
	kind   opKind
	frame  *frame
	future *bridge.Future[opResult]
	span   ports.Span
}

var closedCh = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Traversal is a lazy, pull-based, pre-order walk of one directory tree.
// Every blocking call runs on the scheduler's executor and at most one of them
// is in flight at any time. Errors on individual paths are yielded as items;
// only a failure to open the root ends the traversal early.
//
// A Traversal is meant for a single consumer and is not safe for concurrent
// use. Close releases every directory handle it holds.
type Traversal struct {
	s    *Scheduler
	ctx  context.Context //nolint:containedctx // Parents the per-operation spans
	span ports.Span
	root string

	stack []*frame
	op    *pending
	// pruneable is the frame pushed for the directory entry yielded last.
	pruneable *frame

	closed   bool
	finished bool
	entries  int
	errs     int
}

func newTraversal(ctx context.Context, s *Scheduler, root string, span ports.Span) *Traversal {
	return &Traversal{
		s:     s,
		ctx:   ctx,
		span:  span,
		root:  root,
		stack: []*frame{{path: root, state: domain.StateUnopened}},
	}
}

// Root returns the path the traversal started from.
func (t *Traversal) Root() string {
	return t.root
}

// Poll advances the traversal without blocking.
// On StatusPending the caller waits on Ready and polls again.
func (t *Traversal) Poll() (Item, Status) {
	for {
		if t.closed || len(t.stack) == 0 {
			t.finish()
			return Item{}, StatusDone
		}

		if t.op == nil {
			t.issue()
		}

		if !t.op.future.Ready() {
			return Item{}, StatusPending
		}

		op := t.op
		t.op = nil
		if item, ok := t.apply(op); ok {
			return item, StatusReady
		}
	}
}

// Ready returns a channel that is closed once the next Poll can make progress.
func (t *Traversal) Ready() <-chan struct{} {
	if t.op == nil {
		return closedCh
	}
	return t.op.future.Done()
}

// Next returns the next entry, or the next per-path error as a
// *domain.TraversalError. It returns io.EOF once the traversal is finished.
// If ctx is done first Next returns ctx.Err(); the operation in flight is kept
// and the following call picks it up again.
func (t *Traversal) Next(ctx context.Context) (*domain.Entry, error) {
	for {
		item, status := t.Poll()
		switch status {
		case StatusReady:
			if item.Err != nil {
				return nil, item.Err
			}
			return item.Entry, nil
		case StatusDone:
			return nil, io.EOF
		case StatusPending:
		}

		select {
		case <-t.Ready():
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Entries adapts the traversal to a range loop. Per-path errors are yielded
// alongside a nil entry and the loop goes on. A done ctx is yielded once and
// ends the loop. The traversal is closed when the loop ends, early or not;
// errors from closing handles are logged.
func (t *Traversal) Entries(ctx context.Context) iter.Seq2[*domain.Entry, error] {
	return func(yield func(*domain.Entry, error) bool) {
		defer func() {
			if err := t.Close(); err != nil {
				t.s.logger.Warn("failed to release directory handles", "root", t.root, "error", err.Error())
			}
		}()

		for {
			entry, err := t.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}

			var te *domain.TraversalError
			if err != nil && !errors.As(err, &te) {
				yield(nil, err)
				return
			}

			if !yield(entry, err) {
				return
			}
		}
	}
}

// SkipDir prunes the directory entry yielded last, so it is never opened.
// It reports false when the last item was not a directory or the traversal
// has already moved past it.
func (t *Traversal) SkipDir() bool {
	f := t.pruneable
	t.pruneable = nil
	if f == nil || t.op != nil || len(t.stack) == 0 {
		return false
	}
	if t.stack[len(t.stack)-1] != f || f.state != domain.StateUnopened {
		return false
	}
	t.stack = t.stack[:len(t.stack)-1]
	return true
}

// Close stops the traversal and releases every directory handle it holds.
// An operation still in flight is abandoned; a handle it produces later is
// closed as soon as it arrives. Close is idempotent and returns the errors
// reported while closing handles.
func (t *Traversal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	var busy *frame
	if op := t.op; op != nil {
		t.op = nil
		op.span.SetAttribute("walk.cancelled", true)
		op.span.End()

		switch op.kind {
		case opOpen:
			op.future.Cancel(func(r opResult) {
				if r.handle != nil {
					_ = r.handle.Close()
				}
			})
		case opRead:
			// The worker may still be reading from this handle.
			busy = op.frame
			h := op.frame.handle
			op.frame.handle = nil
			op.future.Cancel(func(opResult) { _ = h.Close() })
		}
	}

	var errs []error
	for i := len(t.stack) - 1; i >= 0; i-- {
		f := t.stack[i]
		if f == busy || f.handle == nil {
			continue
		}
		if err := f.handle.Close(); err != nil {
			errs = append(errs, &domain.TraversalError{Path: f.path, Op: domain.OpRead, Root: f.depth == 0, Err: err})
		}
		f.handle = nil
	}
	t.stack = nil
	t.pruneable = nil
	t.finish()

	return errors.Join(errs...)
}

// issue starts the next operation for the top frame.
func (t *Traversal) issue() {
	top := t.stack[len(t.stack)-1]
	fsys := t.s.fs

	switch top.state {
	case domain.StateUnopened:
		top.state = domain.StateOpening
		path := top.path
		_, span := t.s.tracer.Start(t.ctx, "open", ports.WithAttribute("walk.path", path))
		t.op = &pending{
			kind:  opOpen,
			frame: top,
			span:  span,
			future: bridge.Submit(t.s.executor, func() (opResult, error) {
				h, err := fsys.OpenDir(path)
				return opResult{handle: h}, err
			}),
		}
	default:
		h := top.handle
		_, span := t.s.tracer.Start(t.ctx, "read", ports.WithAttribute("walk.path", top.path))
		op := &pending{kind: opRead, frame: top, span: span}

		if bh, ok := h.(ports.BufferedDirHandle); ok && bh.Buffered() {
			e, err := bh.ReadEntry()
			span.SetAttribute("walk.buffered", true)
			op.future = bridge.Resolved(opResult{entry: e}, err)
		} else {
			op.future = bridge.Submit(t.s.executor, func() (opResult, error) {
				e, err := h.ReadEntry()
				return opResult{entry: e}, err
			})
		}
		t.op = op
	}
}

// apply folds a resolved operation into the stack. It reports whether the
// operation produced an item.
func (t *Traversal) apply(op *pending) (Item, bool) {
	defer op.span.End()
	t.pruneable = nil

	res, err := op.future.Result()
	f := op.frame

	switch op.kind {
	case opOpen:
		if err == nil && res.handle == nil {
			err = domain.ErrNoDirHandle
		}
		if err != nil {
			op.span.RecordError(err)
			t.pop(f)
			return t.failed(f, domain.OpOpen, err), true
		}
		f.state = domain.StateOpen
		f.handle = res.handle
		return Item{}, false

	default:
		if errors.Is(err, io.EOF) {
			f.state = domain.StateExhausted
			t.release(f)
			t.pop(f)
			return Item{}, false
		}
		if err != nil {
			op.span.RecordError(err)
			t.release(f)
			t.pop(f)
			return t.failed(f, domain.OpRead, err), true
		}
		return Item{Entry: t.discovered(f, res.entry)}, true
	}
}

func (t *Traversal) discovered(parent *frame, d ports.DirEntry) *domain.Entry {
	path := filepath.Join(parent.path, d.Name)
	depth := parent.depth + 1

	if d.Kind == domain.KindDir {
		child := &frame{path: path, depth: depth, state: domain.StateUnopened}
		t.stack = append(t.stack, child)
		t.pruneable = child
	}

	t.entries++
	return domain.NewEntry(path, d.Name, d.Kind, depth, t.metadata(path))
}

func (t *Traversal) failed(f *frame, op domain.Op, err error) Item {
	t.errs++
	root := f.depth == 0
	if root {
		t.s.logger.Debug("traversal root failed", "root", t.root, "op", string(op))
	}
	return Item{Err: &domain.TraversalError{Path: f.path, Op: op, Root: root, Err: err}}
}

// pop removes f, which is always the top frame when its operation resolves.
func (t *Traversal) pop(f *frame) {
	if n := len(t.stack); n > 0 && t.stack[n-1] == f {
		t.stack[n-1] = nil
		t.stack = t.stack[:n-1]
	}
}

func (t *Traversal) release(f *frame) {
	if f.handle == nil {
		return
	}
	if err := f.handle.Close(); err != nil {
		t.s.logger.Warn("failed to close directory", "path", f.path, "error", err)
	}
	f.handle = nil
}

func (t *Traversal) finish() {
	if t.finished {
		return
	}
	t.finished = true
	t.span.SetAttribute("walk.entries", t.entries)
	t.span.SetAttribute("walk.errors", t.errs)
	t.span.End()
	t.s.logger.Debug("traversal finished", "root", t.root, "entries", t.entries, "errors", t.errs)
}

// metadata returns the on-demand metadata source of the entry at path.
// Each call runs one lstat on the executor.
func (t *Traversal) metadata(path string) domain.MetadataFunc {
	s := t.s
	return func(ctx context.Context) (*domain.Metadata, error) {
		ctx, span := s.tracer.Start(ctx, "stat", ports.WithAttribute("walk.path", path))
		defer span.End()

		fut := bridge.Submit(s.executor, func() (*domain.Metadata, error) {
			return s.fs.Lstat(path)
		})
		meta, err := fut.Wait(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				fut.Cancel(nil)
				return nil, err
			}
			span.RecordError(err)
			return nil, &domain.TraversalError{Path: path, Op: domain.OpStat, Err: err}
		}
		return meta, nil
	}
}
