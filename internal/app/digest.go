package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/asyncwalk/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/asyncwalk/internal/engine/bridge"
	"golang.org/x/sync/errgroup"
)

// DigestReport is the result of digest.
type DigestReport struct {
	Root   string `json:"root"`
	Digest string `json:"digest"`
	Files  int    `json:"files"`
	Bytes  int64  `json:"bytes"`
}

type fileHash struct {
	sum  uint64
	size int64
}

// digester hashes every regular file the traversal yields. Hashing runs on
// the same executor as the traversal; at most limit files are in flight.
type digester struct {
	ports.Renderer
	ctx      context.Context //nolint:containedctx // scoped to one command
	root     string
	executor ports.BlockingExecutor
	hasher   ports.Hasher
	g        *errgroup.Group

	mu     sync.Mutex
	digest *fs.TreeDigest
	errs   int
	err    error
}

func (a *App) newDigester(ctx context.Context, inner ports.Renderer, root string, sess *session) *digester {
	g := &errgroup.Group{}
	g.SetLimit(2 * sess.pool.Size())
	return &digester{
		Renderer: inner,
		ctx:      ctx,
		root:     root,
		executor: sess.pool,
		hasher:   a.hasher,
		g:        g,
		digest:   fs.NewTreeDigest(),
	}
}

func (d *digester) OnEntry(entry *domain.Entry, _ *domain.Metadata) {
	if entry.Kind() != domain.KindFile {
		return
	}
	path := entry.Path()
	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		rel = path
	}

	d.g.Go(func() error {
		f := bridge.Submit(d.executor, func() (fileHash, error) {
			sum, size, err := d.hasher.ComputeFileHash(path)
			if err != nil {
				return fileHash{}, err
			}
			return fileHash{sum: sum, size: size}, nil
		})

		res, err := f.Wait(d.ctx)
		if err != nil {
			if ctxErr := d.ctx.Err(); ctxErr != nil {
				f.Cancel(nil)
				return ctxErr
			}
			d.mu.Lock()
			d.errs++
			d.mu.Unlock()
			d.Renderer.OnError(&domain.TraversalError{Path: path, Op: domain.OpRead, Err: err})
			return nil
		}

		d.mu.Lock()
		d.digest.Add(rel, res.sum, res.size)
		d.mu.Unlock()
		return nil
	})
}

// OnSummary waits for outstanding hashes before the summary goes out.
func (d *digester) OnSummary(s domain.Summary) {
	err := d.g.Wait()

	d.mu.Lock()
	d.err = err
	s.Errors += d.errs
	s.Bytes = d.digest.Bytes()
	d.mu.Unlock()

	d.Renderer.OnSummary(s)
}

func (d *digester) report() (DigestReport, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DigestReport{
		Root:   d.root,
		Digest: d.digest.Sum(),
		Files:  d.digest.Files(),
		Bytes:  d.digest.Bytes(),
	}, d.errs, d.err
}

// Digest computes an order-independent content digest of the tree.
func (a *App) Digest(ctx context.Context, opts CommonOptions) (*DigestReport, error) {
	rc, err := a.resolve(opts)
	if err != nil {
		return nil, err
	}
	rc.stat = false

	sess := a.newSession(rc)
	defer a.closeSession(rc, sess)

	format := linear.FormatText
	if rc.mode == domain.OutputJSON {
		format = linear.FormatJSON
	}
	d := a.newDigester(ctx, linear.NewRenderer(a.stderr, a.stderr, format), rc.root, sess)

	summary, err := a.walk(ctx, sess, rc, d, false)
	if err != nil {
		// Let in-flight hashes settle before the pool closes.
		_ = d.g.Wait()
		return nil, err
	}

	report, hashErrs, err := d.report()
	if err != nil {
		return nil, err
	}

	if format == linear.FormatJSON {
		_ = json.NewEncoder(a.stdout).Encode(report)
	} else {
		_, _ = fmt.Fprintf(a.stdout, "%s  %d  %d\n", report.Digest, report.Files, report.Bytes)
	}

	if summary.Errors > 0 || hashErrs > 0 {
		return &report, domain.ErrTraversalFailed
	}
	return &report, nil
}
