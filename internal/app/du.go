package app

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"go.trai.ch/asyncwalk/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

// DuOptions configures the du command.
type DuOptions struct {
	CommonOptions
	// Bytes prints exact byte counts instead of binary units.
	Bytes bool
}

// DuUsage is the size of one top-level child of the root.
type DuUsage struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// DuReport is the result of du.
type DuReport struct {
	Root     string    `json:"root"`
	Total    int64     `json:"total"`
	Children []DuUsage `json:"children"`
}

// sizeCollector sums entry sizes per top-level child and forwards errors and
// the summary to the wrapped renderer.
type sizeCollector struct {
	ports.Renderer
	root string

	mu    sync.Mutex
	sizes map[string]int64
	total int64
}

func newSizeCollector(inner ports.Renderer, root string) *sizeCollector {
	return &sizeCollector{Renderer: inner, root: root, sizes: make(map[string]int64)}
}

func (c *sizeCollector) OnEntry(entry *domain.Entry, meta *domain.Metadata) {
	rel, err := filepath.Rel(c.root, entry.Path())
	if err != nil {
		return
	}
	top, _, _ := strings.Cut(rel, string(filepath.Separator))

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sizes[top]; !ok {
		c.sizes[top] = 0
	}
	if meta != nil && !meta.IsDir() {
		c.sizes[top] += meta.Size
		c.total += meta.Size
	}
}

func (c *sizeCollector) report() DuReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := DuReport{Root: c.root, Total: c.total, Children: make([]DuUsage, 0, len(c.sizes))}
	for name, n := range c.sizes {
		r.Children = append(r.Children, DuUsage{Name: name, Bytes: n})
	}
	slices.SortFunc(r.Children, func(a, b DuUsage) int {
		if d := cmp.Compare(b.Bytes, a.Bytes); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})
	return r
}

// Du sums the size of everything below each top-level child of opts.Root.
func (a *App) Du(ctx context.Context, opts DuOptions) (*DuReport, error) {
	rc, err := a.resolve(opts.CommonOptions)
	if err != nil {
		return nil, err
	}
	rc.stat = true

	sess := a.newSession(rc)
	defer a.closeSession(rc, sess)

	format := linear.FormatText
	if rc.mode == domain.OutputJSON {
		format = linear.FormatJSON
	}
	collector := newSizeCollector(linear.NewRenderer(a.stderr, a.stderr, format), rc.root)

	summary, err := a.walk(ctx, sess, rc, collector, false)
	if err != nil {
		return nil, err
	}

	report := collector.report()
	if format == linear.FormatJSON {
		_ = json.NewEncoder(a.stdout).Encode(report)
	} else {
		a.printDu(report, opts.Bytes)
	}

	if summary.Errors > 0 {
		return &report, domain.ErrTraversalFailed
	}
	return &report, nil
}

func (a *App) printDu(r DuReport, exact bool) {
	size := func(n int64) string {
		if exact {
			return fmt.Sprint(n)
		}
		return humanize.IBytes(uint64(n)) //nolint:gosec // sizes are never negative
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, c := range r.Children {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", size(c.Bytes), c.Name)
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\n", size(r.Total), "total")
	_ = w.Flush()
}
