package app_test

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/app"
	"go.trai.ch/asyncwalk/internal/core/domain"
)

func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.txt":        "hello",
		"b/c.txt":      "world!",
		"b/d/":         "",
		".git/HEAD":    "ref",
		"b/.git/index": "x",
	})
	return root
}

func TestApp_Walk_JSON(t *testing.T) {
	root := sampleTree(t)
	h := newHarness(t, nil)

	err := h.app.Walk(context.Background(), app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: root, OutputMode: "json", Ignore: []string{".git"}},
	})
	require.NoError(t, err)

	recs := records(t, h.stdout.String())
	var paths []string
	for _, r := range ofType(recs, "entry") {
		paths = append(paths, r["path"].(string))
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b"),
		filepath.Join(root, "b", "c.txt"),
		filepath.Join(root, "b", "d"),
	}, paths)

	summaries := ofType(recs, "summary")
	require.Len(t, summaries, 1)
	assert.InDelta(t, 4, summaries[0]["entries"], 0)
	assert.InDelta(t, 2, summaries[0]["dirs"], 0)
	assert.InDelta(t, 0, summaries[0]["errors"], 0)
}

func TestApp_Walk_IgnoreFromConfig(t *testing.T) {
	root := sampleTree(t)
	cfg := domain.DefaultConfig()
	cfg.Ignore = []string{"*.txt", ".git"}
	h := newHarness(t, cfg)

	err := h.app.Walk(context.Background(), app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: root, OutputMode: "json"},
	})
	require.NoError(t, err)

	for _, r := range ofType(records(t, h.stdout.String()), "entry") {
		assert.Equal(t, "dir", r["kind"], "only directories survive: %v", r["path"])
	}
}

func TestApp_Walk_StatText(t *testing.T) {
	root := sampleTree(t)
	h := newHarness(t, nil)

	err := h.app.Walk(context.Background(), app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: root, OutputMode: "linear", Ignore: []string{".git"}},
		Stat:          true,
	})
	require.NoError(t, err)

	out := h.stdout.String()
	assert.Contains(t, out, filepath.Join(root, "a.txt"))
	assert.Contains(t, out, filepath.Join(root, "b")+"/")
	assert.Contains(t, out, "-rw-r--r--")
	assert.Contains(t, h.stderr.String(), "✓ 4 entries (2 dirs, 2 files, 0 symlinks, 0 other), 0 errors, 11 B in")
}

func TestApp_Walk_MissingRoot(t *testing.T) {
	h := newHarness(t, nil)
	missing := filepath.Join(t.TempDir(), "missing")

	err := h.app.Walk(context.Background(), app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: missing, OutputMode: "json"},
	})
	require.ErrorIs(t, err, domain.ErrTraversalFailed)

	errs := ofType(records(t, h.stdout.String()), "error")
	require.Len(t, errs, 1)
	assert.Equal(t, missing, errs[0]["path"])
	assert.Equal(t, true, errs[0]["root"])
	assert.Equal(t, "not found", errs[0]["kind"])
}

func TestApp_Walk_InvalidOptions(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		opts app.CommonOptions
		want string
	}{
		{"negative workers", app.CommonOptions{Root: root, Workers: -1}, domain.ErrInvalidWorkers.Error()},
		{"bad output mode", app.CommonOptions{Root: root, OutputMode: "fancy"}, domain.ErrInvalidOutputMode.Error()},
		{"bad ignore glob", app.CommonOptions{Root: root, Ignore: []string{"["}}, domain.ErrInvalidIgnorePattern.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			err := h.app.Walk(context.Background(), app.WalkOptions{CommonOptions: tt.opts})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApp_Walk_CancelledContext(t *testing.T) {
	root := sampleTree(t)
	h := newHarness(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.app.Walk(ctx, app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: root, OutputMode: "json"},
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Walk_TraceStats(t *testing.T) {
	root := sampleTree(t)
	h := newHarness(t, nil)

	err := h.app.Walk(context.Background(), app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: root, OutputMode: "json", TraceStats: true},
		Stat:          true,
	})
	require.NoError(t, err)

	stats := h.stderr.String()
	assert.Contains(t, stats, "OP")
	for _, op := range []string{"open", "read", "stat", "walk"} {
		assert.Contains(t, stats, "\n"+op+" ", "missing %q row", op)
	}
}

func TestApp_Walk_TUI(t *testing.T) {
	root := sampleTree(t)
	h := newHarness(t, nil)
	h.app.WithDisableTick().WithTeaOptions(
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	err := h.app.Walk(context.Background(), app.WalkOptions{
		CommonOptions: app.CommonOptions{Root: root, OutputMode: "tui"},
	})
	require.NoError(t, err)
	assert.Empty(t, h.stdout.String())
}
