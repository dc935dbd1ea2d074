package tui_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/tui"
	"go.trai.ch/asyncwalk/internal/core/domain"
)

func newRenderer(t *testing.T) *tui.Renderer {
	t.Helper()

	model := tui.NewModel(io.Discard, "/srv").WithDisableTick()
	return tui.NewRenderer(
		&model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	r := newRenderer(t)

	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	r := newRenderer(t)
	require.NoError(t, r.Start(context.Background()))

	r.OnEntry(domain.NewEntry("/srv/a", "a", domain.KindDir, 1, nil), nil)
	r.OnEntry(domain.NewEntry("/srv/a/f", "f", domain.KindFile, 2, nil), &domain.Metadata{Kind: domain.KindFile, Size: 42})
	r.OnError(&domain.TraversalError{Path: "/srv/b", Op: domain.OpOpen, Err: fs.ErrPermission})
	r.OnError(errors.New("plain"))
	r.OnSummary(domain.Summary{Root: "/srv", Entries: 2, Dirs: 1, Files: 1, Errors: 2, Bytes: 42})

	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	m := r.Model()
	assert.True(t, m.Done)
	assert.Equal(t, 2, m.Counts.Entries)
	assert.Equal(t, int64(42), m.Counts.Bytes)
	assert.Len(t, m.Errors, 2)
}
