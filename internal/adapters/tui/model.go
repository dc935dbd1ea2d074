// Package tui provides the interactive progress view of a traversal.
package tui

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/ui/output"
)

const (
	defaultTickInterval = 100 * time.Millisecond
	defaultMaxErrors    = 5
)

// Model is the Bubble Tea state of the progress view.
type Model struct {
	Root     string
	Counts   domain.Summary
	Current  string
	Errors   []string
	Done     bool
	Quitting bool
	Width    int

	// MaxErrors bounds the sliding window of recent errors.
	MaxErrors    int
	TickInterval time.Duration
	DisableTick  bool
	Started      time.Time
	Now          time.Time

	Output *termenv.Output
	onQuit func()
}

// NewModel creates a model for a traversal of root. A nil w means stderr.
func NewModel(w io.Writer, root string) Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	now := time.Now()
	return Model{
		Root:         root,
		Counts:       domain.Summary{Root: root},
		Errors:       make([]string, 0, defaultMaxErrors),
		MaxErrors:    defaultMaxErrors,
		TickInterval: defaultTickInterval,
		Started:      now,
		Now:          now,
		Output:       out,
	}
}

// WithDisableTick returns a copy of the model that never schedules ticks.
func (m Model) WithDisableTick() Model {
	m.DisableTick = true
	return m
}

// WithOnQuit returns a copy of the model that calls fn when the user quits.
func (m Model) WithOnQuit(fn func()) Model {
	m.onQuit = fn
	return m
}

func (m *Model) tick() tea.Cmd {
	if m.DisableTick || m.Done {
		return nil
	}
	return tea.Tick(m.TickInterval, func(t time.Time) tea.Msg {
		return msgTick(t)
	})
}

// Init schedules the first tick.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			if m.onQuit != nil {
				m.onQuit()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case msgTick:
		m.Now = time.Time(msg)
		return m, m.tick()

	case MsgEntry:
		m.Current = msg.Path
		m.Counts.AddKind(msg.Kind)
		if msg.HasSize {
			m.Counts.Bytes += msg.Size
		}

	case MsgError:
		m.Counts.AddError()
		m.pushError(msg.Text)

	case MsgSummary:
		m.Counts = msg.Summary
		m.Done = true
		m.Current = ""
	}

	return m, nil
}

func (m *Model) pushError(text string) {
	limit := m.MaxErrors
	if limit <= 0 {
		limit = defaultMaxErrors
	}
	m.Errors = append(m.Errors, text)
	if over := len(m.Errors) - limit; over > 0 {
		m.Errors = append(m.Errors[:0], m.Errors[over:]...)
	}
}

// Elapsed returns the time since the model was created, or the final
// elapsed time once the summary arrived.
func (m *Model) Elapsed() time.Duration {
	if m.Done {
		return m.Counts.Elapsed
	}
	return m.Now.Sub(m.Started)
}
