package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnEntry forwards an entry to the TUI.
func (r *Renderer) OnEntry(entry *domain.Entry, meta *domain.Metadata) {
	msg := MsgEntry{Path: entry.Path(), Kind: entry.Kind()}
	if meta != nil && !meta.IsDir() {
		msg.Size = meta.Size
		msg.HasSize = true
	}
	r.program.Send(msg)
}

// OnError forwards an error item to the TUI.
func (r *Renderer) OnError(err error) {
	msg := MsgError{Text: err.Error()}
	var te *domain.TraversalError
	if errors.As(err, &te) {
		msg.Path = te.Path
	}
	r.program.Send(msg)
}

// OnSummary forwards the final summary to the TUI.
func (r *Renderer) OnSummary(summary domain.Summary) {
	r.program.Send(MsgSummary{Summary: summary})
}

// Model returns the model driven by the program.
func (r *Renderer) Model() *Model {
	return r.model
}
