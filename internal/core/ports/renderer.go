package ports

import (
	"context"

	"go.trai.ch/asyncwalk/internal/core/domain"
)

// Renderer is the abstraction for output rendering.
// It decouples the traversal from presentation, allowing the same stream to
// drive either an interactive progress view or linear output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer. Asynchronous renderers may launch goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to flush and shut down.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnEntry is called for every yielded entry. meta is nil unless metadata was requested.
	OnEntry(entry *domain.Entry, meta *domain.Metadata)

	// OnError is called for every yielded error item.
	OnError(err error)

	// OnSummary is called once when the traversal finished.
	OnSummary(summary domain.Summary)
}
