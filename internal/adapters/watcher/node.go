package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/asyncwalk/internal/adapters/logger"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Factory{logger: log}, nil
		},
	})
}

// Factory creates watchers bound to a per-run directory walker.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory logging through logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New creates a watcher discovering directories through walker.
func (f *Factory) New(walker ports.DirWalker) (ports.Watcher, error) {
	w, err := NewWatcher(walker, f.logger)
	if err != nil {
		return nil, err
	}
	return w, nil
}
