package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

const (
	// FileSystemNodeID is the graft ID of the OS filesystem.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// HasherNodeID is the graft ID of the content hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFileSystem(DefaultBatchSize), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
