package ports

import (
	"context"
	"iter"
)

// DirWalker lists the directories of a tree through the async traversal.
//
//go:generate mockgen -source=dir_walker.go -destination=mocks/mock_dir_walker.go -package=mocks
type DirWalker interface {
	// Dirs yields root and every directory below it. Per-path errors are
	// yielded with an empty path; a failure on root ends the sequence.
	Dirs(ctx context.Context, root string) iter.Seq2[string, error]
}
