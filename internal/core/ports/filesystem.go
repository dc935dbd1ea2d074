// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/asyncwalk/internal/core/domain"

// DirEntry is one raw record returned by a directory read.
type DirEntry struct {
	Name string
	Kind domain.EntryKind
}

// FileSystem is the blocking filesystem surface the traversal is built on.
// Every method may block on the operating system; callers are expected to run
// them through a BlockingExecutor.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// OpenDir opens path for enumeration.
	OpenDir(path string) (DirHandle, error)

	// Lstat returns the metadata of path without following a final symlink.
	Lstat(path string) (*domain.Metadata, error)
}

// DirHandle is an open directory.
type DirHandle interface {
	// ReadEntry returns the next entry, or io.EOF once the directory is exhausted.
	// The "." and ".." entries are never returned.
	ReadEntry() (DirEntry, error)

	// Close releases the handle. It is safe to call more than once.
	Close() error
}

// BufferedDirHandle is implemented by handles that read ahead.
// When Buffered reports true the next ReadEntry is served from memory and does
// not block.
type BufferedDirHandle interface {
	DirHandle
	Buffered() bool
}
