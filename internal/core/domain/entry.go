package domain

import (
	"context"
	"io/fs"
)

// EntryKind classifies a filesystem object as reported by a directory read.
type EntryKind uint8

const (
	// KindFile is a regular file.
	KindFile EntryKind = iota
	// KindDir is a directory.
	KindDir
	// KindSymlink is a symbolic link. Symlinks are never followed.
	KindSymlink
	// KindOther covers devices, sockets, pipes and anything else.
	KindOther
)

// String returns the lowercase name of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the EntryKind from a file mode without following links.
func KindFromMode(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// MetadataFunc fetches the metadata of a single entry.
// It is expected to offload the underlying blocking call.
type MetadataFunc func(ctx context.Context) (*Metadata, error)

// Entry is one object discovered by a traversal.
// Its kind comes from the directory read itself; anything else is fetched
// on demand through Metadata.
type Entry struct {
	path  string
	name  string
	kind  EntryKind
	depth int
	meta  MetadataFunc
}

// NewEntry creates an Entry. meta may be nil, in which case Metadata reports
// ErrMetadataUnavailable.
func NewEntry(path, name string, kind EntryKind, depth int, meta MetadataFunc) *Entry {
	return &Entry{
		path:  path,
		name:  name,
		kind:  kind,
		depth: depth,
		meta:  meta,
	}
}

// Path returns the entry path, joined onto the traversal root.
func (e *Entry) Path() string {
	return e.path
}

// Name returns the final path element.
func (e *Entry) Name() string {
	return e.name
}

// Kind returns the kind reported by the directory read.
func (e *Entry) Kind() EntryKind {
	return e.kind
}

// IsDir reports whether the entry is a directory. Symlinks to directories are not.
func (e *Entry) IsDir() bool {
	return e.kind == KindDir
}

// Depth returns the distance from the root; direct children of the root have depth 1.
func (e *Entry) Depth() int {
	return e.depth
}

// Metadata fetches the entry's metadata. Every call performs a fresh lstat,
// so callers that need it more than once should keep the result.
func (e *Entry) Metadata(ctx context.Context) (*Metadata, error) {
	if e.meta == nil {
		return nil, &TraversalError{Path: e.path, Op: OpStat, Err: ErrMetadataUnavailable}
	}
	return e.meta(ctx)
}
