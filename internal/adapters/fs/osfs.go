// Package fs provides the operating system filesystem adapters: directory
// enumeration, lstat, ignore filtering and content hashing.
package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"syscall"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

// DefaultBatchSize is the number of entries fetched per directory read.
const DefaultBatchSize = 128

var (
	_ ports.FileSystem        = (*OSFileSystem)(nil)
	_ ports.BufferedDirHandle = (*dirHandle)(nil)
)

// OSFileSystem implements ports.FileSystem on top of the os package.
// Its methods block; the traversal runs them on the worker pool.
type OSFileSystem struct {
	batch int
}

// NewOSFileSystem creates a filesystem reading batch entries per directory read.
// A batch of zero or less uses DefaultBatchSize.
func NewOSFileSystem(batch int) *OSFileSystem {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &OSFileSystem{batch: batch}
}

// OpenDir opens path for enumeration. Opening anything but a directory fails
// with ENOTDIR.
func (o *OSFileSystem) OpenDir(path string) (ports.DirHandle, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the traversal
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, &iofs.PathError{Op: "open", Path: path, Err: syscall.ENOTDIR}
	}

	return &dirHandle{f: f, batch: o.batch}, nil
}

// Lstat returns the metadata of path without following a final symlink.
func (o *OSFileSystem) Lstat(path string) (*domain.Metadata, error) {
	return lstat(path)
}

// dirHandle reads a directory in batches and serves entries from memory
// between reads.
type dirHandle struct {
	f     *os.File
	batch int
	buf   []os.DirEntry
	err   error
}

func (h *dirHandle) ReadEntry() (ports.DirEntry, error) {
	if len(h.buf) == 0 {
		if h.err != nil {
			return ports.DirEntry{}, h.err
		}
		if h.f == nil {
			return ports.DirEntry{}, os.ErrClosed
		}

		entries, err := h.f.ReadDir(h.batch)
		h.buf = entries
		if err != nil {
			h.err = err
		}
		if len(h.buf) == 0 {
			if h.err == nil {
				h.err = io.EOF
			}
			return ports.DirEntry{}, h.err
		}
	}

	d := h.buf[0]
	h.buf[0] = nil
	h.buf = h.buf[1:]
	return ports.DirEntry{Name: d.Name(), Kind: domain.KindFromMode(d.Type())}, nil
}

// Buffered reports whether the next ReadEntry can be answered without a
// syscall, either from the batch or from a remembered end or error.
func (h *dirHandle) Buffered() bool {
	return len(h.buf) > 0 || h.err != nil
}

func (h *dirHandle) Close() error {
	if h.f == nil {
		return nil
	}
	err := h.f.Close()
	h.f = nil
	h.buf = nil
	return err
}
