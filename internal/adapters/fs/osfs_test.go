package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/fs"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
)

func readAll(t *testing.T, h ports.DirHandle) []ports.DirEntry {
	t.Helper()
	var out []ports.DirEntry
	for {
		e, err := h.ReadEntry()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, e)
	}
}

func TestOSFileSystem_OpenDir_ReadsAllEntries(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), domain.PrivateFilePerm))
	require.NoError(t, os.Symlink("a.txt", filepath.Join(tmpDir, "link")))

	// A batch of one forces a read per entry.
	h, err := fs.NewOSFileSystem(1).OpenDir(tmpDir)
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	entries := readAll(t, h)
	slices.SortFunc(entries, func(a, b ports.DirEntry) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	assert.Equal(t, []ports.DirEntry{
		{Name: "a.txt", Kind: domain.KindFile},
		{Name: "link", Kind: domain.KindSymlink},
		{Name: "sub", Kind: domain.KindDir},
	}, entries)

	// Exhaustion is sticky.
	_, err = h.ReadEntry()
	require.ErrorIs(t, err, io.EOF)
}

func TestOSFileSystem_OpenDir_EmptyDirectory(t *testing.T) {
	h, err := fs.NewOSFileSystem(0).OpenDir(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	_, err = h.ReadEntry()
	require.ErrorIs(t, err, io.EOF)
}

func TestOSFileSystem_OpenDir_Buffered(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, domain.PrivateFilePerm))
	}

	h, err := fs.NewOSFileSystem(10).OpenDir(tmpDir)
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	bh, ok := h.(ports.BufferedDirHandle)
	require.True(t, ok)
	assert.False(t, bh.Buffered(), "nothing is read before the first call")

	_, err = bh.ReadEntry()
	require.NoError(t, err)
	assert.True(t, bh.Buffered())

	_, err = bh.ReadEntry()
	require.NoError(t, err)
	_, err = bh.ReadEntry()
	require.NoError(t, err)

	// The batch is spent; the next read has to hit the directory again.
	assert.False(t, bh.Buffered())
	_, err = bh.ReadEntry()
	require.ErrorIs(t, err, io.EOF)
	assert.True(t, bh.Buffered(), "a remembered end is served from memory")
}

func TestOSFileSystem_OpenDir_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), domain.PrivateFilePerm))

	fsys := fs.NewOSFileSystem(0)

	t.Run("missing", func(t *testing.T) {
		_, err := fsys.OpenDir(filepath.Join(tmpDir, "missing"))
		require.Error(t, err)
		assert.Equal(t, domain.ErrorNotFound, domain.ClassifyError(err))
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := fsys.OpenDir(file)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorNotADirectory, domain.ClassifyError(err))
	})
}

func TestOSFileSystem_OpenDir_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, domain.DirPerm) })

	_, err := fs.NewOSFileSystem(0).OpenDir(locked)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorPermission, domain.ClassifyError(err))
}

func TestDirHandle_CloseIsIdempotent(t *testing.T) {
	h, err := fs.NewOSFileSystem(0).OpenDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	_, err = h.ReadEntry()
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestOSFileSystem_Lstat(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "data.bin")
	require.NoError(t, os.WriteFile(file, []byte("12345"), domain.PrivateFilePerm))
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Symlink(file, link))

	fsys := fs.NewOSFileSystem(0)

	meta, err := fsys.Lstat(file)
	require.NoError(t, err)
	assert.Equal(t, file, meta.Path)
	assert.Equal(t, domain.KindFile, meta.Kind)
	assert.Equal(t, int64(5), meta.Size)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), meta.Mode.Perm())
	assert.False(t, meta.ModTime.IsZero())

	meta, err = fsys.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSymlink, meta.Kind, "lstat must not follow the link")

	meta, err = fsys.Lstat(tmpDir)
	require.NoError(t, err)
	assert.True(t, meta.IsDir())

	_, err = fsys.Lstat(filepath.Join(tmpDir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
