package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher hashes file contents with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content. The returned size
// is the number of bytes that went into the hash.
func (h *Hasher) ComputeFileHash(path string) (uint64, int64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	n, err := io.Copy(hasher, f)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), n, nil
}

// TreeDigest combines per-file hashes into one digest that does not depend on
// the order files were visited in.
type TreeDigest struct {
	files map[string]uint64
	bytes int64
}

// NewTreeDigest creates an empty digest.
func NewTreeDigest() *TreeDigest {
	return &TreeDigest{files: make(map[string]uint64)}
}

// Add records the content hash and size of the file at relPath.
// Paths are normalized to forward slashes.
func (d *TreeDigest) Add(relPath string, hash uint64, size int64) {
	d.files[strings.ReplaceAll(relPath, string(os.PathSeparator), "/")] = hash
	d.bytes += size
}

// Files returns the number of files recorded.
func (d *TreeDigest) Files() int {
	return len(d.files)
}

// Bytes returns the total size recorded.
func (d *TreeDigest) Bytes() int64 {
	return d.bytes
}

// Sum returns the digest as 16 hex digits.
func (d *TreeDigest) Sum() string {
	paths := make([]string, 0, len(d.files))
	for p := range d.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	hasher := xxhash.New()
	var buf [8]byte
	for _, p := range paths {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], d.files[p])
		_, _ = hasher.Write(buf[:])
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
