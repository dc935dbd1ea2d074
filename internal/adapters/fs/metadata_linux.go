//go:build linux

package fs

import (
	iofs "io/fs"
	"time"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"golang.org/x/sys/unix"
)

// lstat reads the full stat record so access and change times come along
// with the portable fields.
func lstat(path string) (*domain.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, &iofs.PathError{Op: "lstat", Path: path, Err: err}
	}

	mode := fileMode(st.Mode)
	return &domain.Metadata{
		Path:       path,
		Kind:       domain.KindFromMode(mode),
		Mode:       mode,
		Size:       st.Size,
		ModTime:    time.Unix(st.Mtim.Unix()),
		AccessTime: time.Unix(st.Atim.Unix()),
		ChangeTime: time.Unix(st.Ctim.Unix()),
	}, nil
}

func fileMode(m uint32) iofs.FileMode {
	mode := iofs.FileMode(m & 0o777)
	switch m & unix.S_IFMT {
	case unix.S_IFBLK:
		mode |= iofs.ModeDevice
	case unix.S_IFCHR:
		mode |= iofs.ModeDevice | iofs.ModeCharDevice
	case unix.S_IFDIR:
		mode |= iofs.ModeDir
	case unix.S_IFIFO:
		mode |= iofs.ModeNamedPipe
	case unix.S_IFLNK:
		mode |= iofs.ModeSymlink
	case unix.S_IFSOCK:
		mode |= iofs.ModeSocket
	}
	if m&unix.S_ISGID != 0 {
		mode |= iofs.ModeSetgid
	}
	if m&unix.S_ISUID != 0 {
		mode |= iofs.ModeSetuid
	}
	if m&unix.S_ISVTX != 0 {
		mode |= iofs.ModeSticky
	}
	return mode
}
