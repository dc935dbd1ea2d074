//go:build !linux

package fs

import (
	"os"

	"go.trai.ch/asyncwalk/internal/core/domain"
)

// lstat falls back to the portable fields; access and change times stay zero.
func lstat(path string) (*domain.Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return &domain.Metadata{
		Path:    path,
		Kind:    domain.KindFromMode(info.Mode()),
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
