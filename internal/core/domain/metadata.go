package domain

import (
	"io/fs"
	"time"
)

// Metadata describes an entry as returned by lstat.
type Metadata struct {
	Path       string      `json:"path"`
	Kind       EntryKind   `json:"-"`
	Mode       fs.FileMode `json:"mode"`
	Size       int64       `json:"size"`
	ModTime    time.Time   `json:"mod_time"`
	AccessTime time.Time   `json:"access_time,omitzero"`
	ChangeTime time.Time   `json:"change_time,omitzero"`
}

// IsDir reports whether the metadata describes a directory.
func (m *Metadata) IsDir() bool {
	return m.Kind == KindDir
}
