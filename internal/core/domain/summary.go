package domain

import "time"

// Summary aggregates what a traversal produced.
type Summary struct {
	Root     string        `json:"root"`
	Entries  int           `json:"entries"`
	Dirs     int           `json:"dirs"`
	Files    int           `json:"files"`
	Symlinks int           `json:"symlinks"`
	Other    int           `json:"other"`
	Errors   int           `json:"errors"`
	Bytes    int64         `json:"bytes,omitzero"`
	Elapsed  time.Duration `json:"elapsed"`
}

// AddEntry counts one yielded entry.
func (s *Summary) AddEntry(e *Entry) {
	s.AddKind(e.Kind())
}

// AddKind counts one entry of the given kind.
func (s *Summary) AddKind(kind EntryKind) {
	s.Entries++
	switch kind {
	case KindDir:
		s.Dirs++
	case KindFile:
		s.Files++
	case KindSymlink:
		s.Symlinks++
	default:
		s.Other++
	}
}

// AddError counts one yielded error.
func (s *Summary) AddError() {
	s.Errors++
}
