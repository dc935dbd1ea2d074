package fs

import (
	"path/filepath"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filter decides which entries a command skips, by matching entry names
// against filepath.Match globs.
type Filter struct {
	patterns []string
}

// NewFilter validates patterns and returns a filter for them.
func NewFilter(patterns []string) (*Filter, error) {
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidIgnorePattern.Error()), "pattern", p)
		}
	}
	return &Filter{patterns: append([]string(nil), patterns...)}, nil
}

// Match reports whether name matches any ignore pattern.
// Directories that match are pruned along with everything below them.
func (f *Filter) Match(name string) bool {
	if f == nil {
		return false
	}
	for _, p := range f.patterns {
		if matched, _ := filepath.Match(p, name); matched {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the configured patterns.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.patterns...)
}
