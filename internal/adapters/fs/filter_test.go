package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/asyncwalk/internal/adapters/fs"
)

func TestFilter_Match(t *testing.T) {
	f, err := fs.NewFilter([]string{".git", "*.tmp", "node_modules"})
	require.NoError(t, err)

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{"scratch.tmp", true},
		{"node_modules", true},
		{"main.go", false},
		{".gitignore", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Match(tt.name))
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := fs.NewFilter([]string{"ok", "[unterminated"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}

func TestFilter_NilMatchesNothing(t *testing.T) {
	var f *fs.Filter
	assert.False(t, f.Match("anything"))
	assert.Nil(t, f.Patterns())
}

func TestFilter_PatternsAreCopied(t *testing.T) {
	in := []string{"a"}
	f, err := fs.NewFilter(in)
	require.NoError(t, err)

	in[0] = "b"
	assert.Equal(t, []string{"a"}, f.Patterns())
	assert.True(t, f.Match("a"))
}
