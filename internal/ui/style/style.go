// Package style holds the palette and glyphs shared by every renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Sky    = lipgloss.Color("#0EA5E9")
	White  = lipgloss.Color("#FFFFFF")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// KindColor returns the color used for an entry kind name.
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "dir":
		return Iris
	case "symlink":
		return Sky
	case "file":
		return Slate
	default:
		return Yellow
	}
}
