package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/asyncwalk/internal/ui/style"
)

const ellipsis = "…"

// View renders the UI.
func (m *Model) View() string {
	sections := []string{m.header(), m.counts()}

	if m.Current != "" {
		sections = append(sections, labelStyle.Render(style.Arrow+" ")+currentStyle.Render(m.truncate(m.Current, 2)))
	}

	if len(m.Errors) > 0 {
		sections = append(sections, "", failureTitleStyle.Render(fmt.Sprintf("ERRORS (%d)", m.Counts.Errors)))
		for _, e := range m.Errors {
			sections = append(sections, errorStyle.Render(style.Cross+" "+m.truncate(e, 2)))
		}
	}

	if m.Done {
		sections = append(sections, "", m.footer())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *Model) header() string {
	return titleStyle.Render("WALK "+m.Root) + " " +
		labelStyle.Render(m.Elapsed().Round(time.Millisecond*100).String())
}

func (m *Model) counts() string {
	c := m.Counts
	parts := []string{
		kindStyle("dir").Render(fmt.Sprintf("%d dirs", c.Dirs)),
		kindStyle("file").Render(fmt.Sprintf("%d files", c.Files)),
		kindStyle("symlink").Render(fmt.Sprintf("%d symlinks", c.Symlinks)),
		kindStyle("other").Render(fmt.Sprintf("%d other", c.Other)),
	}
	return fmt.Sprintf("%d entries  ", c.Entries) + strings.Join(parts, "  ")
}

func (m *Model) footer() string {
	if m.Counts.Errors > 0 {
		return errorStyle.Render(fmt.Sprintf("%s finished with %d errors", style.Cross, m.Counts.Errors))
	}
	return doneStyle.Render(style.Check + " finished")
}

// truncate shortens s from the left to fit the window width minus reserved columns.
func (m *Model) truncate(s string, reserved int) string {
	if m.Width <= 0 {
		return s
	}
	limit := m.Width - reserved
	runes := []rune(s)
	if limit <= 1 || len(runes) <= limit {
		return s
	}
	return ellipsis + string(runes[len(runes)-limit+1:])
}
