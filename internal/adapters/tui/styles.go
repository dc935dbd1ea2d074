package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/asyncwalk/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	currentStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	doneStyle = lipgloss.NewStyle().
			Foreground(style.Green)
)

func kindStyle(kind string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(style.KindColor(kind))
}
