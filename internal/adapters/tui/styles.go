package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bump/internal/ui/style"
)

var (
	questionStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	packageStyle = lipgloss.NewStyle().
			Foreground(style.White).
			Background(style.Iris).
			Padding(0, 1)

	answerStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
