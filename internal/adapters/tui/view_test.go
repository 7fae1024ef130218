package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/bump/internal/adapters/tui"
)

func TestView(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	m := tui.NewModel("core", "1.0.0")
	view := m.View()
	assert.Contains(t, view, "Input new version for")
	assert.Contains(t, view, "core")
	assert.Contains(t, view, "empty keeps 1.0.0")

	m, _ = press(t, typeText(t, m, "1.2.0"), tea.KeyEnter)
	view = m.View()
	assert.Contains(t, view, "1.2.0")
	assert.NotContains(t, view, "empty keeps")

	aborted, _ := press(t, tui.NewModel("core", "1.0.0"), tea.KeyEsc)
	assert.Contains(t, aborted.View(), "aborted")
}
