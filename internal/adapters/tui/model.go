package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the state of a single version question.
type Model struct {
	Package string
	Default string
	Input   textinput.Model

	// Answer is set once the operator confirms with Enter.
	Answer  string
	Done    bool
	Aborted bool
}

// Init starts the cursor blink.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and forwards everything else to the text input.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.Answer = m.Input.Value()
			if m.Answer == "" {
				m.Answer = m.Default
			}
			m.Done = true
			m.Input.Blur()
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Aborted = true
			m.Input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}
