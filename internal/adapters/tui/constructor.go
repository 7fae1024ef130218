// Package tui provides an interactive version prompt built on bubbletea.
package tui

import "github.com/charmbracelet/bubbles/textinput"

// NewModel creates a prompt model asking for the next version of packageName.
// An empty answer resolves to defaultVersion.
func NewModel(packageName, defaultVersion string) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = defaultVersion
	input.PlaceholderStyle = placeholderStyle
	input.CharLimit = 256
	input.Focus()

	return Model{
		Package: packageName,
		Default: defaultVersion,
		Input:   input,
	}
}
