package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prompter implements ports.VersionPrompter with one bubbletea program per question.
type Prompter struct {
	opts []tea.ProgramOption
}

// NewPrompter creates a Prompter. The options are passed to every program,
// which lets callers redirect input and output.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{opts: opts}
}

// Ask runs the prompt for packageName until the operator confirms or aborts.
func (p *Prompter) Ask(ctx context.Context, packageName, defaultVersion string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPromptAborted.Error()), "package", packageName)
	}

	opts := make([]tea.ProgramOption, 0, len(p.opts)+1)
	opts = append(opts, tea.WithContext(ctx))
	opts = append(opts, p.opts...)

	final, err := tea.NewProgram(NewModel(packageName, defaultVersion), opts...).Run()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPromptAborted.Error()), "package", packageName)
	}

	m, ok := final.(Model)
	if !ok || !m.Done {
		return "", zerr.With(domain.ErrPromptAborted, "package", packageName)
	}
	return m.Answer, nil
}
