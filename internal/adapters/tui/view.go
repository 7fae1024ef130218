package tui

import (
	"fmt"
	"strings"
)

// View renders the question. After Enter only the confirmed answer remains.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(questionStyle.Render("Input new version for"))
	b.WriteByte(' ')
	b.WriteString(packageStyle.Render(m.Package))
	b.WriteByte(' ')

	switch {
	case m.Done:
		b.WriteString(answerStyle.Render(m.Answer))
		b.WriteByte('\n')
	case m.Aborted:
		b.WriteString(helpStyle.Render("aborted"))
		b.WriteByte('\n')
	default:
		b.WriteString(m.Input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("enter: accept (empty keeps %s) • esc: abort", m.Default)))
		b.WriteByte('\n')
	}

	return b.String()
}
