package tui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/internal/adapters/tui"
	"go.trai.ch/bump/internal/core/domain"
)

func newPrompter(input string) *tui.Prompter {
	return tui.NewPrompter(
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutSignalHandler(),
	)
}

func TestPrompter_Ask(t *testing.T) {
	got, err := newPrompter("2.0.0\r").Ask(t.Context(), "core", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", got)
}

func TestPrompter_AskDefault(t *testing.T) {
	got, err := newPrompter("\r").Ask(t.Context(), "core", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got)
}

func TestPrompter_Abort(t *testing.T) {
	_, err := newPrompter("\x03").Ask(t.Context(), "core", "1.0.0")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrPromptAborted.Error())
}

func TestPrompter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newPrompter("2.0.0\r").Ask(ctx, "core", "1.0.0")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrPromptAborted.Error())
}
