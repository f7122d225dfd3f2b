package dialogs

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var (
	_ Dialog = (*Help)(nil)
	_ Dialog = (*Prompt)(nil)
	_ Dialog = (*Message)(nil)
)

func typeText(d Dialog, s string) {
	for _, r := range s {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestHelpListsEnabledBindings(t *testing.T) {
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "secret"))
	hidden.SetEnabled(false)

	view := NewHelpDialog([]key.Binding{quit, hidden}).View()
	require.Contains(t, view, "quit")
	require.NotContains(t, view, "secret")
}

func TestPromptConfirmsTypedValue(t *testing.T) {
	p := NewPrompt("goto", "Go to: ", "", "")
	p.Focus()
	typeText(p, "/logs")

	cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, PromptConfirmedMsg{ID: "goto", Value: "/logs"}, cmd())
}

func TestPromptFallsBackToDefault(t *testing.T) {
	p := NewPrompt("goto", "Go to: ", "/home", "")
	p.Reset("")
	require.Empty(t, p.Value())

	cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, PromptConfirmedMsg{ID: "goto", Value: "/home"}, cmd())
}

func TestPromptEmptyWithoutDefault(t *testing.T) {
	p := NewPrompt("goto", "Go to: ", "", "")
	require.Nil(t, p.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestMessageWrapsBody(t *testing.T) {
	m := NewMessage("Busy", "one two three four five six", "", 10)
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	require.Equal(t, "Busy", strings.TrimSpace(lines[0]))
	for _, l := range lines[2:] {
		require.LessOrEqual(t, ansi.StringWidth(l), 10, l)
	}

	m.SetBody("done")
	require.Contains(t, m.View(), "done")
}
