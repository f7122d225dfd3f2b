package dialogs

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

// PromptConfirmedMsg carries the value entered in the prompt with the
// given ID.
type PromptConfirmedMsg struct {
	ID    string
	Value string
}

// Prompt is a single-line text question. Enter confirms; cancelling is left
// to the modal around it.
type Prompt struct {
	id    string
	input textinput.Model
	hint  string
}

func (d *Prompt) Init() tea.Cmd { return d.input.Focus() }

// NewPrompt builds a prompt. defaultValue is pre-filled and also used when
// the user confirms an empty input.
func NewPrompt(id, label, defaultValue, hint string) *Prompt {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Prompt = label
	ti.CharLimit = 256
	// Wide enough for typical paths
	ti.Width = 40
	// The modal forwards key messages only, so a blinking cursor would
	// never receive its blink ticks.
	ti.Cursor.SetMode(cursor.CursorStatic)
	if defaultValue != "" {
		ti.SetValue(defaultValue)
	}
	return &Prompt{id: id, input: ti, hint: hint}
}

func (d *Prompt) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.KeyMsg); ok && m.String() == "enter" {
		val := strings.TrimSpace(d.input.Value())
		if val == "" {
			// fall back to placeholder if user left it blank
			val = d.input.Placeholder
		}
		if val == "" {
			return nil
		}
		log.Printf("Prompt:Update::%s confirmed with %q\n", d.id, val)
		id := d.id
		return func() tea.Msg { return PromptConfirmedMsg{ID: id, Value: val} }
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

func (d *Prompt) View() string {
	hint := d.hint
	if hint == "" {
		hint = "enter to confirm • esc to cancel"
	}
	return fmt.Sprintf("%s\n\n%s", d.input.View(), hintStyle.Render(hint))
}

// Reset replaces the input with value, ready for the next opening.
func (d *Prompt) Reset(value string) {
	d.input.SetValue(value)
	d.input.CursorEnd()
}

func (d *Prompt) Value() string { return d.input.Value() }

func (d *Prompt) Focus() tea.Cmd { return d.input.Focus() }
func (d *Prompt) Blur()          { d.input.Blur() }
