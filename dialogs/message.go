package dialogs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Message shows a title and word-wrapped text. It takes no input.
type Message struct {
	title string
	body  string
	hint  string
	width int
}

// NewMessage wraps body to width cells; a non-positive width disables
// wrapping.
func NewMessage(title, body, hint string, width int) *Message {
	return &Message{title: title, body: body, hint: hint, width: width}
}

func (d *Message) Init() tea.Cmd          { return nil }
func (d *Message) Update(tea.Msg) tea.Cmd { return nil }
func (d *Message) Focus() tea.Cmd         { return nil }
func (d *Message) Blur()                  {}
func (d *Message) SetBody(body string)    { d.body = body }

func (d *Message) View() string {
	body := d.body
	if d.width > 0 {
		body = wordwrap.String(body, d.width)
	}

	var parts []string
	if d.title != "" {
		title := titleStyle.Render(d.title)
		if d.width > 0 {
			title = center(title, d.width)
		}
		parts = append(parts, title, "")
	}
	if body != "" {
		parts = append(parts, body)
	}
	if d.hint != "" {
		parts = append(parts, "", hintStyle.Render(d.hint))
	}
	return strings.Join(parts, "\n")
}
