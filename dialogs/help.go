package dialogs

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Help is just a list of key bindings to show.
type Help struct {
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
// Disabled bindings are left out.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{bindings: bindings}
}

func (d *Help) Update(msg tea.Msg) tea.Cmd {
	log.Printf("HelpDialog:Update:: Called\n")
	return nil
}

func (d Help) View() string {
	// Build lines "keys   description" from the bindings.
	var lines []string
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		helpItem := b.Help()
		line := fmt.Sprintf("%-12s %s", helpItem.Key, helpItem.Desc)
		lines = append(lines, line)
	}

	helpHint := hintStyle.Render("esc to return")
	return fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), helpHint)
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
