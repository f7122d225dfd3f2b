package dialogs

import "github.com/charmbracelet/lipgloss"

// center aligns every line of s in a block width cells wide.
func center(s string, width int) string {
	box := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return box.Render(s)
}

var hintStyle = lipgloss.NewStyle().Faint(true)
