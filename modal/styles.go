package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles controls how a modal is drawn. Variants adjust the panel style for
// the ClassName option; every space-separated class with a variant is
// applied to Panel in order.
type Styles struct {
	Panel       lipgloss.Style
	CloseButton lipgloss.Style
	Mask        lipgloss.Style
	Variants    map[string]func(lipgloss.Style) lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")).
			Padding(1, 2),
		CloseButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true),
		Mask: lipgloss.NewStyle().Faint(true),
		Variants: map[string]func(lipgloss.Style) lipgloss.Style{
			"warning": func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(lipgloss.Color("3")) },
			"error":   func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(lipgloss.Color("1")) },
			"compact": func(s lipgloss.Style) lipgloss.Style { return s.Padding(0, 1) },
		},
	}
}

func (s Styles) panel(className string) lipgloss.Style {
	st := s.Panel
	for _, class := range strings.Fields(className) {
		if v, ok := s.Variants[class]; ok && v != nil {
			st = v(st)
		}
	}
	return st
}
