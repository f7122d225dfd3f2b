package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type FooterState struct {
	// Mode is the name of the dialog holding focus, empty in normal mode.
	Mode string

	Path  string
	Depth int

	OpenDialogs int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	Bar      lipgloss.Style
	ModePill lipgloss.Style
	Path     lipgloss.Style
	Counters lipgloss.Style
	Status   lipgloss.Style
	Message  lipgloss.Style
	Legend   lipgloss.Style
}

func DefaultFooterStyles() FooterStyles {
	bar := lipgloss.NewStyle().
		Background(lipgloss.Color("#2b2b2b")).
		Foreground(lipgloss.Color("#cfcfcf"))
	status := lipgloss.NewStyle().
		Background(lipgloss.Color("#000000")).
		Foreground(lipgloss.Color("#9a9a9a"))
	return FooterStyles{
		Bar: bar,
		ModePill: lipgloss.NewStyle().
			Background(lipgloss.Color("#ff9f1c")).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1),
		Path:     bar.Foreground(lipgloss.Color("#e0e0e0")),
		Counters: bar.Foreground(lipgloss.Color("#a0a0a0")),
		Status:   status,
		Message:  status,
		Legend:   status.Foreground(lipgloss.Color("#b0b0b0")),
	}
}

// RenderFooter renders the two footer lines at exactly width cells.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Path == "" {
		st.Path = "/"
	}
	if st.Legend == "" {
		st.Legend = "(? help · g go to · n next · q quit)"
	}
	if st.Depth < 1 {
		st.Depth = 1
	}

	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

// renderControlBar: mode pill, current path, then the counters flush right.
func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	right := ansi.Truncate(fmt.Sprintf(" Depth %d · Dialogs %d", st.Depth, st.OpenDialogs), width, "")
	leftW := max(0, width-ansi.StringWidth(right))

	pill := styles.ModePill.Render(ansi.Truncate(modeLabel(st.Mode), max(0, leftW/2-2), ""))
	if leftW < 2 {
		pill = ""
	}
	pathW := max(0, leftW-lipgloss.Width(pill)-1)
	path := styles.Path.Width(pathW).MaxWidth(pathW).
		Render(ansi.Truncate("▸ "+strings.TrimSpace(st.Path), pathW, "…"))

	left := pill
	if pathW > 0 {
		left += styles.Bar.Render(" ") + path
	}
	if gap := leftW - lipgloss.Width(left); gap > 0 {
		left += styles.Bar.Render(strings.Repeat(" ", gap))
	}
	return left + styles.Counters.Render(right)
}

// renderStatusBar: the notice on the left, the key legend on the right.
func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legend := ansi.Truncate(st.Legend, width, "")
	msgW := max(0, width-ansi.StringWidth(legend))

	msg := ""
	if msgW > 0 {
		msg = styles.Message.Width(msgW).MaxWidth(msgW).
			Render(ansi.Truncate(st.StatusMessage, msgW, "…"))
	}
	return msg + styles.Legend.Render(legend)
}

func modeLabel(mode string) string {
	if mode == "" {
		return "NORMAL"
	}
	return strings.ToUpper(mode)
}
