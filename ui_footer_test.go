package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRenderFooterWidth(t *testing.T) {
	for _, width := range []int{80, 40, 12, 3} {
		out := RenderFooter(width, FooterState{
			Mode:          "goto",
			Path:          "/logs/today/with/a/rather/long/path",
			Depth:         3,
			OpenDialogs:   1,
			StatusMessage: "copied /logs/today (native)",
		}, DefaultFooterStyles())

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		for _, l := range lines {
			require.Equal(t, width, lipgloss.Width(l), "width %d: %q", width, ansi.Strip(l))
		}
	}
}

func TestRenderFooterContent(t *testing.T) {
	out := ansi.Strip(RenderFooter(100, FooterState{Path: "/settings", Depth: 2}, DefaultFooterStyles()))

	require.Contains(t, out, "NORMAL")
	require.Contains(t, out, "▸ /settings")
	require.Contains(t, out, "Depth 2 · Dialogs 0")
	require.Contains(t, out, "(? help · g go to · n next · q quit)")
}

func TestRenderFooterZeroWidth(t *testing.T) {
	require.Empty(t, RenderFooter(0, FooterState{}, DefaultFooterStyles()))
}
