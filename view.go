package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-modal/logging"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	screen := m.screen()
	// each mounted modal dims everything drawn before it
	for _, md := range m.modals {
		screen = md.View(screen, m.terminalWidth, m.terminalHeight)
	}
	return screen
}

// screen renders the page under the modals.
func (m *model) screen() string {
	bordered := pageStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered, m.footerView(contentW)}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) headerView() string {
	return headerStyle.Render("siftly-modal " + dimStyle.Render(m.history.Path()))
}

func (m *model) refreshPage() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.pageContent())
}

func (m *model) pageContent() string {
	current := m.history.Path()

	var b strings.Builder
	fmt.Fprintf(&b, "You are at %s\n\n", current)
	for _, r := range routes {
		if r == current {
			b.WriteString(routeMarker + currentRouteStyle.Render(r) + "\n")
			continue
		}
		b.WriteString(" " + routeStyle.Render(r) + "\n")
	}
	if m.ui.lastClick != "" {
		fmt.Fprintf(&b, "\n%s\n", dimStyle.Render("last page click at "+m.ui.lastClick))
	}
	return b.String()
}

// footerView renders the 2-line footer. width is the width of the bordered
// page above it.
func (m *model) footerView(width int) string {
	st := FooterState{
		Path:   m.history.Path(),
		Depth:  m.history.Len(),
		Legend: "(? help · g go to · n next · r reload · y copy · q quit)",
	}
	if top := m.focused(); top != nil {
		st.Mode = top.Name()
	}
	for _, md := range m.modals {
		if md.Mounted() {
			st.OpenDialogs++
		}
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		timers := 0
		for _, md := range m.modals {
			timers += md.PendingTimers()
		}
		st.StatusMessage += fmt.Sprintf(" dbg term=%dx%d vp=%dx%d timers=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height, timers)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}
