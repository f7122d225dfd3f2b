package modal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var sgrReset = termenv.CSI + termenv.ResetSeq + "m"

// View draws the modal over background, a width x height frame. While the
// modal is not mounted background is returned untouched. Otherwise the
// background is dimmed under the mask color and the panel is spliced in at
// its current animated position. The regions drawn here are what Click
// hit-tests against.
func (m *Modal) View(background string, width, height int) string {
	if m.closed || !m.mounted || width <= 0 || height <= 0 {
		m.layout = layout{}
		return background
	}

	mask := m.mask(background, width, height)
	style := m.styles.panel(m.cfg.ClassName)
	panel, closeCol, hasClose := m.panel(style, width, height)

	pw, ph := lipgloss.Width(panel), lipgloss.Height(panel)
	x := max((width-pw)/2, 0)
	y := max((height-ph)/2, 0)
	ox, oy := m.motion.position(m.clock.Now())
	x += scale(ox, width)
	y += scale(oy, height)

	m.layout = layout{
		backdrop: rect{X: 0, Y: 0, W: width, H: height},
		panel:    rect{X: x, Y: y, W: pw, H: ph},
	}
	if hasClose {
		row := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
		m.layout.close = rect{X: x + closeCol, Y: y + row, W: ansi.StringWidth(m.cfg.CloseIcon), H: 1}
		m.layout.hasClose = true
	}

	return splice(mask, strings.Split(panel, "\n"), x, y, width)
}

// mask dims the background and paints it with the mask color.
func (m *Modal) mask(background string, width, height int) string {
	lines := strings.Split(background, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(ansi.Strip(lines[i]), width, "")
		}
		out[i] = line
	}
	st := m.styles.Mask.Width(width).Height(height)
	if c := terminalColor(m.cfg.MaskColor); c != "" {
		st = st.Background(lipgloss.Color(c))
	}
	return st.Render(strings.Join(out, "\n"))
}

// panel renders the framed panel. closeCol is the close icon's column
// relative to the panel's left edge, found by measuring the rendered
// header line.
func (m *Modal) panel(style lipgloss.Style, width, height int) (panel string, closeCol int, hasClose bool) {
	var body string
	if renderable(m.content) {
		body = m.content.View()
	}

	showClose := m.cfg.HasCloseButton && m.cfg.Closable && m.cfg.CloseIcon != ""

	inner := lipgloss.Width(body)
	if showClose {
		inner = max(inner, ansi.StringWidth(m.cfg.CloseIcon))
	}
	if m.cfg.Fullscreen {
		fw := width - style.GetHorizontalMargins() - style.GetHorizontalBorderSize()
		fh := height - style.GetVerticalMargins() - style.GetVerticalBorderSize()
		style = style.Width(max(fw, 0)).Height(max(fh, 0))
		inner = max(fw-style.GetHorizontalPadding(), inner)
	}

	parts := make([]string, 0, 2)
	if showClose {
		icon := m.styles.CloseButton.Render(m.cfg.CloseIcon)
		parts = append(parts, lipgloss.PlaceHorizontal(inner, lipgloss.Right, icon))
	}
	if body != "" {
		parts = append(parts, body)
	}
	panel = style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if !showClose {
		return panel, 0, false
	}
	row := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
	lines := strings.Split(panel, "\n")
	if row >= len(lines) {
		return panel, 0, false
	}
	plain := ansi.Strip(lines[row])
	idx := strings.LastIndex(plain, m.cfg.CloseIcon)
	if idx < 0 {
		return panel, 0, false
	}
	return panel, ansi.StringWidth(plain[:idx]), true
}

// splice writes overlay lines into view at (x, y), clipping whatever falls
// outside the width x len(view lines) frame.
func splice(view string, overlay []string, x, y, width int) string {
	lines := strings.Split(view, "\n")
	for i, ol := range overlay {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		start := x
		if start < 0 {
			ol = ansi.TruncateLeft(ol, -start, "")
			start = 0
		}
		if start >= width {
			continue
		}
		ol = ansi.Truncate(ol, width-start, "")
		ow := ansi.StringWidth(ol)
		if ow == 0 {
			continue
		}

		base := lines[row]
		var b strings.Builder
		if start > 0 {
			b.WriteString(ansi.Truncate(base, start, ""))
		}
		b.WriteString(sgrReset)
		b.WriteString(ol)
		b.WriteString(sgrReset)
		if end := start + ow; end < ansi.StringWidth(base) {
			b.WriteString(ansi.TruncateLeft(base, end, ""))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// terminalColor turns a CSS color into something lipgloss understands.
// rgb() and rgba() become hex, with alpha applied by blending towards
// black since a terminal cell has no transparency. Hex and ANSI values pass
// through unchanged.
func terminalColor(css string) string {
	css = strings.TrimSpace(css)
	if css == "" {
		return ""
	}
	if c, ok := parseRGBA(css); ok {
		return c.Clamped().Hex()
	}
	return css
}

func parseRGBA(css string) (colorful.Color, bool) {
	var args string
	switch {
	case strings.HasPrefix(css, "rgba(") && strings.HasSuffix(css, ")"):
		args = css[len("rgba(") : len(css)-1]
	case strings.HasPrefix(css, "rgb(") && strings.HasSuffix(css, ")"):
		args = css[len("rgb(") : len(css)-1]
	default:
		return colorful.Color{}, false
	}

	fields := strings.Split(args, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return colorful.Color{}, false
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return colorful.Color{}, false
		}
		vals[i] = v
	}

	c := colorful.Color{R: vals[0] / 255, G: vals[1] / 255, B: vals[2] / 255}
	if len(vals) == 4 {
		alpha := min(max(vals[3], 0), 1)
		c = c.BlendRgb(colorful.Color{}, 1-alpha)
	}
	return c, true
}
