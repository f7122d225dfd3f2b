package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all dialog contents (Help, Prompt,
// Message) implement. A Dialog is shown inside a modal, which draws the
// frame and handles esc and clicks outside; the Dialog only sees the keys
// that reach its panel.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) tea.Cmd
	View() string

	Focus() tea.Cmd
	Blur()
}
