package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit     key.Binding
	Back     key.Binding
	Next     key.Binding
	OpenHelp key.Binding
	GoTo     key.Binding
	Reload   key.Binding
	CopyPath key.Binding
	Close    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("alt+left", "ctrl+g"),
		key.WithHelp("alt+←/ctrl+g", "back"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "tab"),
		key.WithHelp("n/tab", "next page"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	GoTo: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "go to path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload page"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path to clipboard"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close dialog"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Next,
		k.Back,
		k.GoTo,
		k.Reload,
		k.CopyPath,
		k.OpenHelp,
		k.Close,
		k.Quit,
	}
}
