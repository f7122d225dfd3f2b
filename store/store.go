// Package store holds the application's modal state: for every modal
// name, whether it is active, what it shows and which options it adds on
// top of the modal's own configuration.
//
// The store is the only writer of the active flag. Modals read it through
// Lookup and ask for changes with modal.CloseRequestedMsg.
package store

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-modal/logging"
	"github.com/andareed/siftly-modal/modal"
)

type entry struct {
	options []modal.Option
	content modal.Content
	active  bool
}

// Store is keyed by modal name. It is used from the update loop only.
type Store struct {
	modals map[string]*entry
}

func New() *Store {
	return &Store{modals: make(map[string]*entry)}
}

// Register sets the options stored for name, replacing earlier ones. The
// modal's active flag and content are kept.
func (s *Store) Register(name string, opts ...modal.Option) {
	e := s.get(name)
	e.options = append([]modal.Option(nil), opts...)
}

// Open activates name with content. Opening an already active modal only
// swaps its content.
func (s *Store) Open(name string, content modal.Content) {
	e := s.get(name)
	e.content = content
	if !e.active {
		logging.Debugf("store: open %s", name)
	}
	e.active = true
}

// Close deactivates name and reports whether it was active. The content
// stays so the modal can keep drawing it while it animates out.
func (s *Store) Close(name string) bool {
	e, ok := s.modals[name]
	if !ok || !e.active {
		return false
	}
	e.active = false
	logging.Debugf("store: close %s", name)
	return true
}

func (s *Store) IsActive(name string) bool {
	e, ok := s.modals[name]
	return ok && e.active
}

// Lookup returns the entry for name. Unknown names yield the zero Entry.
// Lookup has the modal.ReadModel signature.
func (s *Store) Lookup(name string) modal.Entry {
	e, ok := s.modals[name]
	if !ok {
		return modal.Entry{}
	}
	return modal.Entry{
		Options: e.options,
		Content: e.content,
		Active:  e.active,
	}
}

// Update applies the store messages found in msg and reports whether the
// store changed.
func (s *Store) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case modal.CloseRequestedMsg:
		return s.Close(msg.Name)
	case OpenMsg:
		s.Open(msg.Name, msg.Content)
		return true
	}
	return false
}

// OpenMsg asks the store to open a modal from a command.
type OpenMsg struct {
	Name    string
	Content modal.Content
}

// OpenCmd returns a command producing OpenMsg.
func OpenCmd(name string, content modal.Content) tea.Cmd {
	return func() tea.Msg { return OpenMsg{Name: name, Content: content} }
}

func (s *Store) get(name string) *entry {
	e, ok := s.modals[name]
	if !ok {
		e = &entry{}
		s.modals[name] = e
	}
	return e
}
