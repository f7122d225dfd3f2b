// Package modal implements an animated overlay dialog for Bubble Tea
// programs.
//
// A Modal does not own its open/closed state. On every Sync it reads an
// Entry (active flag, content, extra options) through a ReadModel, usually
// backed by the store package, and reacts to edges of the active flag:
//
//	hidden --active--> opening --open timer--> visible
//	visible --inactive--> closing --close timer--> hidden
//
// Close intents (backdrop click, close button, esc, the back intent) never
// change the state directly. They emit CloseRequestedMsg, and the store
// flips the flag, which the next Sync picks up.
//
// The host owns the program loop:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//	    cmds := []tea.Cmd{m.dialog.Update(msg)}
//	    if req, ok := msg.(modal.CloseRequestedMsg); ok {
//	        m.store.Close(req.Name)
//	    }
//	    cmds = append(cmds, m.dialog.Sync(m.history.Path()))
//	    return m, tea.Batch(cmds...)
//	}
//
//	func (m model) View() string {
//	    return m.dialog.View(m.page(), m.width, m.height)
//	}
package modal
