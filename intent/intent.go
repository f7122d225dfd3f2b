// Package intent is the program-wide listener registry for user intents
// that are not addressed to a single widget: a back-navigation request, or
// a click that reached the document after every widget had its turn.
//
// Listeners are scoped: Subscribe hands back the matching unsubscribe
// function, so a widget that subscribes while open can guarantee its
// listener is gone once it closes or is torn down.
package intent

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-modal/logging"
)

// Kind names an intent.
type Kind string

const (
	// Back is a request to navigate back, e.g. a hardware back button or
	// the host's back key.
	Back Kind = "back"
	// Click is a pointer press that bubbled past every widget.
	Click Kind = "click"
)

// Event is the native event carried through a dispatch. Listeners may
// suppress the default action or stop the remaining listeners from
// running.
type Event struct {
	Kind Kind
	Key  string
	X, Y int

	defaultPrevented bool
	immediateStopped bool
}

// NewEvent returns an event of the given kind.
func NewEvent(kind Kind) *Event { return &Event{Kind: kind} }

// NewClickEvent returns a click event at screen cell (x, y).
func NewClickEvent(x, y int) *Event { return &Event{Kind: Click, X: x, Y: y} }

// NewKeyEvent returns a key press event for the named key.
func NewKeyEvent(key string) *Event { return &Event{Key: key} }

// PreventDefault suppresses the host's default action for the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener suppressed the default action.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopImmediatePropagation prevents every listener that has not run yet,
// including ones on the same target, from seeing the event.
func (e *Event) StopImmediatePropagation() { e.immediateStopped = true }

// ImmediatePropagationStopped reports whether StopImmediatePropagation was called.
func (e *Event) ImmediatePropagationStopped() bool { return e.immediateStopped }

// Handler reacts to an intent and may return a command for the program.
type Handler func(ev *Event) tea.Cmd

type subscription struct {
	id      int
	handler Handler
}

// Bus holds the listeners for each intent kind. It is used from the
// Bubble Tea update loop only and does no locking.
type Bus struct {
	nextID int
	subs   map[Kind][]subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Kind][]subscription)}
}

// Subscribe adds h as a listener for kind. Every call creates an
// independent subscription. The returned function removes it and is safe
// to call more than once.
func (b *Bus) Subscribe(kind Kind, h Handler) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs[kind] = append(b.subs[kind], subscription{id: id, handler: h})
	logging.Debugf("intent: subscribe %s #%d (listeners=%d)", kind, id, len(b.subs[kind]))

	done := false
	return func() {
		if done {
			return
		}
		done = true
		b.remove(kind, id)
	}
}

func (b *Bus) remove(kind Kind, id int) {
	subs := b.subs[kind]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		b.subs[kind] = append(subs[:i:i], subs[i+1:]...)
		break
	}
	if len(b.subs[kind]) == 0 {
		delete(b.subs, kind)
	}
	logging.Debugf("intent: unsubscribe %s #%d (listeners=%d)", kind, id, len(b.subs[kind]))
}

func (b *Bus) has(kind Kind, id int) bool {
	for _, s := range b.subs[kind] {
		if s.id == id {
			return true
		}
	}
	return false
}

// Dispatch delivers ev to the listeners of kind in subscription order and
// batches their commands. A nil ev is replaced by a fresh event. Listeners
// removed by an earlier listener during the same dispatch are skipped, and
// dispatch stops as soon as a listener calls StopImmediatePropagation.
func (b *Bus) Dispatch(kind Kind, ev *Event) tea.Cmd {
	if ev == nil {
		ev = NewEvent(kind)
	}
	snapshot := append([]subscription(nil), b.subs[kind]...)

	var cmds []tea.Cmd
	for _, s := range snapshot {
		if ev.ImmediatePropagationStopped() {
			break
		}
		if !b.has(kind, s.id) {
			continue
		}
		cmds = append(cmds, s.handler(ev))
	}
	return tea.Batch(cmds...)
}

// Count returns the number of live listeners for kind.
func (b *Bus) Count(kind Kind) int { return len(b.subs[kind]) }
