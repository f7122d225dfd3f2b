package modal

import "github.com/andareed/siftly-modal/intent"

// SyntheticEvent is the modal's own view of a native event while it bubbles
// through the modal's regions, innermost first.
type SyntheticEvent struct {
	Native *intent.Event

	propagationStopped bool
}

func newSyntheticEvent(native *intent.Event) *SyntheticEvent {
	return &SyntheticEvent{Native: native}
}

// StopPropagation keeps the event from reaching outer regions of the
// modal. Host listeners on the intent bus still run.
func (e *SyntheticEvent) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *SyntheticEvent) PropagationStopped() bool { return e.propagationStopped }

// PreventDefault suppresses the native default action.
func (e *SyntheticEvent) PreventDefault() { e.Native.PreventDefault() }

// region identifies a hit-testable part of a rendered modal.
type region int

const (
	regionNone region = iota
	regionBackdrop
	regionPanel
	regionCloseButton
)

func (r region) String() string {
	switch r {
	case regionBackdrop:
		return "backdrop"
	case regionPanel:
		return "panel"
	case regionCloseButton:
		return "close"
	default:
		return "none"
	}
}

// rect is a screen rectangle. Width and height are exclusive.
type rect struct {
	X, Y, W, H int
}

func (r rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// layout records where the last View call placed each region.
type layout struct {
	backdrop rect
	panel    rect
	close    rect
	hasClose bool
}

// path returns the regions under (x, y) from innermost to outermost, the
// order in which a click bubbles.
func (l layout) path(x, y int) []region {
	if !l.backdrop.Contains(x, y) {
		return nil
	}
	var out []region
	if l.hasClose && l.close.Contains(x, y) {
		out = append(out, regionCloseButton)
	}
	if l.panel.Contains(x, y) {
		out = append(out, regionPanel)
	}
	return append(out, regionBackdrop)
}
