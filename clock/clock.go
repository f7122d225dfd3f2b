// Package clock provides an injectable time source for timer-driven UI
// components.
//
// Components that schedule work take a Clock instead of calling time.Now
// or tea.Tick directly. Real() is used by the program; Fake() gives tests
// deterministic control over when timers fire:
//
//	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	cmd := widget.Open()          // schedules a timer through clk.Tick
//	for _, msg := range clk.Advance(250 * time.Millisecond) {
//	    widget.Update(msg)        // deliver what fired, in deadline order
//	}
package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock abstracts the two time operations a Bubble Tea component needs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Tick returns a command that produces fn's message once d has
	// elapsed. Equivalent to tea.Tick. A non-positive d fires as soon as
	// the command runs.
	Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

// Real returns the wall clock backed by time.Now and tea.Tick.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, fn)
}
