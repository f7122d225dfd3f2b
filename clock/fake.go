package clock

import (
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Fake returns a FakeClock set to initial. Time stands still until
// Advance is called.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for tests. Tick registers a pending
// waiter and returns a nil command; the waiter's message is handed back by
// the Advance call that moves time past its deadline.
//
// FakeClock is safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	seq     uint64
	waiters []*fakeWaiter
}

type fakeWaiter struct {
	deadline time.Time
	seq      uint64 // registration order, breaks deadline ties
	fn       func(time.Time) tea.Msg
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Tick registers fn to fire once the clock reaches now+d. It returns nil:
// nothing is delivered until Advance.
func (c *FakeClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.waiters = append(c.waiters, &fakeWaiter{
		deadline: c.current.Add(d),
		seq:      c.seq,
		fn:       fn,
	})
	return nil
}

// Advance moves time forward by d and returns the messages of every waiter
// whose deadline is now reached, ordered by deadline and then by
// registration. Advance(0) fires waiters registered with a zero duration.
func (c *FakeClock) Advance(d time.Duration) []tea.Msg {
	c.mu.Lock()
	c.current = c.current.Add(d)
	now := c.current

	var due, remaining []*fakeWaiter
	for _, w := range c.waiters {
		if w.deadline.After(now) {
			remaining = append(remaining, w)
			continue
		}
		due = append(due, w)
	}
	c.waiters = remaining
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].deadline.Equal(due[j].deadline) {
			return due[i].deadline.Before(due[j].deadline)
		}
		return due[i].seq < due[j].seq
	})

	msgs := make([]tea.Msg, 0, len(due))
	for _, w := range due {
		if msg := w.fn(w.deadline); msg != nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Pending reports how many waiters have not fired yet.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}
