package clock

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type firedMsg struct{ name string }

func fire(name string) func(time.Time) tea.Msg {
	return func(time.Time) tea.Msg { return firedMsg{name: name} }
}

func TestFakeTickFiresOnlyAtDeadline(t *testing.T) {
	c := Fake(epoch)
	require.Nil(t, c.Tick(300*time.Millisecond, fire("a")))
	require.Equal(t, 1, c.Pending())

	require.Empty(t, c.Advance(299*time.Millisecond))
	require.Equal(t, 1, c.Pending())

	msgs := c.Advance(time.Millisecond)
	require.Equal(t, []tea.Msg{firedMsg{name: "a"}}, msgs)
	require.Zero(t, c.Pending())
	require.Equal(t, epoch.Add(300*time.Millisecond), c.Now())
}

func TestFakeAdvanceOrdersByDeadlineThenRegistration(t *testing.T) {
	c := Fake(epoch)
	c.Tick(200*time.Millisecond, fire("late"))
	c.Tick(100*time.Millisecond, fire("early"))
	c.Tick(200*time.Millisecond, fire("late-second"))

	msgs := c.Advance(time.Second)
	require.Equal(t, []tea.Msg{
		firedMsg{name: "early"},
		firedMsg{name: "late"},
		firedMsg{name: "late-second"},
	}, msgs)
}

func TestFakeZeroDurationNeedsAdvance(t *testing.T) {
	c := Fake(epoch)
	c.Tick(0, fire("now"))
	c.Tick(-time.Second, fire("negative"))
	require.Equal(t, 2, c.Pending())

	msgs := c.Advance(0)
	require.Len(t, msgs, 2)
	require.Equal(t, epoch, c.Now())
}

func TestFakePassesDeadlineToCallback(t *testing.T) {
	c := Fake(epoch)
	var got time.Time
	c.Tick(50*time.Millisecond, func(at time.Time) tea.Msg {
		got = at
		return nil
	})

	msgs := c.Advance(time.Second)
	require.Empty(t, msgs, "nil messages are dropped")
	require.Equal(t, epoch.Add(50*time.Millisecond), got)
}
