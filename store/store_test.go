package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-modal/clock"
	"github.com/andareed/siftly-modal/modal"
)

type text string

func (t text) View() string { return string(t) }

func TestUnknownNameYieldsDefaults(t *testing.T) {
	s := New()
	e := s.Lookup("missing")

	require.False(t, e.Active)
	require.Nil(t, e.Content)
	require.Empty(t, e.Options)
	require.False(t, s.IsActive("missing"))
	require.False(t, s.Close("missing"))
}

func TestOpenAndClose(t *testing.T) {
	s := New()
	s.Open("help", text("keys"))

	require.True(t, s.IsActive("help"))
	require.Equal(t, text("keys"), s.Lookup("help").Content)

	require.True(t, s.Close("help"))
	require.False(t, s.Close("help"), "already closed")

	e := s.Lookup("help")
	require.False(t, e.Active)
	require.Equal(t, text("keys"), e.Content, "content outlives the close")
}

func TestRegisterKeepsState(t *testing.T) {
	s := New()
	s.Open("busy", text("working"))
	s.Register("busy", modal.Unclosable())
	s.Register("busy", modal.Unclosable(), modal.WithClassName("warning"))

	e := s.Lookup("busy")
	require.True(t, e.Active)
	require.Len(t, e.Options, 2)
}

func TestUpdateHandlesStoreMessages(t *testing.T) {
	s := New()

	require.True(t, s.Update(OpenCmd("prompt", text("go to"))()))
	require.True(t, s.IsActive("prompt"))

	require.True(t, s.Update(modal.CloseRequestedMsg{Name: "prompt"}))
	require.False(t, s.IsActive("prompt"))
	require.False(t, s.Update(modal.CloseRequestedMsg{Name: "prompt"}))
	require.False(t, s.Update("unrelated"))
}

func TestDrivesModal(t *testing.T) {
	s := New()
	s.Register("help", modal.WithDirection(modal.FromTop), modal.WithTransitionDuration(0))
	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	m := modal.New("help", s.Lookup, modal.Deps{Clock: clk})
	defer m.Close()

	s.Open("help", text("keys"))
	m.Sync("/")
	require.True(t, m.Mounted())
	require.Equal(t, modal.Transform{Y: -1}, m.Transform())

	cmd := m.RequestClose(nil)
	require.NotNil(t, cmd)
	require.True(t, s.Update(cmd()))

	m.Sync("/")
	require.False(t, m.Active())
	require.True(t, m.Transitioning())
	for _, msg := range clk.Advance(0) {
		m.Update(msg)
	}
	require.False(t, m.Mounted())
}
