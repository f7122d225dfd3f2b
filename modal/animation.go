package modal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the re-render interval while the panel is moving.
const frameInterval = time.Second / 30

type frameMsg struct {
	id string
}

// motion interpolates the panel position, in viewport units, from where it
// was when the transform last changed towards the current transform.
type motion struct {
	fromX, fromY float64
	toX, toY     float64
	start        time.Time
	duration     time.Duration
}

// still returns a motion resting at t.
func still(t Transform) motion {
	x, y := t.vector()
	return motion{fromX: x, fromY: y, toX: x, toY: y}
}

func (mo motion) progress(now time.Time) float64 {
	if mo.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(mo.start)) / float64(mo.duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// position returns the panel displacement at now.
func (mo motion) position(now time.Time) (x, y float64) {
	p := mo.progress(now)
	return mo.fromX + (mo.toX-mo.fromX)*p, mo.fromY + (mo.toY-mo.fromY)*p
}

func (mo motion) running(now time.Time) bool {
	return mo.progress(now) < 1
}

// retarget starts moving the panel towards the transform matching the
// current state. With animate false the panel jumps there.
func (m *Modal) retarget(animate bool) tea.Cmd {
	target := TransformFor(m.cfg.FromDirection, m.transitioning)
	if !animate {
		m.motion = still(target)
		return nil
	}

	now := m.clock.Now()
	x, y := m.motion.position(now)
	tx, ty := target.vector()
	m.motion = motion{
		fromX: x, fromY: y,
		toX: tx, toY: ty,
		start:    now,
		duration: m.cfg.TransitionDuration,
	}
	return m.scheduleFrame()
}

func (m *Modal) scheduleFrame() tea.Cmd {
	if m.animating || !m.motion.running(m.clock.Now()) {
		return nil
	}
	m.animating = true
	id := m.id
	return m.clock.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{id: id} })
}

func (m *Modal) handleFrame() tea.Cmd {
	m.animating = false
	return m.scheduleFrame()
}

// Animating reports whether the panel is still moving between positions.
func (m *Modal) Animating() bool {
	return m.motion.running(m.clock.Now())
}
