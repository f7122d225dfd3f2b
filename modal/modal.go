package modal

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/andareed/siftly-modal/clock"
	"github.com/andareed/siftly-modal/intent"
	"github.com/andareed/siftly-modal/logging"
)

var tracer = otel.Tracer("github.com/andareed/siftly-modal/modal")

// CloseRequestedMsg asks the store to deactivate the named modal.
type CloseRequestedMsg struct {
	Name string
}

type openElapsedMsg struct {
	id  string
	seq uint64
}

type closeElapsedMsg struct {
	id  string
	seq uint64
}

// Intents is the listener capability a modal needs from the host:
// subscribing to the back intent while open, and forwarding clicks to
// document-level listeners after the modal has handled them.
type Intents interface {
	Subscribe(kind intent.Kind, h intent.Handler) (unsubscribe func())
	Dispatch(kind intent.Kind, ev *intent.Event) tea.Cmd
}

// KeyMap holds the keys a modal reacts to itself.
type KeyMap struct {
	// Close is treated as a key press on the backdrop.
	Close key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// Deps are the collaborators injected into a modal. Zero fields get
// defaults: the real clock, no intents, DefaultStyles and DefaultKeyMap.
type Deps struct {
	Clock   clock.Clock
	Intents Intents
	Styles  *Styles
	Keys    *KeyMap
}

// Modal drives one overlay between hidden, opening, visible and closing
// from the active flag found in the store.
//
// A rising edge of active mounts the panel at once, off-screen, and
// schedules an open timer that settles it after TransitionDuration. A
// falling edge sends the panel off-screen at once and schedules a close
// timer that unmounts it. Timers are never cancelled by the opposite edge:
// an open timer that fires during a close still settles the panel. Close
// invalidates every outstanding timer.
//
// All methods must be called from the Bubble Tea update loop.
type Modal struct {
	id   string
	name string
	read ReadModel

	base Config
	cfg  Config

	clock   clock.Clock
	intents Intents
	styles  Styles
	keys    KeyMap

	content Content

	active        bool
	mounted       bool
	transitioning bool

	path   string
	synced bool

	timerSeq   uint64
	openTimer  uint64
	closeTimer uint64
	pending    int

	unsubscribeBack func()
	closed          bool

	motion    motion
	animating bool
	layout    layout
}

// New creates the controller for the modal called name. read supplies the
// store entry on every Sync; opts form the base configuration that entry
// options are merged over.
func New(name string, read ReadModel, deps Deps, opts ...Option) *Modal {
	base := DefaultConfig()
	applyOptions(&base, opts)

	m := &Modal{
		id:            uuid.NewString(),
		name:          name,
		read:          read,
		base:          base,
		cfg:           base,
		clock:         deps.Clock,
		intents:       deps.Intents,
		styles:        DefaultStyles(),
		keys:          DefaultKeyMap(),
		transitioning: true,
	}
	if m.clock == nil {
		m.clock = clock.Real()
	}
	if deps.Styles != nil {
		m.styles = *deps.Styles
	}
	if deps.Keys != nil {
		m.keys = *deps.Keys
	}
	m.motion = still(TransformFor(m.cfg.FromDirection, true))
	return m
}

func (m *Modal) Name() string { return m.name }

// Sync runs one update cycle. It reads the store entry, requests a close
// if the location changed and the modal closes on navigation, then reacts
// to a change of the active flag. The location check always comes first.
func (m *Modal) Sync(path string) tea.Cmd {
	if m.closed {
		return nil
	}

	var entry Entry
	if m.read != nil {
		entry = m.read(m.name)
	}
	m.cfg = m.base
	applyOptions(&m.cfg, entry.Options)
	m.content = entry.Content

	var cmds []tea.Cmd
	if m.synced && m.cfg.CloseOnLocationChange && path != m.path {
		logging.Debugf("modal %s: location %q -> %q, requesting close", m.name, m.path, path)
		cmds = append(cmds, m.emitClose())
	}
	m.path = path
	m.synced = true

	cmds = append(cmds, m.setActive(entry.Active))
	return tea.Batch(cmds...)
}

func (m *Modal) setActive(active bool) tea.Cmd {
	prev := m.active
	m.active = active
	switch {
	case active && !prev:
		return m.open()
	case !active && prev:
		return m.beginClose()
	}
	return nil
}

func (m *Modal) open() tea.Cmd {
	_, span := tracer.Start(context.Background(), "modal.open", m.spanAttrs())
	defer span.End()

	if !m.mounted {
		m.mounted = true
		m.retarget(false)
	}

	seq := m.nextTimer()
	m.openTimer = seq
	id := m.id
	timer := m.clock.Tick(m.cfg.TransitionDuration, func(time.Time) tea.Msg {
		return openElapsedMsg{id: id, seq: seq}
	})

	if m.intents != nil && m.unsubscribeBack == nil {
		m.unsubscribeBack = m.intents.Subscribe(intent.Back, m.handleBack)
	}
	logging.Debugf("modal %s: opening, settle in %s", m.name, m.cfg.TransitionDuration)
	return timer
}

func (m *Modal) beginClose() tea.Cmd {
	_, span := tracer.Start(context.Background(), "modal.close", m.spanAttrs())
	defer span.End()

	var frame tea.Cmd
	if !m.transitioning {
		m.transitioning = true
		frame = m.retarget(true)
	}

	seq := m.nextTimer()
	m.closeTimer = seq
	id := m.id
	timer := m.clock.Tick(m.cfg.TransitionDuration, func(time.Time) tea.Msg {
		return closeElapsedMsg{id: id, seq: seq}
	})

	m.unsubscribe()
	logging.Debugf("modal %s: closing, unmount in %s", m.name, m.cfg.TransitionDuration)
	return tea.Batch(timer, frame)
}

func (m *Modal) spanAttrs() trace.SpanStartEventOption {
	return trace.WithAttributes(
		attribute.String("modal.name", m.name),
		attribute.String("modal.direction", string(m.cfg.FromDirection)),
		attribute.Int64("modal.duration_ms", m.cfg.TransitionDuration.Milliseconds()),
	)
}

func (m *Modal) nextTimer() uint64 {
	m.timerSeq++
	m.pending++
	return m.timerSeq
}

func (m *Modal) timerFired(seq uint64) {
	if m.pending > 0 {
		m.pending--
	}
	if m.openTimer == seq {
		m.openTimer = 0
	}
	if m.closeTimer == seq {
		m.closeTimer = 0
	}
}

func (m *Modal) handleBack(ev *intent.Event) tea.Cmd {
	return m.RequestClose(ev)
}

func (m *Modal) unsubscribe() {
	if m.unsubscribeBack != nil {
		m.unsubscribeBack()
		m.unsubscribeBack = nil
	}
}

// Update handles the modal's own timer and frame messages, keys while the
// modal has focus, and mouse presses. Messages addressed to another
// instance, and everything after Close, are ignored.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}

	switch msg := msg.(type) {
	case openElapsedMsg:
		if msg.id != m.id {
			return nil
		}
		m.timerFired(msg.seq)
		logging.Debugf("modal %s: open timer #%d fired (active=%t)", m.name, msg.seq, m.active)
		if !m.transitioning {
			return nil
		}
		m.transitioning = false
		return m.retarget(true)

	case closeElapsedMsg:
		if msg.id != m.id {
			return nil
		}
		m.timerFired(msg.seq)
		logging.Debugf("modal %s: close timer #%d fired (active=%t)", m.name, msg.seq, m.active)
		m.mounted = false
		m.layout = layout{}
		return nil

	case frameMsg:
		if msg.id != m.id {
			return nil
		}
		return m.handleFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		cmd, _ := m.Click(msg.X, msg.Y)
		return cmd
	}
	return nil
}

func (m *Modal) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	ev := newSyntheticEvent(intent.NewKeyEvent(msg.String()))

	if key.Matches(msg, m.keys.Close) {
		return m.RequestClose(ev.Native)
	}

	var cmd tea.Cmd
	if c, ok := m.content.(Interactive); ok && renderable(m.content) {
		cmd = c.Update(msg)
	}
	m.StopBubbling(ev)
	return cmd
}

// Click dispatches a press at screen cell (x, y) against the last rendered
// layout. The event bubbles from the close button through the panel to the
// backdrop; afterwards the native event reaches the host's click listeners
// unless a region stopped it. The native event is returned for inspection.
func (m *Modal) Click(x, y int) (tea.Cmd, *intent.Event) {
	native := intent.NewClickEvent(x, y)
	if m.closed || !m.mounted {
		return nil, native
	}
	ev := newSyntheticEvent(native)

	var cmds []tea.Cmd
	for _, r := range m.layout.path(x, y) {
		logging.Debugf("modal %s: click (%d,%d) on %s", m.name, x, y, r)
		switch r {
		case regionCloseButton, regionBackdrop:
			cmds = append(cmds, m.RequestClose(native))
		case regionPanel:
			m.StopBubbling(ev)
		}
		if ev.PropagationStopped() {
			break
		}
	}

	if m.intents != nil {
		cmds = append(cmds, m.intents.Dispatch(intent.Click, native))
	}
	return tea.Batch(cmds...), native
}

// RequestClose is the single entry point for close intents: backdrop and
// close-button clicks, the close key and the back intent. It does nothing,
// leaving ev untouched, when the modal is not closable or not active.
// Otherwise it runs OnCloseClick, emits CloseRequestedMsg and prevents the
// event's default action.
func (m *Modal) RequestClose(ev *intent.Event) tea.Cmd {
	if !m.cfg.Closable || !m.active {
		return nil
	}
	_, span := tracer.Start(context.Background(), "modal.request_close", m.spanAttrs())
	defer span.End()

	if m.cfg.OnCloseClick != nil {
		m.cfg.OnCloseClick()
	}
	cmd := m.emitClose()
	if ev != nil {
		ev.PreventDefault()
	}
	logging.Debugf("modal %s: close requested", m.name)
	return cmd
}

func (m *Modal) emitClose() tea.Cmd {
	name := m.name
	return func() tea.Msg { return CloseRequestedMsg{Name: name} }
}

// StopBubbling keeps an event raised inside the panel from reaching the
// backdrop. It stops both the modal's own propagation and the native
// event's immediate propagation, so document-level click listeners that
// would otherwise run after the modal never see it either.
func (m *Modal) StopBubbling(ev *SyntheticEvent) {
	if ev == nil {
		return
	}
	if ev.Native != nil {
		ev.Native.StopImmediatePropagation()
	}
	ev.StopPropagation()
}

// Close tears the modal down: outstanding timers are invalidated, the back
// listener is removed and further messages are ignored. Close is
// idempotent.
func (m *Modal) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.openTimer, m.closeTimer, m.pending = 0, 0, 0
	m.animating = false
	m.unsubscribe()
	logging.Debugf("modal %s: torn down", m.name)
}

// Active reports the active flag seen by the last Sync.
func (m *Modal) Active() bool { return m.active }

// Mounted reports whether the overlay is part of the rendered view.
func (m *Modal) Mounted() bool { return m.mounted }

// Transitioning reports whether the off-screen transform applies.
func (m *Modal) Transitioning() bool { return m.transitioning }

// Transform returns the logical transform for the current state.
func (m *Modal) Transform() Transform {
	return TransformFor(m.cfg.FromDirection, m.transitioning)
}

func (m *Modal) MaskColor() string { return m.cfg.MaskColor }

func (m *Modal) TransitionDuration() time.Duration { return m.cfg.TransitionDuration }

// TransitionDurationMs is the duration in whole milliseconds.
func (m *Modal) TransitionDurationMs() int64 { return m.cfg.TransitionDuration.Milliseconds() }

func (m *Modal) ClassName() string { return m.cfg.ClassName }

func (m *Modal) Fullscreen() bool { return m.cfg.Fullscreen }

// Config returns the effective configuration from the last Sync.
func (m *Modal) Config() Config { return m.cfg }

// PendingTimers counts open and close timers that have not fired yet.
func (m *Modal) PendingTimers() int { return m.pending }
