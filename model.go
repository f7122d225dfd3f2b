package main

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-modal/clipboard"
	"github.com/andareed/siftly-modal/clock"
	"github.com/andareed/siftly-modal/config"
	"github.com/andareed/siftly-modal/dialogs"
	"github.com/andareed/siftly-modal/intent"
	"github.com/andareed/siftly-modal/logging"
	"github.com/andareed/siftly-modal/modal"
	"github.com/andareed/siftly-modal/router"
	"github.com/andareed/siftly-modal/store"
)

// Modal names, also the store keys.
const (
	helpModal = "help"
	gotoModal = "goto"
	busyModal = "busy"
)

const reloadDuration = 1500 * time.Millisecond

var routes = []string{"/", "/logs", "/logs/today", "/settings", "/about"}

type reloadDoneMsg struct{ id int }

type copiedMsg struct {
	text   string
	method clipboard.Method
	err    error
}

type model struct {
	clock   clock.Clock
	store   *store.Store
	history *router.History
	intents *intent.Bus

	// modals in drawing order, topmost last
	modals []*modal.Modal

	help   *dialogs.Help
	prompt *dialogs.Prompt
	busy   *dialogs.Message

	viewport       viewport.Model
	ready          bool
	terminalWidth  int
	terminalHeight int

	ui               uiState
	unsubscribeClick func()
}

func newModel(cfg config.Config, clk clock.Clock) *model {
	if clk == nil {
		clk = clock.Real()
	}
	m := &model{
		clock:   clk,
		store:   store.New(),
		history: router.New("/"),
		intents: intent.NewBus(),
	}

	m.help = dialogs.NewHelpDialog(Keys.Legend())
	m.prompt = dialogs.NewPrompt(gotoModal, "Go to: ", "/", "enter to go • esc to cancel")
	m.busy = dialogs.NewMessage("Reloading", "", "", 32)

	m.store.Register(helpModal,
		modal.WithDirection(modal.FromTop),
		modal.WithCloseOnLocationChange(true),
		modal.WithClassName("compact"),
	)
	m.store.Register(gotoModal,
		modal.WithDirection(modal.FromLeft),
		modal.WithTransitionDuration(300*time.Millisecond),
	)
	m.store.Register(busyModal,
		modal.Unclosable(),
		modal.WithClassName("warning"),
	)

	deps := modal.Deps{Clock: clk, Intents: m.intents}
	base := cfg.Modal.Options()
	m.modals = []*modal.Modal{
		modal.New(helpModal, m.store.Lookup, deps, base...),
		modal.New(gotoModal, m.store.Lookup, deps, append(slices.Clone(base), modal.WithOnCloseClick(m.prompt.Blur))...),
		modal.New(busyModal, m.store.Lookup, deps, base...),
	}

	m.unsubscribeClick = m.intents.Subscribe(intent.Click, func(ev *intent.Event) tea.Cmd {
		m.ui.lastClick = fmt.Sprintf("%d,%d", ev.X, ev.Y)
		return nil
	})
	return m
}

func (m *model) Init() tea.Cmd {
	log.Println("siftly-modal: Initialised")
	return tea.Batch(tea.SetWindowTitle("siftly-modal"), m.syncModals())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case modal.CloseRequestedMsg:
		if m.store.Update(msg) && msg.Name == gotoModal {
			m.prompt.Blur()
		}
	case store.OpenMsg:
		m.store.Update(msg)
	case dialogs.PromptConfirmedMsg:
		m.store.Close(gotoModal)
		m.prompt.Blur()
		cmds = append(cmds, m.navigate(msg.Value))
	case reloadDoneMsg:
		if msg.id == m.ui.reloadSeq && m.store.Close(busyModal) {
			cmds = append(cmds, m.startNotice("reloaded "+m.history.Path(), "success", noticeDuration))
		}
	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("copy failed: %v", msg.err)
			cmds = append(cmds, m.startNotice("clipboard unavailable", "warn", noticeDuration))
		} else {
			cmds = append(cmds, m.startNotice(fmt.Sprintf("copied %s (%s)", msg.text, msg.method), "success", noticeDuration))
		}
	case clearNoticeMsg:
		m.clearNotice(msg)
	default:
		// modal timers and animation frames
		for _, md := range m.modals {
			cmds = append(cmds, md.Update(msg))
		}
	}

	cmds = append(cmds, m.syncModals())
	m.refreshPage()
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	logging.Debugf("key %q", msg.String())
	switch {
	case msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, Keys.Back):
		ev := intent.NewEvent(intent.Back)
		ev.Key = msg.String()
		return m.back(ev)
	}

	if top := m.focused(); top != nil {
		return top.Update(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m.quit()
	case key.Matches(msg, Keys.OpenHelp):
		m.store.Open(helpModal, m.help)
	case key.Matches(msg, Keys.GoTo):
		m.prompt.Reset(m.history.Path())
		m.store.Open(gotoModal, m.prompt)
		return m.prompt.Focus()
	case key.Matches(msg, Keys.Next):
		return m.navigate(m.nextRoute())
	case key.Matches(msg, Keys.Reload):
		return m.reload()
	case key.Matches(msg, Keys.CopyPath):
		return copyText(m.history.Path())
	}
	return nil
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if top := m.focused(); top != nil {
		return top.Update(msg)
	}
	return m.intents.Dispatch(intent.Click, intent.NewClickEvent(msg.X, msg.Y))
}

// back offers the back intent to the open modals first; history only pops
// when none of them handled it.
func (m *model) back(ev *intent.Event) tea.Cmd {
	cmd := m.intents.Dispatch(intent.Back, ev)
	if ev.DefaultPrevented() {
		logging.Debugf("back handled by a dialog")
		return cmd
	}
	if !m.history.Back() {
		return tea.Batch(cmd, m.startNotice("nothing to go back to", "info", noticeDuration))
	}
	return cmd
}

func (m *model) navigate(p string) tea.Cmd {
	if !m.history.Push(p) {
		return m.startNotice("already at "+router.Clean(p), "info", noticeDuration)
	}
	return nil
}

func (m *model) nextRoute() string {
	i := slices.Index(routes, m.history.Path())
	return routes[(i+1)%len(routes)]
}

func (m *model) reload() tea.Cmd {
	m.ui.reloadSeq++
	id := m.ui.reloadSeq
	m.busy.SetBody(fmt.Sprintf("Fetching %s, hold on…", m.history.Path()))
	m.store.Open(busyModal, m.busy)
	return m.clock.Tick(reloadDuration, func(time.Time) tea.Msg { return reloadDoneMsg{id: id} })
}

func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		method, err := clipboard.Copy(text)
		return copiedMsg{text: text, method: method, err: err}
	}
}

// focused returns the topmost active modal, which receives input.
func (m *model) focused() *modal.Modal {
	for i := len(m.modals) - 1; i >= 0; i-- {
		if md := m.modals[i]; md.Active() && md.Mounted() {
			return md
		}
	}
	return nil
}

func (m *model) syncModals() tea.Cmd {
	path := m.history.Path()
	cmds := make([]tea.Cmd, 0, len(m.modals))
	for _, md := range m.modals {
		cmds = append(cmds, md.Sync(path))
	}
	return tea.Batch(cmds...)
}

func (m *model) quit() tea.Cmd {
	m.teardown()
	return tea.Quit
}

// teardown releases every modal and listener. Safe to call twice.
func (m *model) teardown() {
	for _, md := range m.modals {
		md.Close()
	}
	if m.unsubscribeClick != nil {
		m.unsubscribeClick()
	}
}

func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height
	// appstyle margins, page border, header and footer
	m.viewport = viewport.New(max(width-6, 1), max(height-7, 1))
	m.ready = true
}
