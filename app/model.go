// Package app is the demo program: a channel header and a compose bar, each
// backed by a popout.
package app

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/popoutview/core"
	"github.com/jask/popoutview/popout"
	"github.com/jask/popoutview/widgets"
)

const (
	navRow   = 3
	barRow   = 8
	navInset = 3
)

type Options struct {
	Tuning   core.Tuning
	Bindings []core.KeyBinding
	Feedback core.Feedback
	Logger   *log.Logger
	// IDs overrides the generated popout IDs, in demo order.
	IDs []string
}

type Model struct {
	width    int
	height   int
	keys     *core.KeyRegistry
	logger   *log.Logger
	popouts  []*popout.Model
	names    map[string]string
	focus    int
	status   string
	quitting bool
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bindings := opts.Bindings
	if len(bindings) == 0 {
		bindings = core.DefaultKeyBindings()
	}
	keys := core.NewKeyRegistry(bindings)
	m := Model{
		keys:   keys,
		logger: logger,
		names:  map[string]string{},
		status: "Ready",
		width:  80,
		height: 24,
	}
	for i, c := range demoCases() {
		popts := []popout.Option{
			popout.WithKeys(keys),
			popout.WithLogger(logger.With("popout", c.name)),
		}
		if opts.Tuning != (core.Tuning{}) {
			popts = append(popts, popout.WithTuning(opts.Tuning))
		}
		if opts.Feedback != nil {
			popts = append(popts, popout.WithFeedback(opts.Feedback))
		}
		if i < len(opts.IDs) {
			popts = append(popts, popout.WithID(opts.IDs[i]))
		}
		p := popout.New(c.header, c.content, popts...)
		m.popouts = append(m.popouts, p)
		m.names[p.ID()] = c.name
	}
	m.popouts[0].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }
}

// Popouts returns the demo popouts in display order.
func (m Model) Popouts() []*popout.Model { return m.popouts }

func (m Model) Status() string { return m.status }

// open is the popout currently presenting its overlay, if any.
func (m Model) open() *popout.Model {
	for _, p := range m.popouts {
		if p.Shown() {
			return p
		}
	}
	return nil
}

func (m Model) scope() string {
	if p := m.open(); p != nil {
		return p.Scope()
	}
	return core.ScopeCompact
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds := m.broadcast(msg)
		m.relayout()
		return m, cmds
	case core.DismissedMsg:
		m.status = "Closed " + m.names[msg.ID]
		m.logger.Debug("dismissed", "id", msg.ID)
		return m, nil
	case core.FrameMsg, core.LayoutMsg, core.ToggleMsg, core.GeometryMsg, core.SafeAreaMsg:
		return m, m.broadcast(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if p := m.open(); p != nil {
			return m, p.Update(msg)
		}
		cmd := m.broadcast(msg)
		m.noteOpened()
		return m, cmd
	}
	return m, nil
}

func (m *Model) noteOpened() {
	if p := m.open(); p != nil {
		m.status = "Opened " + m.names[p.ID()]
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.scope()
	if m.keys.IsAction(msg, core.ActionQuit, scope) {
		m.quitting = true
		return m, tea.Quit
	}
	if p := m.open(); p != nil {
		return m, p.Update(msg)
	}
	switch {
	case m.keys.IsAction(msg, core.ActionFocusNext, scope):
		m.moveFocus(1)
		return m, nil
	case m.keys.IsAction(msg, core.ActionFocusPrev, scope):
		m.moveFocus(-1)
		return m, nil
	}
	cmd := m.popouts[m.focus].Update(msg)
	m.noteOpened()
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.popouts[m.focus].Blur()
	n := len(m.popouts)
	m.focus = ((m.focus+delta)%n + n) % n
	m.popouts[m.focus].Focus()
}

func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.popouts))
	for _, p := range m.popouts {
		if cmd := p.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// relayout measures where each compact header lands and reports it.
func (m Model) relayout() {
	safe := core.SafeAreaMsg{Insets: core.Insets{Top: 2, Bottom: 1}}
	for i, p := range m.popouts {
		p.Update(safe)
		p.Update(core.GeometryMsg{ID: p.ID(), Rect: m.slot(i)})
	}
}

// slot is the compact rect of the i-th popout.
func (m Model) slot(i int) core.Rect {
	switch i {
	case 0:
		return core.Rect{X: navInset, Y: navRow, Width: float64(max(0, m.width-2*navInset)), Height: 2}
	default:
		return core.Rect{X: 2, Y: barRow, Width: float64(max(0, m.width-4)), Height: 1}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	rows := make([]string, max(1, m.height))
	rows[0] = widgets.RenderHeaderBar(m.width, widgets.TitleStyle.Render("popoutview"))
	if len(rows) > 1 {
		rows[1] = widgets.RenderStatusBar(m.width, m.status)
	}
	m.place(rows, 0, func(line int, card string) string {
		lead, trail := "   ", "   "
		if line == 0 {
			lead = m.marker(0) + "‹ "
			trail = " ◎ "
		}
		return lead + card + trail
	})
	m.place(rows, 1, func(_ int, card string) string {
		return m.marker(1) + " " + card
	})
	if barRow+2 < len(rows) {
		rows[barRow+2] = "  " + widgets.CaptionStyle.Render("tab to switch, enter to open, click or drag to interact")
	}
	if len(rows) > 2 {
		rows[len(rows)-1] = widgets.RenderHelp(m.width, m.keys.Help(m.scope()))
	}
	view := strings.Join(rows, "\n")
	if p := m.open(); p != nil {
		return p.Overlay(view)
	}
	return view
}

func (m Model) marker(i int) string {
	if i == m.focus && m.open() == nil {
		return widgets.AccentStyle.Render("▸")
	}
	return " "
}

// place renders popout i into rows at its slot.
func (m Model) place(rows []string, i int, frame func(line int, card string) string) {
	r := m.slot(i)
	_, y, w, h := r.Cells()
	if w <= 0 || h <= 0 || y+h > len(rows) {
		return
	}
	for line, s := range strings.Split(m.popouts[i].Render(w, h), "\n") {
		if line >= h {
			break
		}
		rows[y+line] = frame(line, s)
	}
}
