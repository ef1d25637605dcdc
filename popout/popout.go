package popout

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jask/popoutview/core"
	"github.com/jask/popoutview/widgets"
)

// closeGlyph is the dismiss affordance prepended to the expanded header.
const closeGlyph = "✕ "

// HeaderFunc renders the header for the given flag and width.
type HeaderFunc func(expanded bool, width int) string

// ContentFunc renders the body shown while expanded.
type ContentFunc func(expanded bool, width, height int) string

type Option func(*Model)

func WithID(id string) Option {
	return func(m *Model) { m.id = id }
}

func WithTuning(t core.Tuning) Option {
	return func(m *Model) { m.tuning = t }
}

func WithKeys(keys *core.KeyRegistry) Option {
	return func(m *Model) { m.keys = keys }
}

func WithFeedback(f core.Feedback) Option {
	return func(m *Model) { m.feedback = f }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithClock replaces time.Now for input timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

type Model struct {
	id       string
	header   HeaderFunc
	content  ContentFunc
	tuning   core.Tuning
	keys     *core.KeyRegistry
	feedback core.Feedback
	logger   *log.Logger
	now      func() time.Time

	host    *core.Host
	insets  core.Insets
	width   int
	height  int
	focused bool

	ticking   bool
	unmounted bool
	pointer   *pointer
}

func New(header HeaderFunc, content ContentFunc, opts ...Option) *Model {
	m := &Model{
		id:      uuid.NewString(),
		header:  header,
		content: content,
		tuning:  core.DefaultTuning(),
		keys:    core.NewKeyRegistry(core.DefaultKeyBindings()),
		logger:  log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.host = core.NewHost(core.HostConfig{
		ID:       m.id,
		Tuning:   m.tuning,
		Logger:   m.logger,
		Feedback: m.feedback,
		OnUnmount: func() {
			m.unmounted = true
		},
	})
	return m
}

func (m *Model) ID() string { return m.id }

func (m *Model) Host() *core.Host { return m.host }

// Shown reports whether the overlay is mounted.
func (m *Model) Shown() bool { return m.host.Shown() }

// Expanded is the flag passed to header and content.
func (m *Model) Expanded() bool { return m.host.Expanded() }

func (m *Model) State() core.State {
	if p := m.host.Presenter(); p != nil {
		return p.State()
	}
	return core.Collapsed
}

func (m *Model) Focus()        { m.focused = true }
func (m *Model) Blur()         { m.focused = false }
func (m *Model) Focused() bool { return m.focused }

// Scope is the key scope of the popout's current presentation.
func (m *Model) Scope() string {
	if m.host.Shown() {
		return core.ScopeExpanded
	}
	return core.ScopeCompact
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.SetSurface(core.Size{Width: float64(msg.Width), Height: float64(msg.Height)})
	case core.SafeAreaMsg:
		m.insets = msg.Insets
	case core.GeometryMsg:
		if msg.ID == m.id {
			m.host.SetGeometry(msg.Rect)
		}
	case core.ToggleMsg:
		if msg.ID == m.id {
			return m.Toggle()
		}
	case core.LayoutMsg:
		if msg.ID != m.id {
			return nil
		}
		if p := m.host.Presenter(); p != nil && p.Layout(m.insets, msg.Time) {
			return m.scheduleFrame()
		}
	case core.FrameMsg:
		if msg.ID != m.id {
			return nil
		}
		return m.advance(msg.Time)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

// Toggle requests the overlay to open, or removes it instantly when open.
func (m *Model) Toggle() tea.Cmd {
	feedback := m.host.RequestToggle()
	if !m.host.Shown() {
		m.pointer = nil
		m.unmounted = false
		return tea.Batch(feedback, core.DismissedCmd(m.id))
	}
	// The first layout pass comes one frame after the mount so the card is
	// drawn at the source rect before it moves.
	return tea.Batch(feedback, core.LayoutCmd(m.id, m.tuning.FrameInterval))
}

// Dismiss starts the animated collapse.
func (m *Model) Dismiss() tea.Cmd {
	p := m.host.Presenter()
	if p == nil || !p.Dismiss(m.now()) {
		return nil
	}
	m.pointer = nil
	return m.scheduleFrame()
}

func (m *Model) advance(now time.Time) tea.Cmd {
	m.ticking = false
	p := m.host.Presenter()
	if p == nil {
		return nil
	}
	animating := p.Advance(now)
	if m.unmounted {
		m.unmounted = false
		m.pointer = nil
		return core.DismissedCmd(m.id)
	}
	if animating {
		return m.scheduleFrame()
	}
	return nil
}

func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return core.FrameCmd(m.id, m.tuning.FrameInterval)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.host.Shown() {
		if m.keys.IsAction(msg, core.ActionDismiss, core.ScopeExpanded) {
			return m.Dismiss()
		}
		return nil
	}
	if m.focused && m.keys.IsAction(msg, core.ActionToggle, core.ScopeCompact) {
		return m.Toggle()
	}
	return nil
}

// Render draws the compact header into the slot the parent allocated.
func (m *Model) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := widgets.Card{Width: width, Height: height, CornerRadius: 10}
	w, _ := card.ContentSize()
	if m.header != nil {
		card.Header = m.header(m.host.Expanded(), w)
	}
	return card.Render()
}

// Overlay draws the mounted overlay over base, the parent's full view.
func (m *Model) Overlay(base string) string {
	p := m.host.Presenter()
	if p == nil || m.width <= 0 || m.height <= 0 {
		return base
	}
	canvas := widgets.FitCanvas(base, m.width, m.height)
	if p.ScrimOpacity() > 0 {
		canvas = widgets.Dim(canvas, m.width, m.height)
	}
	x, y, _, _ := p.Frame().Cells()
	return widgets.OverlayAt(canvas, m.card(p).Render(), x, y, m.width, m.height)
}

func (m *Model) card(p *core.Presenter) widgets.Card {
	_, _, w, h := p.Frame().Cells()
	card := widgets.Card{
		Width:        w,
		Height:       h,
		CornerRadius: p.CornerRadius(),
		Opaque:       p.Background() == core.LayerSurface,
		Padding:      p.Padding(),
	}
	innerW, innerH := card.ContentSize()
	expanded := p.Expanded()
	if m.header != nil {
		if expanded {
			card.Header = closeGlyph + m.header(expanded, max(0, innerW-len([]rune(closeGlyph))))
		} else {
			card.Header = m.header(expanded, innerW)
		}
	}
	if opacity := p.ContentOpacity(); opacity > 0 && m.content != nil {
		headerLines := countLines(card.Header)
		card.Body = m.content(expanded, innerW, max(0, innerH-headerLines-1))
		card.BodyFaint = opacity < 0.5
	}
	return card
}

func countLines(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
