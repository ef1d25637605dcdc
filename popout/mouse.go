package popout

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/popoutview/core"
)

// flingWindow is how recent the last motion sample must be at release for
// its velocity to count.
const flingWindow = 100 * time.Millisecond

// pointer tracks one press-drag-release sequence over the overlay.
type pointer struct {
	originX     int
	originY     int
	translation core.Vector
	velocity    core.Vector
	lastAt      time.Time
	moved       bool
}

func (p *pointer) sample(x, y int, now time.Time) {
	next := core.Vector{DX: float64(x - p.originX), DY: float64(y - p.originY)}
	if dt := now.Sub(p.lastAt).Seconds(); dt > 0 {
		p.velocity = core.Vector{
			DX: (next.DX - p.translation.DX) / dt,
			DY: (next.DY - p.translation.DY) / dt,
		}
	}
	p.translation = next
	p.lastAt = now
	if !next.IsZero() {
		p.moved = true
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	now := m.now()
	if !m.host.Shown() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.host.Geometry().Contains(float64(msg.X), float64(msg.Y)) {
			return m.Toggle()
		}
		return nil
	}
	p := m.host.Presenter()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if m.onClose(p, msg.X, msg.Y) {
			return m.Dismiss()
		}
		m.pointer = &pointer{originX: msg.X, originY: msg.Y, lastAt: now}
		p.DragStart(now)
	case tea.MouseActionMotion:
		if m.pointer == nil {
			return nil
		}
		m.pointer.sample(msg.X, msg.Y, now)
		p.DragUpdate(m.pointer.translation, m.pointer.velocity)
	case tea.MouseActionRelease:
		ptr := m.pointer
		m.pointer = nil
		if ptr == nil {
			return nil
		}
		if !ptr.moved && !p.Frame().Contains(float64(msg.X), float64(msg.Y)) {
			p.Tap(now)
			return m.scheduleFrame()
		}
		velocity := ptr.velocity
		if now.Sub(ptr.lastAt) > flingWindow {
			velocity = core.Vector{}
		}
		p.DragEnd(ptr.translation, velocity, now)
		return m.scheduleFrame()
	}
	return nil
}

// onClose reports whether (x, y) hits the dismiss affordance.
func (m *Model) onClose(p *core.Presenter, x, y int) bool {
	if !p.Expanded() {
		return false
	}
	fx, fy, _, _ := p.Frame().Cells()
	cx, cy := m.card(p).ContentOrigin()
	cx += fx
	cy += fy
	return y == cy && x >= cx && x < cx+len([]rune(closeGlyph))
}
