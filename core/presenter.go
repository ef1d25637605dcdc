package core

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// PresenterConfig configures a Presenter at mount time.
type PresenterConfig struct {
	ID      string
	Source  Rect
	Surface Size
	Tuning  Tuning
	Logger  *log.Logger
	// OnUnmount runs exactly once, when a collapse animation completes.
	OnUnmount func()
}

// Presenter is the full-screen surface shown while a popout is open. It owns
// the transition state machine, the geometry interpolation and the drag
// gesture. It holds no timers: Advance is called with each frame time.
type Presenter struct {
	id        string
	tuning    Tuning
	logger    *log.Logger
	onUnmount func()

	state   State
	latest  Rect
	source  Rect
	surface Size
	now     time.Time

	insets         Insets
	insetsCaptured bool
	pendingDismiss bool
	unmounted      bool

	progress float64
	morph    *Animation

	contentOpacity float64
	fade           *Animation

	previewScale float64
	scale        *Animation

	drag *DragSession
}

func NewPresenter(cfg PresenterConfig) *Presenter {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tuning := cfg.Tuning
	if tuning.Duration == 0 && tuning.Damping == 0 {
		tuning = DefaultTuning()
	}
	return &Presenter{
		id:           cfg.ID,
		tuning:       tuning,
		logger:       logger,
		onUnmount:    cfg.OnUnmount,
		state:        Collapsed,
		latest:       cfg.Source,
		source:       cfg.Source,
		surface:      cfg.Surface,
		previewScale: 1,
	}
}

func (p *Presenter) State() State { return p.state }

// Expanded is the flag handed to header and content collaborators. It is
// true from the start of the expansion until a collapse begins.
func (p *Presenter) Expanded() bool {
	return p.state == Expanding || p.state == Expanded
}

// Unmounted reports whether the unmount callback has fired.
func (p *Presenter) Unmounted() bool { return p.unmounted }

func (p *Presenter) Insets() Insets { return p.insets }

// Source returns the source snapshot used by the current or last morph.
func (p *Presenter) Source() Rect { return p.source }

func (p *Presenter) Progress() float64 { return p.progress }

func (p *Presenter) PreviewScale() float64 { return p.previewScale }

// SetSource records the latest source measurement. A running morph keeps
// its snapshot; the next collapse picks this one up.
func (p *Presenter) SetSource(r Rect) {
	p.latest = r
}

func (p *Presenter) SetSurface(s Size) {
	p.surface = s
}

// Layout handles the first layout pass of the mounted overlay. It captures
// the safe-area insets once and starts the expansion. Later calls in the
// same cycle are ignored.
func (p *Presenter) Layout(insets Insets, now time.Time) bool {
	p.now = now
	if p.state != Collapsed || p.insetsCaptured || p.unmounted {
		return false
	}
	p.insets = insets
	p.insetsCaptured = true
	p.source = p.latest
	p.logger.Debug("insets captured", "id", p.id, "top", insets.Top)
	p.setState(Expanding)
	p.morph = NewAnimation(p.progress, 1, now, p.tuning.Duration)
	return true
}

// Dismiss starts the collapse animation. It is a no-op while collapsed or
// already collapsing. During the expansion the request is held until the
// expansion completes.
func (p *Presenter) Dismiss(now time.Time) bool {
	p.now = now
	switch p.state {
	case Expanding:
		if p.pendingDismiss {
			return false
		}
		p.pendingDismiss = true
		return true
	case Expanded:
		if p.drag != nil {
			p.drag = nil
			p.snapBack(now)
		}
		p.startCollapse(CollapsingViaAnimation, now)
		return true
	default:
		return false
	}
}

// Advance samples every running animation at now and applies completions.
// It reports whether any animation is still running.
func (p *Presenter) Advance(now time.Time) bool {
	p.now = now
	if p.morph != nil {
		p.progress = p.morph.Value(now)
		if p.morph.Done(now) {
			p.morph = nil
			p.finishMorph(now)
		}
	}
	if p.scale != nil {
		p.previewScale = p.scale.Value(now)
		if p.scale.Done(now) {
			p.scale = nil
			p.previewScale = 1
		}
	}
	if p.fade != nil {
		p.contentOpacity = p.fade.Value(now)
		if p.fade.Done(now) {
			p.fade = nil
			p.contentOpacity = 1
		}
	}
	return p.Animating()
}

func (p *Presenter) Animating() bool {
	return p.morph != nil || p.scale != nil || p.fade != nil
}

func (p *Presenter) finishMorph(now time.Time) {
	switch p.state {
	case Expanding:
		p.progress = 1
		p.setState(Expanded)
		p.fade = NewAnimation(0, 1, now, p.tuning.Duration)
		if p.pendingDismiss {
			p.pendingDismiss = false
			p.startCollapse(CollapsingViaAnimation, now)
		}
	case CollapsingViaAnimation, CollapsingViaGesture:
		p.progress = 0
		p.setState(Collapsed)
		p.complete()
	}
}

func (p *Presenter) startCollapse(next State, now time.Time) {
	p.source = p.latest
	p.fade = nil
	p.contentOpacity = 0
	p.setState(next)
	p.morph = NewAnimation(p.progress, 0, now, p.tuning.Duration)
}

func (p *Presenter) complete() {
	if p.unmounted {
		return
	}
	p.unmounted = true
	if p.onUnmount != nil {
		p.onUnmount()
	}
}

func (p *Presenter) setState(next State) {
	if p.state == next {
		return
	}
	p.logger.Debug("transition", "id", p.id, "from", p.state, "to", next)
	p.state = next
}

// Target is the expanded frame: the surface minus the margin, pushed down
// by the captured top inset.
func (p *Presenter) Target() Rect {
	m := p.tuning.Margin
	top := p.insets.Top
	return Rect{
		X:      m,
		Y:      top + m,
		Width:  max(0, p.surface.Width-2*m),
		Height: max(0, p.surface.Height-top-2*m),
	}
}

// Frame is the card's current rect, including the drag preview scale.
// An unmeasured source is drawn as if already full-screen.
func (p *Presenter) Frame() Rect {
	target := p.Target()
	src := p.source
	if !p.insetsCaptured {
		src = p.latest
	}
	if src.IsZero() {
		src = target
	}
	return LerpRect(src, target, p.progress).ScaledTop(p.previewScale)
}

// ContentOpacity is zero until the overlay is Expanded, then fades in.
func (p *Presenter) ContentOpacity() float64 {
	if p.state != Expanded {
		return 0
	}
	return p.contentOpacity
}

func (p *Presenter) CornerRadius() float64 {
	if p.Expanded() {
		return expandedCornerRadius
	}
	return compactCornerRadius
}

func (p *Presenter) Background() Layer {
	if p.Expanded() {
		return LayerSurface
	}
	return LayerTint
}

func (p *Presenter) ScrimOpacity() float64 {
	if p.Expanded() {
		return scrimOpacity
	}
	return 0
}

// Padding inside the card, in cells.
func (p *Presenter) Padding() int {
	if p.Expanded() {
		return 1
	}
	return 0
}
