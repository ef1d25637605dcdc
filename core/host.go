package core

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Feedback is the fire-and-forget signal sent on every toggle request.
type Feedback interface {
	Trigger()
}

// FeedbackFunc adapts a plain function to Feedback.
type FeedbackFunc func()

func (f FeedbackFunc) Trigger() {
	if f != nil {
		f()
	}
}

type HostConfig struct {
	ID       string
	Tuning   Tuning
	Logger   *log.Logger
	Feedback Feedback
	// OnUnmount runs after the overlay has been removed.
	OnUnmount func()
}

// Host is the inline side of a popout. It tracks the compact header's
// geometry and mounts or unmounts the Presenter.
type Host struct {
	id        string
	tuning    Tuning
	logger    *log.Logger
	feedback  Feedback
	onUnmount func()

	geometry  Rect
	surface   Size
	presenter *Presenter
}

func NewHost(cfg HostConfig) *Host {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tuning := cfg.Tuning
	if tuning.Duration == 0 && tuning.Damping == 0 {
		tuning = DefaultTuning()
	}
	return &Host{
		id:        cfg.ID,
		tuning:    tuning,
		logger:    logger,
		feedback:  cfg.Feedback,
		onUnmount: cfg.OnUnmount,
	}
}

// SetGeometry records the header's global frame. It applies while the
// overlay is open too, so the collapse lands on the current position.
func (h *Host) SetGeometry(r Rect) bool {
	if r == h.geometry {
		return false
	}
	h.geometry = r
	h.logger.Debug("rect", "id", h.id, "x", r.X, "y", r.Y, "w", r.Width, "h", r.Height)
	if h.presenter != nil {
		h.presenter.SetSource(r)
	}
	return true
}

func (h *Host) Geometry() Rect { return h.geometry }

func (h *Host) SetSurface(s Size) {
	h.surface = s
	if h.presenter != nil {
		h.presenter.SetSurface(s)
	}
}

func (h *Host) Surface() Size { return h.surface }

func (h *Host) Tuning() Tuning { return h.tuning }

// Shown reports whether the overlay is mounted.
func (h *Host) Shown() bool { return h.presenter != nil }

// Expanded is the flag passed to the header while it renders inline.
func (h *Host) Expanded() bool {
	return h.presenter != nil && h.presenter.Expanded()
}

// Presenter returns the mounted overlay, or nil.
func (h *Host) Presenter() *Presenter { return h.presenter }

// RequestToggle flips overlay visibility without animation. The returned
// command fires the feedback collaborator.
func (h *Host) RequestToggle() tea.Cmd {
	h.toggle()
	if h.feedback == nil {
		return nil
	}
	f := h.feedback
	return func() tea.Msg {
		f.Trigger()
		return nil
	}
}

func (h *Host) toggle() {
	if h.presenter != nil {
		h.unmount()
		return
	}
	var p *Presenter
	p = NewPresenter(PresenterConfig{
		ID:      h.id,
		Source:  h.geometry,
		Surface: h.surface,
		Tuning:  h.tuning,
		Logger:  h.logger,
		OnUnmount: func() {
			if h.presenter == p {
				h.unmount()
			}
		},
	})
	h.presenter = p
	h.logger.Debug("mount", "id", h.id)
}

func (h *Host) unmount() {
	h.presenter = nil
	h.logger.Debug("unmount", "id", h.id)
	if h.onUnmount != nil {
		h.onUnmount()
	}
}
