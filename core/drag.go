package core

import "time"

// DragSession is the state of one active pointer drag over the overlay.
type DragSession struct {
	Translation  Vector
	Velocity     Vector
	PreviewScale float64
	Started      time.Time
}

// DragOutcome is the decision taken when a drag ends.
type DragOutcome int

const (
	// DragIgnored means no session was open.
	DragIgnored DragOutcome = iota
	// DragSnapBack means the preview animates back and the overlay stays open.
	DragSnapBack
	// DragCommit means the drag dismissed the overlay.
	DragCommit
)

func (o DragOutcome) String() string {
	switch o {
	case DragSnapBack:
		return "snap-back"
	case DragCommit:
		return "commit"
	default:
		return "ignored"
	}
}

// Dragging reports whether a drag session is open.
func (p *Presenter) Dragging() bool {
	return p.drag != nil
}

// Drag returns a copy of the open session.
func (p *Presenter) Drag() (DragSession, bool) {
	if p.drag == nil {
		return DragSession{}, false
	}
	return *p.drag, true
}

// DragStart opens a session. Only an expanded, settled overlay accepts drags.
func (p *Presenter) DragStart(now time.Time) bool {
	p.now = now
	if p.state != Expanded || p.drag != nil {
		return false
	}
	// A new drag takes over from a running snap-back.
	p.scale = nil
	p.drag = &DragSession{PreviewScale: p.previewScale, Started: now}
	return true
}

// DragUpdate applies the rubber-band preview for the current sample.
func (p *Presenter) DragUpdate(translation, velocity Vector) {
	if p.drag == nil {
		return
	}
	p.drag.Translation = translation
	p.drag.Velocity = velocity
	p.drag.PreviewScale = p.tuning.PreviewScale(translation.DY, p.surface.Height)
	p.previewScale = p.drag.PreviewScale
}

// DragEnd closes the session and either snaps back or commits to dismiss.
// The preview scale always animates back to 1.
func (p *Presenter) DragEnd(translation, velocity Vector, now time.Time) DragOutcome {
	if p.drag == nil {
		return DragIgnored
	}
	p.now = now
	p.drag = nil
	p.snapBack(now)
	if !p.tuning.ShouldCommit(translation, velocity, p.surface.Height) {
		p.logger.Debug("drag snap-back", "id", p.id, "dy", translation.DY, "vy", velocity.DY)
		return DragSnapBack
	}
	p.logger.Debug("drag commit", "id", p.id, "dy", translation.DY, "vy", velocity.DY)
	p.startCollapse(CollapsingViaGesture, now)
	return DragCommit
}

// DragCancel discards the session with no effect beyond resetting the preview.
func (p *Presenter) DragCancel(now time.Time) {
	if p.drag == nil {
		return
	}
	p.now = now
	p.drag = nil
	p.snapBack(now)
}

// Tap handles a zero-distance drag on the scrim, which always dismisses.
func (p *Presenter) Tap(now time.Time) bool {
	if p.drag != nil {
		p.drag = nil
		p.snapBack(now)
	}
	return p.Dismiss(now)
}

func (p *Presenter) snapBack(now time.Time) {
	if p.previewScale == 1 {
		p.scale = nil
		return
	}
	p.scale = NewAnimation(p.previewScale, 1, now, p.tuning.Duration)
}
