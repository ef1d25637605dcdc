package core

import "time"

const (
	compactCornerRadius  = 10
	expandedCornerRadius = 20
	scrimOpacity         = 0.5
)

// Tuning holds the empirically chosen constants of the transition.
type Tuning struct {
	// Duration of every expand, collapse, snap-back and fade animation.
	Duration time.Duration
	// FrameInterval between animation frames.
	FrameInterval time.Duration
	// Damping scales the drag ratio into the rubber-band preview scale.
	Damping float64
	// VelocityDivisor turns end-of-drag velocity into extra translation.
	VelocityDivisor float64
	// CommitRatio is the upward drag, as a fraction of surface height,
	// past which a drag dismisses.
	CommitRatio float64
	// Margin around the expanded card, in cells.
	Margin float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Duration:        250 * time.Millisecond,
		FrameInterval:   time.Second / 60,
		Damping:         0.1,
		VelocityDivisor: 5,
		CommitRatio:     0.5,
		Margin:          1,
	}
}

// PreviewScale is the rubber-band scale for a vertical translation dy.
func (t Tuning) PreviewScale(dy, surfaceHeight float64) float64 {
	if surfaceHeight <= 0 {
		return 1
	}
	return 1 + (dy/surfaceHeight)*t.Damping
}

// EffectiveTranslation blends the fling velocity into the translation.
func (t Tuning) EffectiveTranslation(dy, vy float64) float64 {
	if t.VelocityDivisor == 0 {
		return dy
	}
	return dy + vy/t.VelocityDivisor
}

// ShouldCommit decides whether a finished drag dismisses the overlay.
// The ratio is the unscaled effective translation over the surface height;
// a negative ratio is an upward drag.
func (t Tuning) ShouldCommit(translation, velocity Vector, surfaceHeight float64) bool {
	if surfaceHeight <= 0 {
		return false
	}
	ratio := t.EffectiveTranslation(translation.DY, velocity.DY) / surfaceHeight
	return -ratio > t.CommitRatio
}
