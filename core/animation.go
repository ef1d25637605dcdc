package core

import (
	"math"
	"time"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// LinearCurve applies no easing.
func LinearCurve(t float64) float64 {
	return t
}

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut Curve = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}
		// Newton did not converge; bisect.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 16; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Animation moves a value from From to To over Duration, starting at Start.
// It holds no timer; callers sample it with the frame time.
type Animation struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Curve    Curve
}

func NewAnimation(from, to float64, start time.Time, d time.Duration) *Animation {
	return &Animation{From: from, To: to, Start: start, Duration: d, Curve: EaseInOut}
}

// Progress is the linear fraction of Duration elapsed at now, clamped to [0, 1].
func (a *Animation) Progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	return clampUnit(float64(now.Sub(a.Start)) / float64(a.Duration))
}

// Value is the eased value at now.
func (a *Animation) Value(now time.Time) float64 {
	p := a.Progress(now)
	if p >= 1 {
		return a.To
	}
	if a.Curve != nil {
		p = a.Curve(p)
	}
	return lerp(a.From, a.To, p)
}

func (a *Animation) Done(now time.Time) bool {
	return a.Progress(now) >= 1
}
