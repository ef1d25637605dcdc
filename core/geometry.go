package core

import "math"

// Rect is a rectangle in global terminal-cell coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsZero reports whether the rect was never measured.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ScaledTop scales the rect around its top-center point.
func (r Rect) ScaledTop(scale float64) Rect {
	if scale == 1 {
		return r
	}
	w := r.Width * scale
	h := r.Height * scale
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y,
		Width:  w,
		Height: h,
	}
}

// Cells rounds the rect to whole cells. Negative sizes clamp to zero.
func (r Rect) Cells() (x, y, w, h int) {
	x = int(math.Round(r.X))
	y = int(math.Round(r.Y))
	w = max(0, int(math.Round(r.Width)))
	h = max(0, int(math.Round(r.Height)))
	return x, y, w, h
}

// LerpRect interpolates every edge of a toward b. t=0 yields a exactly.
func LerpRect(a, b Rect, t float64) Rect {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Rect{
		X:      lerp(a.X, b.X, t),
		Y:      lerp(a.Y, b.Y, t),
		Width:  lerp(a.Width, b.Width, t),
		Height: lerp(a.Height, b.Height, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Insets are the safe-area insets of the presenting surface.
type Insets struct {
	Top      float64
	Bottom   float64
	Leading  float64
	Trailing float64
}

// Vector is a 2D translation (cells) or velocity (cells per second).
type Vector struct {
	DX float64
	DY float64
}

func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Size is the presenting surface size.
type Size struct {
	Width  float64
	Height float64
}
