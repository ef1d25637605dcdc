package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHostSetGeometryIsIdempotent(t *testing.T) {
	h := NewHost(HostConfig{ID: "h"})
	r := Rect{X: 1, Y: 2, Width: 30, Height: 2}
	require.True(t, h.SetGeometry(r))
	require.False(t, h.SetGeometry(r))
	require.Equal(t, r, h.Geometry())
}

func TestHostToggleMountsInstantlyAndFiresFeedback(t *testing.T) {
	triggers := 0
	h := NewHost(HostConfig{ID: "h", Feedback: FeedbackFunc(func() { triggers++ })})
	h.SetSurface(Size{Width: 80, Height: 24})
	h.SetGeometry(Rect{X: 4, Y: 1, Width: 20, Height: 2})

	cmd := h.RequestToggle()
	require.True(t, h.Shown())
	require.NotNil(t, h.Presenter())
	require.Equal(t, Collapsed, h.Presenter().State(), "mount itself is not animated")
	require.Equal(t, Rect{X: 4, Y: 1, Width: 20, Height: 2}, h.Presenter().Frame())
	require.Zero(t, triggers, "feedback runs as a command, not inline")

	require.NotNil(t, cmd)
	require.Nil(t, cmd())
	require.Equal(t, 1, triggers)

	h.RequestToggle()()
	require.False(t, h.Shown())
	require.Equal(t, 2, triggers)
}

func TestHostWithoutFeedbackReturnsNilCmd(t *testing.T) {
	h := NewHost(HostConfig{ID: "h"})
	require.Nil(t, h.RequestToggle())
	require.True(t, h.Shown())
}

func TestHostUnmountsAfterCollapse(t *testing.T) {
	unmounts := 0
	h := NewHost(HostConfig{ID: "h", OnUnmount: func() { unmounts++ }})
	h.SetSurface(Size{Width: 80, Height: 24})
	h.SetGeometry(Rect{X: 4, Y: 1, Width: 20, Height: 2})
	h.RequestToggle()

	p := h.Presenter()
	d := h.Tuning().Duration
	require.True(t, p.Layout(Insets{Top: 1}, t0))
	require.True(t, h.Expanded())
	p.Advance(t0.Add(d))

	moved := Rect{X: 4, Y: 3, Width: 20, Height: 2}
	h.SetGeometry(moved)
	require.True(t, p.Dismiss(t0.Add(d)))
	require.False(t, h.Expanded())
	require.True(t, h.Shown())

	p.Advance(t0.Add(2 * d))
	require.False(t, h.Shown())
	require.Equal(t, 1, unmounts)
	require.Equal(t, moved, p.Frame(), "collapse lands on the latest geometry")

	p.Advance(t0.Add(3 * d))
	require.Equal(t, 1, unmounts)
}

func TestHostStaleCompletionDoesNotUnmountNewOverlay(t *testing.T) {
	h := NewHost(HostConfig{ID: "h"})
	h.SetSurface(Size{Width: 80, Height: 24})
	h.SetGeometry(Rect{X: 4, Y: 1, Width: 20, Height: 2})
	h.RequestToggle()
	first := h.Presenter()
	d := h.Tuning().Duration
	first.Layout(Insets{}, t0)
	first.Advance(t0.Add(d))
	first.Dismiss(t0.Add(d))

	h.RequestToggle()
	h.RequestToggle()
	second := h.Presenter()
	require.NotSame(t, first, second)

	first.Advance(t0.Add(2 * d))
	require.True(t, h.Shown())
	require.Same(t, second, h.Presenter())
}

func TestAnimationEaseInOut(t *testing.T) {
	require.Equal(t, 0.0, EaseInOut(0))
	require.Equal(t, 1.0, EaseInOut(1))
	require.InDelta(t, 0.5, EaseInOut(0.5), 1e-6)
	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := EaseInOut(float64(i) / 20)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
	require.Less(t, EaseInOut(0.1), 0.1, "starts slow")

	a := NewAnimation(2, 4, t0, 100*time.Millisecond)
	require.Equal(t, 2.0, a.Value(t0))
	require.Equal(t, 4.0, a.Value(t0.Add(time.Second)))
	require.False(t, a.Done(t0.Add(50*time.Millisecond)))
	require.True(t, a.Done(t0.Add(100*time.Millisecond)))

	instant := NewAnimation(0, 1, t0, 0)
	require.True(t, instant.Done(t0))
	require.Equal(t, 1.0, instant.Value(t0))
}

func TestLerpRectEndpoints(t *testing.T) {
	a := Rect{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.7}
	b := Rect{X: 1, Y: 1, Width: 90, Height: 20}
	require.Equal(t, a, LerpRect(a, b, 0))
	require.Equal(t, b, LerpRect(a, b, 1))
	require.Equal(t, Rect{X: 0.55, Y: 0.6, Width: 45.15, Height: 10.35}, roundRect(LerpRect(a, b, 0.5)))

	x, y, w, h := Rect{X: 1.4, Y: 2.6, Width: -3, Height: 4.5}.Cells()
	require.Equal(t, []int{1, 3, 0, 5}, []int{x, y, w, h})
	require.True(t, Rect{}.IsZero())
	require.True(t, b.Contains(1, 1))
	require.False(t, b.Contains(91, 1))
}

func roundRect(r Rect) Rect {
	round := func(v float64) float64 { return float64(int(v*100+0.5)) / 100 }
	return Rect{X: round(r.X), Y: round(r.Y), Width: round(r.Width), Height: round(r.Height)}
}
