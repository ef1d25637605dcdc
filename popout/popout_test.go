package popout

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/popoutview/core"
)

var t0 = time.Date(2025, 5, 7, 9, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type harness struct {
	m       *Model
	clock   *fakeClock
	flags   []bool
	dismiss int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{clock: &fakeClock{now: t0}}
	h.m = New(
		func(expanded bool, width int) string {
			h.flags = append(h.flags, expanded)
			return "# general"
		},
		func(expanded bool, width, height int) string {
			return "Content"
		},
		WithID("a"),
		WithClock(h.clock.Now),
	)
	h.m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.m.Update(core.SafeAreaMsg{Insets: core.Insets{Top: 1}})
	h.m.Update(core.GeometryMsg{ID: "a", Rect: core.Rect{X: 2, Y: 3, Width: 20, Height: 2}})
	return h
}

// frame delivers a frame at the clock time plus d and runs any dismissal.
func (h *harness) frame(d time.Duration) {
	at := h.clock.advance(d)
	wasShown := h.m.Shown()
	cmd := h.m.Update(core.FrameMsg{ID: "a", Time: at})
	if !wasShown || h.m.Shown() || cmd == nil {
		return
	}
	if _, ok := cmd().(core.DismissedMsg); ok {
		h.dismiss++
	}
}

func (h *harness) open(t *testing.T) {
	t.Helper()
	require.NotNil(t, h.m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	require.True(t, h.m.Shown())
	require.Equal(t, core.Collapsed, h.m.State())
	require.NotNil(t, h.m.Update(core.LayoutMsg{ID: "a", Time: h.clock.now}))
	require.Equal(t, core.Expanding, h.m.State())
	h.frame(250 * time.Millisecond)
	require.Equal(t, core.Expanded, h.m.State())
	h.frame(250 * time.Millisecond)
}

func (h *harness) mouse(x, y int, action tea.MouseAction, d time.Duration) tea.Cmd {
	h.clock.advance(d)
	return h.m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func TestClickOpensAndOverlayRendersExpandedCard(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	out := ansi.Strip(h.m.Overlay(strings.Repeat("base\n", 24)))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	require.Contains(t, lines[3], "✕ # general")
	require.Contains(t, out, "Content")
	require.Equal(t, core.Rect{X: 1, Y: 2, Width: 78, Height: 21}, h.m.Host().Presenter().Frame())
	require.True(t, h.m.Expanded())
	require.Contains(t, h.flags, true)
}

func TestMountedOverlayStartsAtSource(t *testing.T) {
	h := newHarness(t)
	h.m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, core.Rect{X: 2, Y: 3, Width: 20, Height: 2}, h.m.Host().Presenter().Frame())

	out := ansi.Strip(h.m.Overlay(""))
	lines := strings.Split(out, "\n")
	require.Equal(t, "  # general", strings.TrimRight(lines[3], " "))
	require.NotContains(t, out, "Content")
}

func TestDragUpCommitsAndDismissesOnce(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	require.Nil(t, h.mouse(40, 20, tea.MouseActionPress, 0))
	require.True(t, h.m.Host().Presenter().Dragging())
	h.mouse(40, 12, tea.MouseActionMotion, 50*time.Millisecond)
	require.Less(t, h.m.Host().Presenter().PreviewScale(), 1.0)
	h.mouse(40, 4, tea.MouseActionMotion, 50*time.Millisecond)
	require.NotNil(t, h.mouse(40, 4, tea.MouseActionRelease, 10*time.Millisecond))
	require.Equal(t, core.CollapsingViaGesture, h.m.State())

	require.Nil(t, h.m.Update(tea.KeyMsg{Type: tea.KeyEsc}), "dismiss while collapsing is ignored")
	h.frame(250 * time.Millisecond)
	require.False(t, h.m.Shown())
	require.Equal(t, 1, h.dismiss)
	h.frame(250 * time.Millisecond)
	require.Equal(t, 1, h.dismiss)
}

func TestShortDragSnapsBack(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	h.mouse(40, 20, tea.MouseActionPress, 0)
	h.mouse(40, 17, tea.MouseActionMotion, 200*time.Millisecond)
	h.mouse(40, 17, tea.MouseActionRelease, 200*time.Millisecond)
	require.Equal(t, core.Expanded, h.m.State())
	require.False(t, h.m.Host().Presenter().Dragging())

	h.frame(250 * time.Millisecond)
	require.Equal(t, 1.0, h.m.Host().Presenter().PreviewScale())
	require.True(t, h.m.Shown())
	require.Zero(t, h.dismiss)
}

func TestTapOnScrimDismisses(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	h.mouse(0, 0, tea.MouseActionPress, 0)
	require.NotNil(t, h.mouse(0, 0, tea.MouseActionRelease, 10*time.Millisecond))
	require.Equal(t, core.CollapsingViaAnimation, h.m.State())
	h.frame(250 * time.Millisecond)
	require.Equal(t, 1, h.dismiss)
}

func TestTapInsideCardKeepsItOpen(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	h.mouse(40, 10, tea.MouseActionPress, 0)
	h.mouse(40, 10, tea.MouseActionRelease, 10*time.Millisecond)
	require.Equal(t, core.Expanded, h.m.State())
}

func TestCloseAffordanceDismisses(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	require.NotNil(t, h.mouse(3, 3, tea.MouseActionPress, 0))
	require.Equal(t, core.CollapsingViaAnimation, h.m.State())
}

func TestEscTwiceDismissesOnce(t *testing.T) {
	h := newHarness(t)
	h.open(t)

	require.NotNil(t, h.m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	require.Nil(t, h.m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	h.frame(125 * time.Millisecond)
	h.frame(125 * time.Millisecond)
	h.frame(125 * time.Millisecond)
	require.Equal(t, 1, h.dismiss)
	require.False(t, h.m.Shown())
}

func TestEnterTogglesOnlyWhenFocused(t *testing.T) {
	h := newHarness(t)
	require.Nil(t, h.m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.False(t, h.m.Shown())
	require.Equal(t, core.ScopeCompact, h.m.Scope())

	h.m.Focus()
	require.NotNil(t, h.m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.True(t, h.m.Shown())
	require.Equal(t, core.ScopeExpanded, h.m.Scope())
}

func TestForeignMessagesAreIgnored(t *testing.T) {
	h := newHarness(t)
	h.m.Update(core.GeometryMsg{ID: "b", Rect: core.Rect{X: 9, Y: 9, Width: 1, Height: 1}})
	require.Equal(t, core.Rect{X: 2, Y: 3, Width: 20, Height: 2}, h.m.Host().Geometry())
	require.Nil(t, h.m.Update(core.ToggleMsg{ID: "b"}))
	require.False(t, h.m.Shown())
	require.NotNil(t, h.m.Update(core.ToggleMsg{ID: "a"}))
	require.Nil(t, h.m.Update(core.FrameMsg{ID: "b", Time: t0}))
	require.Nil(t, h.m.Update(core.LayoutMsg{ID: "b", Time: t0}))
	require.Equal(t, core.Collapsed, h.m.State())
}

func TestRenderCompactHeader(t *testing.T) {
	h := newHarness(t)
	out := ansi.Strip(h.m.Render(12, 1))
	require.Equal(t, "# general   ", out)
	require.Equal(t, []bool{false}, h.flags)
	require.Empty(t, h.m.Render(0, 1))
}
