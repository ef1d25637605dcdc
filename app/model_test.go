package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/popoutview/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{IDs: []string{"general", "compose"}})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestLayoutReportsSlots(t *testing.T) {
	m := newTestModel(t)
	pops := m.Popouts()
	require.Len(t, pops, 2)
	require.Equal(t, core.Rect{X: 3, Y: 3, Width: 74, Height: 2}, pops[0].Host().Geometry())
	require.Equal(t, core.Rect{X: 2, Y: 8, Width: 76, Height: 1}, pops[1].Host().Geometry())

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 24)
	require.Contains(t, lines[3], "# general")
	require.Contains(t, lines[4], "36 Members - 4 Online")
	require.Contains(t, lines[8], "+")
	require.Contains(t, lines[23], "enter open")
}

func TestEnterOpensFocusedAndEscCloses(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	general := m.Popouts()[0]
	require.True(t, general.Shown())
	require.Equal(t, "Opened general", m.Status())
	require.NotContains(t, ansi.Strip(m.View()), "✕")

	t0 := time.Now()
	m = send(t, m, core.LayoutMsg{ID: "general", Time: t0})
	require.Contains(t, ansi.Strip(m.View()), "✕")
	m = send(t, m, core.FrameMsg{ID: "general", Time: t0.Add(time.Second)})
	require.Equal(t, core.Expanded, general.State())
	m = send(t, m, core.FrameMsg{ID: "general", Time: t0.Add(2 * time.Second)})
	require.Contains(t, ansi.Strip(m.View()), "ONLINE")
	require.Contains(t, ansi.Strip(m.View()), "esc close")

	// tab is swallowed by the open overlay
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, general.Shown())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, core.CollapsingViaAnimation, general.State())
	m = send(t, m, core.FrameMsg{ID: "general", Time: time.Now().Add(time.Second)})
	require.False(t, general.Shown())

	m = send(t, m, core.DismissedMsg{ID: "general"})
	require.Equal(t, "Closed general", m.Status())
}

func TestTabMovesFocus(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.Popouts()[0].Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.Popouts()[0].Focused())
	require.True(t, m.Popouts()[1].Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, m.Popouts()[0].Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, m.Popouts()[1].Focused())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Popouts()[1].Shown())
	require.False(t, m.Popouts()[0].Shown())
}

func TestClickOpensCompose(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 20, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Popouts()[1].Shown())
	require.False(t, m.Popouts()[0].Shown())
	require.Equal(t, "Opened compose", m.Status())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, next.(Model).View())
}
