package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg advances the animations of the popout with the given ID.
type FrameMsg struct {
	ID   string
	Time time.Time
}

// LayoutMsg is the first layout pass of a freshly mounted overlay.
type LayoutMsg struct {
	ID   string
	Time time.Time
}

// GeometryMsg reports the measured global frame of a popout header.
type GeometryMsg struct {
	ID   string
	Rect Rect
}

// SafeAreaMsg reports the insets of the presenting surface. It applies to
// every popout.
type SafeAreaMsg struct {
	Insets Insets
}

// ToggleMsg asks the popout with the given ID to toggle.
type ToggleMsg struct {
	ID string
}

// DismissedMsg is emitted once the overlay has been unmounted.
type DismissedMsg struct {
	ID string
}

func FrameCmd(id string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

func LayoutCmd(id string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return LayoutMsg{ID: id, Time: t}
	})
}

func DismissedCmd(id string) tea.Cmd {
	return func() tea.Msg { return DismissedMsg{ID: id} }
}
