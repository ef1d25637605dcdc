package core

import "fmt"

// State is the phase of one expand/collapse cycle.
//
//	Collapsed ─► Expanding ─► Expanded ─┬─► CollapsingViaAnimation ─┬─► Collapsed
//	                                    └─► CollapsingViaGesture ───┘
//
// A drag that snaps back never leaves Expanded.
type State int

const (
	Collapsed State = iota
	Expanding
	Expanded
	CollapsingViaAnimation
	CollapsingViaGesture
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case CollapsingViaAnimation:
		return "collapsing-animation"
	case CollapsingViaGesture:
		return "collapsing-gesture"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Collapsing reports whether s is either collapse phase.
func (s State) Collapsing() bool {
	return s == CollapsingViaAnimation || s == CollapsingViaGesture
}

// Layer is the background fill behind the card.
type Layer int

const (
	// LayerTint is the translucent fill of the compact header.
	LayerTint Layer = iota
	// LayerSurface is the opaque fill of the expanded card.
	LayerSurface
)
