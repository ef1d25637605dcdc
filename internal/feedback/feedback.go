// Package feedback provides the toggle feedback collaborators.
package feedback

import (
	"io"
	"strings"

	"github.com/jask/popoutview/core"
)

const bel = "\a"

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

func (b Bell) Trigger() {
	if b.W == nil {
		return
	}
	_, _ = io.WriteString(b.W, bel)
}

// Nop ignores every trigger.
type Nop struct{}

func (Nop) Trigger() {}

// ByName resolves the ui.feedback config value.
func ByName(name string, w io.Writer) core.Feedback {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bell":
		return Bell{W: w}
	default:
		return Nop{}
	}
}
