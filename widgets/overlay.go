package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayAt composites overlay on top of base with its top-left corner at
// cell (x, y). Overlay cells left of column 0 or above row 0 are clipped.
func OverlayAt(base, overlay string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		line = padRightANSI(line, overlayWidth)
		col := x
		if col < 0 {
			line = dropColumns(line, -col)
			col = 0
		}
		if col >= width {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, col, "")
		segment := ansi.Truncate(line, width-col, "")
		pos := col + ansi.StringWidth(segment)
		right := dropColumns(target, pos)
		baseLines[row] = padRightANSI(left+segment+right, width)
	}
	return strings.Join(baseLines, "\n")
}

// Dim renders s as a faint, colorless canvas of the given size. It stands
// in for the translucent scrim behind the expanded card.
func Dim(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(ansi.Strip(s), height)
	for i := range lines {
		lines[i] = scrimStyle.Render(padRightANSI(lines[i], width))
	}
	return strings.Join(lines, "\n")
}

// FitCanvas pads or clips s to exactly width x height cells.
func FitCanvas(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

var scrimStyle = lipgloss.NewStyle().Faint(true).Foreground(colorMuted)
