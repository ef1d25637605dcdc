package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// roundedRadius is the corner radius from which the card is drawn with
// rounded corners instead of square ones.
const roundedRadius = 20

// Card is one frame of the popout card.
type Card struct {
	Width        int
	Height       int
	CornerRadius float64
	// Opaque selects the solid surface fill over the translucent tint.
	Opaque  bool
	Padding int
	Header  string
	Body    string
	// BodyFaint renders the body mid cross-fade.
	BodyFaint bool
}

// Bordered reports whether the card is large enough to draw a border.
func (c Card) Bordered() bool {
	return c.Width >= 4 && c.Height >= 3
}

// ContentOrigin is the offset of the first header cell from the card's
// top-left corner.
func (c Card) ContentOrigin() (x, y int) {
	if c.Bordered() {
		return 1 + c.Padding, 1
	}
	return c.Padding, 0
}

// ContentSize is the number of cells available to header and body.
func (c Card) ContentSize() (width, height int) {
	x, y := c.ContentOrigin()
	return max(0, c.Width-2*x), max(0, c.Height-2*y)
}

func (c Card) Render() string {
	if c.Width <= 0 || c.Height <= 0 {
		return ""
	}
	bg := colorTint
	if c.Opaque {
		bg = colorBase
	}
	innerW, innerH := c.ContentSize()
	lines := make([]string, 0, innerH)
	for _, line := range strings.Split(c.Header, "\n") {
		lines = append(lines, ansi.Truncate(line, innerW, ""))
	}
	if c.Body != "" {
		body := c.Body
		if c.BodyFaint {
			body = lipgloss.NewStyle().Faint(true).Render(ansi.Strip(body))
		}
		lines = append(lines, "")
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, ansi.Truncate(line, innerW, ""))
		}
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(colorText).
		Padding(0, c.Padding).
		Width(max(0, c.Width-2*boolInt(c.Bordered()))).
		Height(innerH).
		MaxHeight(innerH)
	if c.Bordered() {
		border := lipgloss.NormalBorder()
		if c.CornerRadius >= roundedRadius {
			border = lipgloss.RoundedBorder()
		}
		style = style.Border(border).BorderForeground(colorBorder).BorderBackground(bg)
		style = style.MaxHeight(c.Height)
	}
	return FitCanvas(style.Render(strings.Join(lines, "\n")), c.Width, c.Height)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
