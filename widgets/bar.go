package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderHeaderBar(width int, title string) string {
	return renderBar(headerBarStyle, width, " "+title)
}

func RenderStatusBar(width int, msg string) string {
	if strings.TrimSpace(msg) == "" {
		msg = "Ready"
	}
	return renderBar(statusStyle, width, " "+msg)
}

// RenderHelp renders a one-line footer of key hints.
func RenderHelp(width int, bindings []key.Binding) string {
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+helpDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = helpDescStyle.Render("No shortcuts")
	}
	return renderBar(headerBarStyle, width, space+line)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	if width <= 0 {
		return ""
	}
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
