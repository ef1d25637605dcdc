package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/popoutview/popout"
	"github.com/jask/popoutview/widgets"
)

type member struct {
	name   string
	online bool
}

var channelMembers = []member{
	{"ada", true}, {"grace", true}, {"linus", true}, {"ken", true},
	{"barbara", false}, {"dennis", false}, {"margaret", false}, {"edsger", false},
}

// channelHeader is the "# general" nav header. Expanded, the hash moves
// inline with the name.
func channelHeader(expanded bool, width int) string {
	online := 0
	for _, m := range channelMembers {
		if m.online {
			online++
		}
	}
	caption := fmt.Sprintf("%d Members - %d Online", 36, online)
	if expanded {
		title := widgets.TitleStyle.Render("#general")
		return ansi.Truncate(title, width, "…") + "\n" + ansi.Truncate(widgets.CaptionStyle.Render(caption), width, "…")
	}
	title := widgets.AccentStyle.Render("#") + " " + widgets.TitleStyle.Render("general")
	return center(title, width) + "\n" + center(widgets.CaptionStyle.Render(caption), width)
}

func channelContent(_ bool, width, height int) string {
	lines := []string{widgets.CaptionStyle.Render("ONLINE")}
	for _, m := range channelMembers {
		if m.online {
			lines = append(lines, widgets.AccentStyle.Render("●")+" "+m.name)
		}
	}
	lines = append(lines, "", widgets.CaptionStyle.Render("OFFLINE"))
	for _, m := range channelMembers {
		if !m.online {
			lines = append(lines, widgets.CaptionStyle.Render("○ "+m.name))
		}
	}
	lines = append(lines, "", widgets.CaptionStyle.Render("Drag up past half the screen, tap outside, or press esc to close."))
	return clip(lines, width, height)
}

// composeHeader is the full-width "+" bar. Expanded, the glyph moves to
// the trailing edge.
func composeHeader(expanded bool, width int) string {
	if expanded {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, widgets.AccentStyle.Render("+"))
	}
	return widgets.BarStyle.Width(width).Align(lipgloss.Center).Render("+")
}

func composeContent(_ bool, width, height int) string {
	lines := []string{
		widgets.TitleStyle.Render("New conversation"),
		"",
		widgets.CaptionStyle.Render("Start a thread, invite people, or share a file."),
	}
	return clip(lines, width, height)
}

type demoCase struct {
	name    string
	header  popout.HeaderFunc
	content popout.ContentFunc
}

func demoCases() []demoCase {
	return []demoCase{
		{name: "general", header: channelHeader, content: channelContent},
		{name: "compose", header: composeHeader, content: composeContent},
	}
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, ansi.Truncate(s, width, "…"))
}

func clip(lines []string, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}
