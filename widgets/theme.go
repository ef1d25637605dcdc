package widgets

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#6c7086"
	colorBorder   lipgloss.Color = "#585b70"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorTint     lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorIndigo   lipgloss.Color = "#7287fd"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	CaptionStyle = lipgloss.NewStyle().Foreground(colorMuted)
	AccentStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	// BarStyle is the indigo fill used by full-width action bars.
	BarStyle = lipgloss.NewStyle().Background(colorIndigo).Foreground(colorBase).Bold(true)

	headerBarStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText)
	statusStyle    = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorSuccess)
	keyStyle       = lipgloss.NewStyle().Background(colorMantle).Foreground(colorAccent).Bold(true)
	helpDescStyle  = lipgloss.NewStyle().Background(colorMantle).Foreground(colorMuted)
)
