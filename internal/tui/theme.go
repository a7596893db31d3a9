package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorPurple   lipgloss.Color = "#cba6f7"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorWarn     lipgloss.Color = "#f9e2af"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerTitleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	headerSubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	headerBarStyle      = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorText)
	addButtonStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorPurple).
			Foreground(colorMantle).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorSurface0).
				Foreground(colorTabOff).
				Padding(0, 1)

	contentTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	contentBodyStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	emptyStyle        = lipgloss.NewStyle().Foreground(colorTabOff)
	bulletStyle       = lipgloss.NewStyle().Foreground(colorSuccess)
	whenStyle         = lipgloss.NewStyle().Foreground(colorTabOff)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
