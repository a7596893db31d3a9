package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Meter is a labelled percentage bar over two lines.
type Meter struct {
	Label   string
	Percent int
	Color   lipgloss.Color
}

var meterTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))

func (m Meter) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	pct := min(100, max(0, m.Percent))
	value := fmt.Sprintf("%d%%", pct)
	gap := max(1, width-ansi.StringWidth(m.Label)-ansi.StringWidth(value))
	head := padRight(m.Label+strings.Repeat(" ", gap)+value, width)
	if height == 1 {
		return head
	}
	filled := pct * width / 100
	color := m.Color
	if color == "" {
		color = ColorHighlight
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		meterTrackStyle.Render(strings.Repeat("░", width-filled))
	return head + "\n" + bar
}
