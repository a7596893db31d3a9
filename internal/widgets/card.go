package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is a stat card: a muted label, a bold value and a change line, with an
// icon pinned to the right of the label.
type Card struct {
	Label  string
	Value  string
	Change string
	Icon   string
}

var (
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	cardUpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	cardDownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

func (c Card) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(1, width-4)
	label := c.Label
	if c.Icon != "" {
		gap := inner - ansi.StringWidth(c.Label) - ansi.StringWidth(c.Icon)
		if gap >= 1 {
			label = c.Label + strings.Repeat(" ", gap) + c.Icon
		}
	}
	change := cardUpStyle.Render(c.Change)
	if strings.HasPrefix(strings.TrimSpace(c.Change), "-") {
		change = cardDownStyle.Render(c.Change)
	}
	content := strings.Join([]string{
		cardLabelStyle.Render(label),
		cardValueStyle.Render(c.Value),
		change,
	}, "\n")
	return Pane{Content: content}.Render(width, height)
}
