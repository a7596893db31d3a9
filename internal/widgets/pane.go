package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane colors.
var (
	ColorBorder    lipgloss.Color = "#585b70"
	ColorHighlight lipgloss.Color = "#89b4fa"
	ColorText      lipgloss.Color = "#cdd6f4"
)

// Pane draws rounded chrome with the title set into the top border. Content
// lines are clipped to the inner box; the pane fills the height it is given.
type Pane struct {
	Title     string
	Content   string
	Highlight bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	h := max(height, 3)
	width = max(width, 4)

	border := ColorBorder
	if p.Highlight {
		border = ColorHighlight
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	top := borderStyle.Render("╭") + titleBar(p.Title, innerWidth, borderStyle, titleStyle) + borderStyle.Render("╮")

	v := borderStyle.Render("│")
	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func titleBar(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return borderStyle.Render(strings.Repeat("─", innerWidth))
	}
	text := " " + title + " "
	if ansi.StringWidth(text) > innerWidth {
		text = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(text))
	left := min(1, dashes)
	return borderStyle.Render(strings.Repeat("─", left)) +
		titleStyle.Render(text) +
		borderStyle.Render(strings.Repeat("─", dashes-left))
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
