package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskdash/internal/dashboard"
	"github.com/jask/jaskdash/internal/widgets"
)

const (
	statsHeight  = 5
	bottomHeight = 7
	panelHeight  = 5
)

func renderHeader(title, subtitle string, width int) string {
	left := headerTitleStyle.Render(title)
	button := addButtonStyle.Render("a  + Add Tab")
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(button))
	top := renderHeaderLine(left+strings.Repeat(" ", gap)+button, width)
	sub := renderHeaderLine(headerSubtitleStyle.Render(subtitle), width)
	return top + "\n" + sub
}

func renderHeaderLine(line string, width int) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return headerBarStyle.Width(width).MaxWidth(width).Render(line)
}

func statsRow(stats []dashboard.StatCard) widgets.Widget {
	cards := make([]widgets.Widget, 0, len(stats))
	for _, s := range stats {
		cards = append(cards, widgets.Card{Label: s.Name, Value: s.Value, Change: s.Change, Icon: s.Icon})
	}
	return widgets.HStack{Widgets: cards, Gap: 1}
}

// renderTabStrip draws one header per tab, the active one highlighted, with
// trailing (the add button or the open form) right-aligned. When the headers
// overflow, the strip scrolls so the active header stays visible.
func renderTabStrip(tabs []dashboard.Tab, active, trailing string, width int) string {
	headers := make([]string, 0, len(tabs))
	activeIdx := -1
	for i, t := range tabs {
		label := t.Title + " ×"
		if t.ID == active {
			activeIdx = i
			headers = append(headers, activeTabStyle.Render(label))
		} else {
			headers = append(headers, inactiveTabStyle.Render(label))
		}
	}
	room := max(0, width-ansi.StringWidth(trailing)-1)
	start := firstVisibleTab(headers, activeIdx, room)
	strip := strings.Join(headers[start:], " ")
	if start > 0 {
		strip = scrollMarker + strip
	}
	strip = ansi.Truncate(strip, room, "…")
	gap := max(1, width-ansi.StringWidth(strip)-ansi.StringWidth(trailing))
	return strip + strings.Repeat(" ", gap) + trailing
}

const scrollMarker = "‹ "

// firstVisibleTab returns the first header to draw so that the header at
// active ends within room.
func firstVisibleTab(headers []string, active, room int) int {
	if active <= 0 {
		return 0
	}
	for start := 0; start < active; start++ {
		w := 0
		if start > 0 {
			w = ansi.StringWidth(scrollMarker)
		}
		for i := start; i <= active; i++ {
			w += ansi.StringWidth(headers[i])
			if i > start {
				w++
			}
		}
		if w <= room {
			return start
		}
	}
	return active
}

// RenderContent draws the content panel for the active tab: its title, its
// content and two informational panels. With no matching tab it draws the
// empty state.
func RenderContent(tabs []dashboard.Tab, active string, width int) string {
	if width <= 0 {
		return ""
	}
	var tab *dashboard.Tab
	for i := range tabs {
		if tabs[i].ID == active {
			tab = &tabs[i]
			break
		}
	}
	if tab == nil || active == "" {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, emptyStyle.Render(dashboard.EmptyContent))
	}
	body := contentBodyStyle.Width(width).Render(tab.Content)
	panels := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: "Recent Activity", Content: bullets(dashboard.TabRecentActivity)},
			widgets.Pane{Title: "Quick Actions", Content: bullets(dashboard.TabQuickActions)},
		},
		Gap: 2,
	}.Render(width, panelHeight)
	return strings.Join([]string{
		contentTitleStyle.Render(ansi.Truncate(tab.Title, width, "…")),
		"",
		body,
		"",
		panels,
	}, "\n")
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it
	}
	return strings.Join(lines, "\n")
}

func tabsPanel(tabs []dashboard.Tab, active, trailing string) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		inner := max(1, width-4)
		sep := lipgloss.NewStyle().Foreground(colorBorder).Render(strings.Repeat("─", inner))
		content := strings.Join([]string{
			renderTabStrip(tabs, active, trailing, inner),
			sep,
			RenderContent(tabs, active, inner),
		}, "\n")
		return widgets.Pane{Title: "Tabs", Content: content, Highlight: active != ""}.Render(width, height)
	})
}

func bottomRow() widgets.Widget {
	feed := make([]string, 0, len(dashboard.ActivityFeed))
	for _, a := range dashboard.ActivityFeed {
		feed = append(feed, bulletStyle.Render("●")+" "+a.Label+"  "+whenStyle.Render(a.When))
	}
	meters := widgets.VStack{Spacing: 1}
	for i, m := range dashboard.PerformanceMetrics {
		color := colorSuccess
		if i%2 == 1 {
			color = colorWarn
		}
		meters.Widgets = append(meters.Widgets, widgets.Meter{Label: m.Name, Percent: m.Percent, Color: color})
		meters.Heights = append(meters.Heights, 2)
	}
	metrics := widgets.Func(func(width, height int) string {
		content := meters.Render(max(1, width-4), max(1, height-2))
		return widgets.Pane{Title: "Performance Metrics", Content: content}.Render(width, height)
	})
	// activity lines carry a timestamp, so that side gets the larger share
	return widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: "Recent Activity", Content: strings.Join(feed, "\n")},
			metrics,
		},
		Ratios: []float64{3, 2},
		Gap:    1,
	}
}
