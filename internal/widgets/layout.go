package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Heights fixes a widget's row count; a
// zero (or missing) entry shares the rows left over after the fixed ones.
type VStack struct {
	Widgets []Widget
	Heights []int
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := v.split(height)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		part := strings.Split(w.Render(width, heights[i]), "\n")
		for len(part) < heights[i] {
			part = append(part, "")
		}
		lines = append(lines, part[:heights[i]]...)
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (v VStack) split(height int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	remaining := height - max(0, v.Spacing*(n-1))
	flexible := 0
	for i := range out {
		if i < len(v.Heights) && v.Heights[i] > 0 {
			out[i] = min(v.Heights[i], max(0, remaining))
			remaining -= out[i]
			continue
		}
		flexible++
	}
	if flexible == 0 || remaining <= 0 {
		return out
	}
	shares := splitWidths(remaining, flexible, nil)
	k := 0
	for i := range out {
		if i < len(v.Heights) && v.Heights[i] > 0 {
			continue
		}
		out[i] = shares[k]
		k++
	}
	return out
}

// HStack places widgets side by side, splitting the width by Ratios (equal
// shares when Ratios does not match the widget count).
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		weights[i] = r
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((weights[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
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
