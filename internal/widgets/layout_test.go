package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
	if idx := strings.Index(lines[0], "B"); idx != 16 {
		t.Fatalf("B at column %d, want 16", idx)
	}
}

func TestHStackTreatsNonPositiveRatioAsOne(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0, 1}}
	line := h.Render(20, 1)
	if idx := strings.Index(line, "B"); idx != 10 {
		t.Fatalf("B at column %d, want 10", idx)
	}
}

func TestVStackFixedAndFlexibleHeights(t *testing.T) {
	v := VStack{
		Widgets: []Widget{Text("head"), Text("body"), Text("foot")},
		Heights: []int{1, 0, 2},
	}
	out := v.Render(10, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "head") || !strings.HasPrefix(lines[1], "body") || !strings.HasPrefix(lines[6], "foot") {
		t.Fatalf("unexpected layout:\n%s", out)
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
}

func TestPaneFillsBox(t *testing.T) {
	out := Pane{Title: "Recent Activity", Content: "one\ntwo\nthree\nfour"}.Render(20, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("line %d width %d, want 20", i, w)
		}
	}
	if !strings.Contains(out, "Recent Activity") || strings.Contains(out, "three") {
		t.Fatalf("unexpected pane:\n%s", out)
	}
}

func TestCardShowsStat(t *testing.T) {
	out := Card{Label: "Tasks", Value: "56", Change: "-3% from last month", Icon: "T"}.Render(30, 5)
	plain := ansi.Strip(out)
	for _, want := range []string{"Tasks", "56", "-3% from last month", "T"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("card missing %q:\n%s", want, plain)
		}
	}
}

func TestMeterClampsPercent(t *testing.T) {
	out := ansi.Strip(Meter{Label: "CPU Usage", Percent: 140}.Render(20, 2))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.HasSuffix(lines[0], "100%") {
		t.Fatalf("unexpected meter:\n%s", out)
	}
	if strings.Count(lines[1], "█") != 20 {
		t.Fatalf("expected a full bar, got %q", lines[1])
	}

	half := ansi.Strip(Meter{Label: "Memory", Percent: 50}.Render(10, 2))
	if strings.Count(half, "█") != 5 {
		t.Fatalf("expected half bar, got %q", half)
	}
}
