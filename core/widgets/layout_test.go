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
	lines := strings.Split(h.Render(21, 2), "\n")
	if got := ansi.StringWidth(lines[0]); got != 21 {
		t.Fatalf("line width = %d, want 21", got)
	}
	if idx := strings.Index(lines[0], "B"); idx != 16 {
		t.Fatalf("second column starts at %d, want 16", idx)
	}
}

func TestVStackSpacingAndHeight(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 7)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
	if got := len(strings.Split(out, "\n")); got != 7 {
		t.Fatalf("line count = %d, want 7", got)
	}
}

func TestSplitWidthsDistributesRemainder(t *testing.T) {
	got := splitWidths(10, 3, nil)
	if got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("even split = %v", got)
	}
	weighted := splitWidths(10, 2, []float64{3, 1})
	if weighted[0]+weighted[1] != 10 || weighted[0] <= weighted[1] {
		t.Fatalf("weighted split = %v", weighted)
	}
}

func TestPaneRendersBadgeAtFullWidth(t *testing.T) {
	out := Pane{Title: "Users", Badge: "Name ▲", Content: "row", Height: 4}.Render(30, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Fatalf("line %d width = %d, want 30: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[0], "Users") || !strings.Contains(lines[0], "Name ▲") {
		t.Fatalf("top border missing title or badge: %q", lines[0])
	}
}
