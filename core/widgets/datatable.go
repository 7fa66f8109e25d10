package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskui/core/tabular"
)

const (
	glyphSortable   = "⇅"
	glyphAscending  = "▲"
	glyphDescending = "▼"
	checkboxWidth   = 3
	columnGap       = "  "
)

// DataTable draws one frame of a tabular view. It holds no state; the
// caller passes the derived headers, rows and footer for the current mode.
type DataTable struct {
	Headers      []tabular.Header
	Rows         []tabular.Row
	Mode         tabular.Mode
	Selectable   bool
	Master       tabular.CheckState
	Footer       string
	EmptyMessage string
	EmptyHint    string
	ActionLabel  string
	// HeaderCursor and RowCursor are -1 when no cursor is drawn.
	HeaderCursor int
	RowCursor    int
	Top          int
}

// TableBodyRows is how many data rows fit in a table of the given height
// after the header, rule and footer lines.
func TableBodyRows(height int) int {
	return max(1, height-3)
}

func Checkbox(state tabular.CheckState) string {
	switch state {
	case tabular.Checked:
		return "[x]"
	case tabular.Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

func SortGlyph(h tabular.Header) string {
	if !h.Sortable {
		return ""
	}
	switch h.Direction {
	case tabular.DirectionAscending:
		return glyphAscending
	case tabular.DirectionDescending:
		return glyphDescending
	default:
		return glyphSortable
	}
}

func headerLabel(h tabular.Header) string {
	if g := SortGlyph(h); g != "" {
		return h.Title + " " + g
	}
	return h.Title
}

func (t DataTable) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	widths := t.columnWidths(width)
	lines := make([]string, 0, height)
	lines = append(lines, t.renderHeader(widths, width))
	lines = append(lines, lipgloss.NewStyle().Foreground(paletteBorder).Render(strings.Repeat("─", width)))

	switch t.Mode {
	case tabular.ModeLoading:
		lines = append(lines, t.renderSkeleton(widths, width)...)
	case tabular.ModeEmpty:
		lines = append(lines, t.renderEmpty(width)...)
	default:
		lines = append(lines, t.renderRows(widths, width, TableBodyRows(height))...)
	}

	if t.Footer != "" {
		for len(lines) < height-1 {
			lines = append(lines, "")
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(paletteOverlay).Render(ansi.Truncate(t.Footer, width, "…")))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (t DataTable) leadWidth() int {
	if t.Selectable {
		return checkboxWidth + len(columnGap)
	}
	return 0
}

func (t DataTable) columnWidths(width int) []int {
	n := len(t.Headers)
	if n == 0 {
		return nil
	}
	natural := make([]int, n)
	for i, h := range t.Headers {
		natural[i] = max(3, ansi.StringWidth(headerLabel(h)))
	}
	for _, r := range t.Rows {
		for i := 0; i < n && i < len(r.Cells); i++ {
			natural[i] = max(natural[i], ansi.StringWidth(r.Cells[i]))
		}
	}
	avail := max(n, width-t.leadWidth()-len(columnGap)*(n-1))
	total := 0
	for _, w := range natural {
		total += w
	}
	if total <= avail {
		natural[n-1] += avail - total
		return natural
	}
	ratios := make([]float64, n)
	for i, w := range natural {
		ratios[i] = float64(w)
	}
	return splitWidths(avail, n, ratios)
}

func (t DataTable) renderHeader(widths []int, width int) string {
	base := lipgloss.NewStyle().Foreground(paletteSubtext).Bold(true)
	parts := make([]string, 0, len(t.Headers)+1)
	if t.Selectable {
		parts = append(parts, base.Render(Checkbox(t.Master)))
	}
	for i, h := range t.Headers {
		style := base
		if h.Sortable && h.Direction != tabular.DirectionNone {
			style = style.Foreground(paletteAccent)
		}
		if i == t.HeaderCursor {
			style = style.Underline(true).Foreground(paletteYellow)
		}
		parts = append(parts, style.Render(padRight(headerLabel(h), widths[i])))
	}
	return ansi.Truncate(strings.Join(parts, columnGap), width, "")
}

func (t DataTable) renderRows(widths []int, width, visible int) []string {
	end := min(len(t.Rows), t.Top+visible)
	out := make([]string, 0, visible)
	for i := max(0, t.Top); i < end; i++ {
		row := t.Rows[i]
		bg, strong := rowStateBackgroundAndCursor(row.Selected, i == t.RowCursor)
		cell := lipgloss.NewStyle().Background(bg).Bold(strong)
		gap := cell.Render(columnGap)
		parts := make([]string, 0, len(widths)+1)
		if t.Selectable {
			box := tabular.Unchecked
			if row.Selected {
				box = tabular.Checked
			}
			parts = append(parts, cell.Foreground(paletteMauve).Render(Checkbox(box)))
		}
		for c, w := range widths {
			text := ""
			if c < len(row.Cells) {
				text = row.Cells[c]
			}
			parts = append(parts, cell.Render(padRight(text, w)))
		}
		line := ansi.Truncate(strings.Join(parts, gap), width, "")
		line += cell.Render(strings.Repeat(" ", max(0, width-ansi.StringWidth(line))))
		out = append(out, line)
	}
	return out
}

// renderSkeleton draws exactly tabular.SkeletonRows placeholder rows. Bar
// widths vary by position but not between frames.
func (t DataTable) renderSkeleton(widths []int, width int) []string {
	bar := lipgloss.NewStyle().Foreground(paletteSurface1)
	out := make([]string, 0, tabular.SkeletonRows)
	for r := 0; r < tabular.SkeletonRows; r++ {
		parts := make([]string, 0, len(widths)+1)
		if t.Selectable {
			parts = append(parts, bar.Render(Checkbox(tabular.Unchecked)))
		}
		for c, w := range widths {
			pct := 45 + ((r*7+c*13)%5)*10
			n := max(1, min(w, w*pct/100))
			parts = append(parts, bar.Render(strings.Repeat("░", n))+strings.Repeat(" ", w-n))
		}
		out = append(out, ansi.Truncate(strings.Join(parts, columnGap), width, ""))
	}
	return out
}

func (t DataTable) renderEmpty(width int) []string {
	msg := t.EmptyMessage
	if msg == "" {
		msg = tabular.DefaultEmptyMessage
	}
	hint := t.EmptyHint
	if hint == "" {
		hint = tabular.EmptyHint
	}
	center := func(s string, style lipgloss.Style) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(ansi.Truncate(s, width, "…")))
	}
	out := []string{
		"",
		center("∅", lipgloss.NewStyle().Foreground(paletteOverlay)),
		center(msg, lipgloss.NewStyle().Foreground(paletteText).Bold(true)),
		center(hint, lipgloss.NewStyle().Foreground(paletteSubtext)),
	}
	if t.ActionLabel != "" {
		action := lipgloss.NewStyle().Foreground(paletteAccent).Bold(true).Render("[ "+t.ActionLabel+" ]") +
			lipgloss.NewStyle().Foreground(paletteOverlay).Render(" enter")
		out = append(out, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, action))
	}
	return out
}

func rowStateBackgroundAndCursor(selected, isCursor bool) (lipgloss.Color, bool) {
	switch {
	case isCursor && selected:
		return paletteAccent, true
	case isCursor:
		return paletteBorder, true
	case selected:
		return paletteSurface0, false
	default:
		return "", false
	}
}

// ClampWindow keeps cursor inside [0,total) and the window [top, top+visible)
// around it.
func ClampWindow(cursor, top, total, visible int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	cursor = min(max(cursor, 0), total-1)
	top = min(max(top, 0), max(0, total-visible))
	if cursor < top {
		top = cursor
	}
	if cursor >= top+visible {
		top = cursor - visible + 1
	}
	return cursor, top
}

func moveBoundedCursor(cursor, size, delta int) int {
	if size <= 0 {
		return 0
	}
	return min(max(cursor+delta, 0), size-1)
}
