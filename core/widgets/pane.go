package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws the rounded frame shared by every pane: title in the top
// border, optional badge right-aligned beside it, selection and focus
// markers.
type Pane struct {
	Title    string
	Badge    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

// ContentWidth is the usable text width inside a pane of the given outer
// width.
func ContentWidth(width int) int {
	return max(1, width-4)
}

// ContentHeight is the usable line count inside a pane of the given outer
// height.
func ContentHeight(height int) int {
	return max(1, height-2)
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if h <= 0 || (height > 0 && h > height) {
		h = height
	}
	h = max(3, h)
	width = max(4, width)

	border := paletteOverlay
	if p.Selected {
		border = paletteAccent
	}
	if p.Focused {
		border = paletteGreen
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paletteText).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(paletteSubtext)

	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	badgeText := ""
	if p.Badge != "" {
		badgeText = " " + p.Badge + " "
		if ansi.StringWidth(titleText)+ansi.StringWidth(badgeText)+2 > innerWidth {
			badgeText = ""
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText)-ansi.StringWidth(badgeText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash
	if badgeText != "" && rightDash > 0 {
		rightDash--
	}

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		badgeStyle.Render(badgeText)
	if badgeText != "" && dashes > leftDash {
		top += borderStyle.Render("─")
	}
	top += borderStyle.Render("╮")

	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, innerHeight+2)
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

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
