package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskui/core/field"
)

const (
	GlyphClear  = "✕"
	GlyphShow   = "◉"
	GlyphHide   = "◎"
	GlyphSearch = "⌕"
	GlyphError  = "⚠"
)

// InputField draws a labeled single-line input frame. Input is the already
// rendered value line; Trailing holds the right-aligned affordances (busy
// spinner, clear and reveal markers).
type InputField struct {
	Label       string
	Input       string
	Leading     string
	Trailing    []string
	Variant     field.Variant
	Size        field.Size
	Invalid     bool
	Disabled    bool
	Focused     bool
	Message     string
	MessageKind field.MessageKind
}

func sizePadding(size field.Size) (vertical, horizontal int) {
	switch size {
	case field.SizeSmall:
		return 0, 0
	case field.SizeLarge:
		return 1, 2
	default:
		return 0, 1
	}
}

func (f InputField) borderColor() lipgloss.Color {
	switch {
	case f.Disabled:
		return paletteSurface1
	case f.Invalid:
		return paletteRed
	case f.Focused:
		return paletteAccent
	default:
		return paletteBorder
	}
}

// FieldHeight is the number of lines Render produces for the given size and
// variant, including the label and message lines.
func FieldHeight(size field.Size, variant field.Variant) int {
	v, _ := sizePadding(size)
	h := 1 + 2*v
	if variant == field.VariantGhost {
		h++
	} else {
		h += 2
	}
	return h + 2
}

func (f InputField) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	labelStyle := lipgloss.NewStyle().Foreground(paletteText).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(paletteText)
	if f.Disabled {
		labelStyle = labelStyle.Foreground(paletteOverlay)
		textStyle = textStyle.Foreground(paletteOverlay)
	}

	lines := make([]string, 0, 6)
	if f.Label != "" {
		lines = append(lines, labelStyle.Render(ansi.Truncate(f.Label, width, "…")))
	}

	vpad, hpad := sizePadding(f.Size)
	box := lipgloss.NewStyle().Padding(vpad, hpad)
	inner := width - 2*hpad
	switch f.Variant {
	case field.VariantOutlined:
		box = box.Border(lipgloss.NormalBorder()).BorderForeground(f.borderColor())
		inner -= 2
	case field.VariantGhost:
		if f.Focused || f.Invalid {
			box = box.Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(f.borderColor())
		}
	default:
		box = box.Border(lipgloss.RoundedBorder()).BorderForeground(f.borderColor())
		if !f.Disabled {
			box = box.Background(paletteSurface0)
			textStyle = textStyle.Background(paletteSurface0)
		}
		inner -= 2
	}
	inner = max(1, inner)
	box = box.Width(inner + 2*hpad)

	lead := ""
	if f.Leading != "" {
		lead = f.Leading + " "
	}
	trail := ""
	if len(f.Trailing) > 0 {
		trail = " " + strings.Join(f.Trailing, " ")
	}
	valueWidth := max(1, inner-ansi.StringWidth(lead)-ansi.StringWidth(trail))
	row := textStyle.Render(lead) + padRight(f.Input, valueWidth) + textStyle.Render(trail)
	lines = append(lines, strings.Split(box.Render(row), "\n")...)

	switch f.MessageKind {
	case field.MessageError:
		lines = append(lines, lipgloss.NewStyle().Foreground(paletteRed).Render(ansi.Truncate(GlyphError+" "+f.Message, width, "…")))
	case field.MessageHelper:
		lines = append(lines, lipgloss.NewStyle().Foreground(paletteSubtext).Render(ansi.Truncate(f.Message, width, "…")))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
