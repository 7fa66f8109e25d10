package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskui/core/tabular"
	"github.com/jask/jaskui/internal/database/repository"
)

var (
	mutedText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	avatarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Bold(true)
	avatarBGs   = []lipgloss.Color{"#89b4fa", "#cba6f7", "#6c7086"}

	roleStyles = map[string]lipgloss.Style{
		"Admin":  lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
		"Editor": lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true),
		"Viewer": lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
	}

	statusBadges = map[string]struct {
		dot   lipgloss.Color
		label string
	}{
		"active":   {"#a6e3a1", "Active"},
		"pending":  {"#f9e2af", "Pending"},
		"inactive": {"#7f849c", "Inactive"},
	}
)

// Initials is the avatar text: the first letter of each word, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

func avatar(name string) string {
	bg := avatarBGs[len(name)%len(avatarBGs)]
	return avatarStyle.Background(bg).Render(" " + Initials(name) + " ")
}

func renderName(rec *tabular.Record, _ int) string {
	name := tabular.DisplayText(rec.Get("name"))
	out := avatar(name) + " " + name
	if u := tabular.DisplayText(rec.Get("username")); u != "" {
		out += " " + mutedText.Render("@"+u)
	}
	return out
}

// RoleBadge colors known roles; anything else renders as a viewer.
func RoleBadge(role string) string {
	style, ok := roleStyles[role]
	if !ok {
		style = roleStyles["Viewer"]
	}
	return style.Render(role)
}

// StatusBadge renders a colored dot and the label for status. Unknown
// statuses render as their raw text.
func StatusBadge(status string) string {
	badge, ok := statusBadges[status]
	if !ok {
		return status
	}
	return lipgloss.NewStyle().Foreground(badge.dot).Render("●") + " " + badge.label
}

func renderActions(rec *tabular.Record, _ int) string {
	return mutedText.Render("✎ edit  ✕ delete")
}

// UserColumns is the users table layout: Name and Email sort, the rest are
// display only.
func UserColumns() []tabular.Column {
	return []tabular.Column{
		{Key: "name", Title: "Name", Field: "name", Sortable: true, Renderer: tabular.RendererFunc(renderName)},
		{Key: "email", Title: "Email", Field: "email", Sortable: true},
		{Key: "role", Title: "Role", Field: "role", Renderer: tabular.RendererFunc(func(rec *tabular.Record, _ int) string {
			return RoleBadge(tabular.DisplayText(rec.Get("role")))
		})},
		{Key: "status", Title: "Status", Field: "status", Renderer: tabular.RendererFunc(func(rec *tabular.Record, _ int) string {
			return StatusBadge(tabular.DisplayText(rec.Get("status")))
		})},
		{Key: "actions", Title: "Actions", Renderer: tabular.RendererFunc(renderActions)},
	}
}

// UserRecords turns repository rows into table records, keeping order.
func UserRecords(users []repository.User) []*tabular.Record {
	out := make([]*tabular.Record, 0, len(users))
	for _, u := range users {
		out = append(out, tabular.NewRecord(u.Fields()))
	}
	return out
}
