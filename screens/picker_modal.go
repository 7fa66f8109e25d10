package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core"
)

// PickerModal is a filterable list of core.PickerItem grouped by section.
type PickerModal struct {
	title      string
	scope      string
	picker     *core.Picker
	onSelected func(core.PickerItem) tea.Msg
}

func NewPickerModal(title, scope string, items []core.PickerItem, onSelected func(core.PickerItem) tea.Msg) *PickerModal {
	return &PickerModal{
		title:      title,
		scope:      scope,
		picker:     core.NewPicker(title, items),
		onSelected: onSelected,
	}
}

func (s *PickerModal) Title() string        { return s.title }
func (s *PickerModal) Scope() string        { return s.scope }
func (s *PickerModal) Picker() *core.Picker { return s.picker }

func (s *PickerModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		if s.onSelected == nil {
			return s, nil, true
		}
		item := result.Item
		return s, func() tea.Msg { return s.onSelected(item) }, true
	default:
		return s, nil, false
	}
}

func (s *PickerModal) View(width, height int) string {
	filter := s.picker.Query()
	if filter == "" {
		filter = hintStyle.Render("type to filter")
	}
	lines := []string{"Filter: " + filter, ""}
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, metaStyle.Render("  No items"))
	}
	section := ""
	for idx, item := range items {
		if item.Section != "" && item.Section != section {
			section = item.Section
			lines = append(lines, sectionStyle.Render(section))
		}
		label := item.Label
		if item.Meta != "" {
			label += " " + metaStyle.Render(item.Meta)
		}
		if idx == s.picker.Cursor() {
			lines = append(lines, cursorStyle.Render("› ")+label)
			continue
		}
		lines = append(lines, "  "+label)
	}
	lines = append(lines, "", hintStyle.Render("Enter select. Esc cancel."))
	return core.ClipHeight(core.TrimToWidth(strings.Join(lines, "\n"), max(20, width)), max(6, height))
}
