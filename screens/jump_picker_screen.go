package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core"
)

// JumpPickerScreen lists the pane jump keys of the active tab. Pressing a
// listed key jumps immediately; other keys filter.
type JumpPickerScreen struct {
	targets map[string]core.JumpTarget
	picker  *core.Picker
}

func NewJumpPickerScreen(targets []core.JumpTarget) *JumpPickerScreen {
	items := make([]core.PickerItem, 0, len(targets))
	byKey := make(map[string]core.JumpTarget, len(targets))
	for _, target := range targets {
		key := core.NormalizeJumpKey(target.Key)
		if key == "" {
			continue
		}
		target.Key = key
		byKey[key] = target
		items = append(items, core.PickerItem{
			ID:     key,
			Label:  fmt.Sprintf("[%s] %s", key, target.Label),
			Search: key + " " + target.Label,
		})
	}
	return &JumpPickerScreen{targets: byKey, picker: core.NewPicker("Jump Picker", items)}
}

func (s *JumpPickerScreen) Title() string { return "Jump Picker" }
func (s *JumpPickerScreen) Scope() string { return "screen:jump-picker" }

func (s *JumpPickerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := keyMsg.String()
	if target, found := s.targets[core.NormalizeJumpKey(keyName)]; found {
		return s, selectJump(target.Key), true
	}
	result := s.picker.HandleKey(keyName)
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, selectJump(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func selectJump(key string) tea.Cmd {
	return func() tea.Msg { return core.JumpTargetSelectedMsg{Key: key} }
}

func (s *JumpPickerScreen) View(width, height int) string {
	items := s.picker.Items()
	lines := make([]string, 0, len(items)+2)
	if len(items) == 0 {
		lines = append(lines, metaStyle.Render("  No jump targets"))
	}
	for i, item := range items {
		if i == s.picker.Cursor() {
			lines = append(lines, cursorStyle.Render("› "+item.Label))
			continue
		}
		lines = append(lines, "  "+item.Label)
	}
	lines = append(lines, "", hintStyle.Render("Press a pane key to jump. Esc cancels."))
	view := strings.Join(lines, "\n")
	return core.ClipHeight(core.TrimToWidth(view, max(20, width)), max(4, height))
}
