package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

type JumpTargetSelectedMsg struct {
	Key string
}

func (m *Model) activateJumpPicker() tea.Cmd {
	tab := m.ActiveTab()
	provider, ok := tab.(JumpTargetProvider)
	if !ok {
		m.SetStatus("No jump targets on this tab")
		return nil
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("No jump targets on this tab")
		return nil
	}
	if m.OpenJumpPickerModal == nil {
		m.SetStatus("Jump picker unavailable")
		return nil
	}
	m.screens.Push(m.OpenJumpPickerModal(m, targets))
	m.SetStatus("Jump: press a pane key")
	return nil
}

// NormalizeJumpKey lower-cases k and returns "" unless it is a single letter
// or digit.
func NormalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	r := []rune(k)
	if len(r) != 1 || !(unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) {
		return ""
	}
	return k
}
