package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskui/core"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestJumpPickerSelectsByKey(t *testing.T) {
	s := NewJumpPickerScreen([]core.JumpTarget{
		{Key: "U", Label: "Users"},
		{Key: "s", Label: "Selection"},
		{Key: "??", Label: "Broken"},
	})
	_, cmd, pop := s.Update(key("u"))
	require.True(t, pop)
	require.NotNil(t, cmd)
	assert.Equal(t, core.JumpTargetSelectedMsg{Key: "u"}, cmd())
	assert.NotContains(t, s.View(60, 10), "Broken")
}

func TestJumpPickerEscCancels(t *testing.T) {
	s := NewJumpPickerScreen([]core.JumpTarget{{Key: "u", Label: "Users"}})
	_, cmd, pop := s.Update(key("esc"))
	assert.True(t, pop)
	assert.Nil(t, cmd)
}

func TestPickerModalFiltersAndSelects(t *testing.T) {
	var picked core.PickerItem
	s := NewPickerModal("Sort by", "screen:picker", []core.PickerItem{
		{ID: "name", Label: "Name", Section: "Columns"},
		{ID: "email", Label: "Email", Section: "Columns"},
		{ID: "clear", Label: "Clear sort", Section: "Actions"},
	}, func(it core.PickerItem) tea.Msg {
		picked = it
		return nil
	})
	for _, r := range "em" {
		_, _, pop := s.Update(key(string(r)))
		require.False(t, pop)
	}
	view := s.View(60, 12)
	assert.Contains(t, view, "Email")
	assert.NotContains(t, view, "Clear sort")

	_, cmd, pop := s.Update(key("enter"))
	require.True(t, pop)
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, "email", picked.ID)
}

func TestPickerModalShowsSections(t *testing.T) {
	s := NewPickerModal("Sort by", "screen:picker", []core.PickerItem{
		{ID: "name", Label: "Name", Section: "Columns"},
		{ID: "clear", Label: "Clear sort", Section: "Actions"},
	}, nil)
	view := s.View(60, 12)
	assert.Contains(t, view, "Columns")
	assert.Contains(t, view, "Actions")
	_, cmd, pop := s.Update(key("enter"))
	assert.True(t, pop)
	assert.Nil(t, cmd)
}

func TestCommandScreenSearchesAndExecutes(t *testing.T) {
	all := []CommandOption{
		{ID: "reload", Name: "Reload records"},
		{ID: "export-csv", Name: "Export CSV", Disabled: true, Reason: "Nothing to export"},
	}
	var queries []string
	search := func(q string) []CommandOption {
		queries = append(queries, q)
		if q == "" {
			return all
		}
		return all[1:]
	}
	s := NewCommandScreen("pane:table:users", search, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
	require.Len(t, s.Options(), 2)

	_, cmd, pop := s.Update(key("enter"))
	require.True(t, pop)
	assert.Equal(t, core.CommandExecuteMsg{CommandID: "reload"}, cmd())

	s.Update(key("x"))
	assert.Equal(t, "x", s.Query())
	require.Len(t, s.Options(), 1)
	_, cmd, pop = s.Update(key("enter"))
	require.True(t, pop)
	assert.Equal(t, core.StatusMsg{Text: "Nothing to export", Code: "CMD"}, cmd())
	assert.Equal(t, []string{"", "x"}, queries)
}

func TestOptionsFromResults(t *testing.T) {
	opts := OptionsFromResults([]core.CommandResult{{CommandID: "a", Name: "A", Disabled: true, Reason: "no"}})
	require.Len(t, opts, 1)
	assert.Equal(t, "A (no)", opts[0].Title())
}
