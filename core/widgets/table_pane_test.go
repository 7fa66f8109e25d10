package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core/tabular"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newUsersPane(t *testing.T) (*TablePane, []*tabular.Record, *[]string, *[][]*tabular.Record) {
	t.Helper()
	recs := tabular.Records(
		map[string]any{"name": "Bob", "role": "User"},
		map[string]any{"name": "Amy", "role": "Admin"},
		map[string]any{"name": "Cid", "role": "Editor"},
	)
	var notified [][]*tabular.Record
	v := tabular.New(tabular.Props{
		Records: recs,
		Columns: []tabular.Column{
			{Key: "name", Title: "Name", Field: "name", Sortable: true},
			{Key: "role", Title: "Role", Field: "role"},
		},
		Selectable:        true,
		OnSelectionChange: func(sel []*tabular.Record) { notified = append(notified, sel) },
	})
	var statuses []string
	p := NewTablePane("users", "Users", "pane:table:users", 'u', v, 12).
		WithStatus(func(text string) tea.Cmd {
			statuses = append(statuses, text)
			return nil
		})
	return p, recs, &statuses, &notified
}

func TestTablePaneIgnoresKeysUntilFocused(t *testing.T) {
	p, _, statuses, notified := newUsersPane(t)
	p.Update(runeKey('s'))
	p.Update(runeKey('a'))
	if p.Table().Sort().Active() || len(*notified) != 0 || len(*statuses) != 0 {
		t.Fatalf("unfocused pane must not react to keys")
	}
}

func TestTablePaneSortCycleFromKeys(t *testing.T) {
	p, _, statuses, _ := newUsersPane(t)
	p.OnFocus()
	p.Update(runeKey('s'))
	p.Update(runeKey('s'))
	p.Update(runeKey('s'))
	want := []string{"Sorted by Name (asc)", "Sorted by Name (desc)", "Sort cleared"}
	if strings.Join(*statuses, "|") != strings.Join(want, "|") {
		t.Fatalf("statuses = %q, want %q", *statuses, want)
	}

	p.Update(runeKey('l'))
	if p.HeaderCursor() != 1 {
		t.Fatalf("header cursor = %d, want 1", p.HeaderCursor())
	}
	p.Update(runeKey('s'))
	if p.Table().Sort().Active() {
		t.Fatalf("non-sortable column must not sort")
	}
	if last := (*statuses)[len(*statuses)-1]; last != "Role is not sortable" {
		t.Fatalf("last status = %q", last)
	}
}

func TestTablePaneSelectionFromKeys(t *testing.T) {
	p, recs, _, notified := newUsersPane(t)
	p.OnFocus()
	p.Update(runeKey('j'))
	p.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !p.Table().IsSelected(recs[1]) {
		t.Fatalf("space should toggle the cursor row")
	}
	if got := p.Table().MasterState(); got != tabular.Indeterminate {
		t.Fatalf("master = %v, want indeterminate", got)
	}
	p.Update(runeKey('a'))
	if got := p.Table().SelectedCount(); got != 3 {
		t.Fatalf("select all selected %d", got)
	}
	p.Update(runeKey('a'))
	if got := p.Table().SelectedCount(); got != 0 {
		t.Fatalf("second master toggle should clear, got %d", got)
	}
	if len(*notified) != 3 {
		t.Fatalf("notifications = %d, want 3", len(*notified))
	}
}

func TestTablePaneClickHeaderMovesCursor(t *testing.T) {
	p, recs, _, _ := newUsersPane(t)
	p.Update(runeKey('l'))
	p.ClickHeader("name")
	if p.HeaderCursor() != 0 {
		t.Fatalf("cursor = %d", p.HeaderCursor())
	}
	if got := p.Table().Visible()[0]; got != recs[1] {
		t.Fatalf("expected Amy first after sort")
	}
}

func TestTablePaneEnterRunsEmptyAction(t *testing.T) {
	p, recs, _, _ := newUsersPane(t)
	props := p.Table().Props()
	restored := false
	props.Records = nil
	props.EmptyAction = &tabular.Action{Label: "Add User", Run: func() {
		restored = true
		props.Records = recs
		p.SetProps(props)
	}}
	p.SetProps(props)
	p.OnFocus()
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !restored {
		t.Fatalf("enter in empty state should run the action")
	}
	if p.Table().Mode() != tabular.ModePopulated {
		t.Fatalf("mode = %v after action", p.Table().Mode())
	}
}

func TestTablePaneViewShowsBadgeAndCursor(t *testing.T) {
	p, _, _, _ := newUsersPane(t)
	p.OnFocus()
	p.Update(runeKey('s'))
	out := p.View(50, 12, true, true)
	if !strings.Contains(strings.Split(out, "\n")[0], "Name "+glyphAscending) {
		t.Fatalf("expected sort badge in title bar:\n%s", out)
	}
	if !strings.Contains(out, "Showing 1 to 3 of 3 results") {
		t.Fatalf("expected footer:\n%s", out)
	}
}
