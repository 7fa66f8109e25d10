package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core"
	"github.com/jask/jaskui/core/tabular"
	"github.com/jask/jaskui/core/widgets"
	"github.com/jask/jaskui/internal/database/repository"
	"github.com/jask/jaskui/internal/export"
)

const (
	usersDataKey     = "users"
	usersEmptyText   = "No users found"
	usersEmptyAction = "Add User"
	loadTimeout      = 5 * time.Second
)

// sortRequestMsg asks the table tab to reach a sort state.
type sortRequestMsg struct {
	key       string
	direction tabular.Direction
}

// TableTab is the users table demo. It owns the caller side of the table:
// the records, the loading and empty toggles and the selection readout.
type TableTab struct {
	*core.GeneratedTab
	source  UserSource
	records []*tabular.Record
	loading bool
	empty   bool
	table   *widgets.TablePane
	readout *core.StaticPane
}

func NewTableTab(source UserSource) *TableTab {
	t := &TableTab{source: source}
	specs := []core.PaneSpec{
		{ID: "users", Title: "Users", Scope: "pane:table:users", JumpKey: 'u', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			t.table = widgets.NewTablePane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, nil, 0).WithStatus(core.StatusCmd)
			return t.table
		}},
		{ID: "selection", Title: "Selection", Scope: "pane:table-info:selection", JumpKey: 's', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			t.readout = core.NewStaticPane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, spec.Focusable, "", 0)
			return t.readout
		}},
		{ID: "props", Title: "Props", Scope: "pane:table-info:props", JumpKey: 'r', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return widgets.NewTablePane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, PropsView(tableProps), 0).WithStatus(core.StatusCmd)
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("users", m),
				widgets.HStack{
					Widgets: []widgets.Widget{host.BuildPane("selection", m), host.BuildPane("props", m)},
					Ratios:  []float64{0.35, 0.65},
					Gap:     1,
				},
			},
			Ratios: []float64{0.58, 0.42},
		}
	}
	t.GeneratedTab = core.NewGeneratedTab("table", "Table", specs, layout)
	t.apply()
	return t
}

func (t *TableTab) View() *tabular.View         { return t.table.Table() }
func (t *TableTab) TablePane() *widgets.TablePane { return t.table }
func (t *TableTab) Loading() bool               { return t.loading }
func (t *TableTab) Empty() bool                 { return t.empty }
func (t *TableTab) Readout() string             { return t.readout.Text() }

func (t *TableTab) InitTab(m *core.Model) tea.Cmd {
	return tea.Batch(t.GeneratedTab.InitTab(m), t.Reload())
}

// Reload marks the table loading and fetches users from the source.
func (t *TableTab) Reload() tea.Cmd {
	t.loading = true
	t.apply()
	source := t.source
	return func() tea.Msg {
		if source == nil {
			return core.DataLoadedMsg{Key: usersDataKey, Err: fmt.Errorf("no user source")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		users, err := source.LoadUsers(ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: usersDataKey, Err: err}
		}
		return core.DataLoadedMsg{Key: usersDataKey, Data: users}
	}
}

func (t *TableTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != usersDataKey {
			return nil
		}
		t.loading = false
		if msg.Err == nil {
			users, _ := msg.Data.([]repository.User)
			t.SetUsers(users)
			slog.Debug("users loaded", "rows", len(users), "source", t.source.Describe())
			return nil
		}
		t.apply()
		slog.Error("load users", "err", msg.Err)
		return nil
	case sortRequestMsg:
		return t.SortTo(msg.key, msg.direction)
	}
	return t.GeneratedTab.Update(m, msg)
}

// SetUsers replaces the records. Selection of the old records is dropped
// with them since records compare by identity.
func (t *TableTab) SetUsers(users []repository.User) {
	t.records = UserRecords(users)
	t.apply()
	t.View().ResetSelection()
}

func (t *TableTab) ToggleLoading() {
	t.loading = !t.loading
	t.apply()
}

// ToggleEmpty hides or restores the rows. Hiding them drops the selection.
func (t *TableTab) ToggleEmpty() {
	t.empty = !t.empty
	t.apply()
	if t.empty {
		t.View().ResetSelection()
	}
}

func (t *TableTab) apply() {
	records := t.records
	if t.empty {
		records = nil
	}
	t.table.SetProps(tabular.Props{
		Records:           records,
		Columns:           UserColumns(),
		Loading:           t.loading,
		Selectable:        true,
		OnSelectionChange: t.onSelection,
		EmptyMessage:      usersEmptyText,
		EmptyAction: &tabular.Action{Label: usersEmptyAction, Run: func() {
			t.empty = false
			t.apply()
		}},
	})
	t.refreshReadout()
}

func (t *TableTab) onSelection(selected []*tabular.Record) {
	slog.Debug("selection changed", "count", len(selected))
	t.refreshReadout()
}

func (t *TableTab) refreshReadout() {
	if t.readout == nil {
		return
	}
	v := t.View()
	total := 0
	if v.Mode() == tabular.ModePopulated {
		total = len(v.Visible())
	}
	lines := []string{fmt.Sprintf("%d of %d selected", v.SelectedCount(), total)}
	for _, rec := range v.Selection() {
		lines = append(lines, "• "+tabular.DisplayText(rec.Get("name")))
	}
	t.readout.SetText(strings.Join(lines, "\n"))
}

// SortTo clicks the header of key until the view sorts in direction. A
// DirectionNone target clears the sort.
func (t *TableTab) SortTo(key string, direction tabular.Direction) tea.Cmd {
	if key == "" {
		key = t.View().Sort().ColumnKey
		if key == "" {
			return core.StatusCmd("Sort cleared")
		}
	}
	var cmd tea.Cmd
	for range 3 {
		if t.View().Sort().DirectionFor(key) == direction {
			break
		}
		cmd = t.table.ClickHeader(key)
	}
	return cmd
}

// SortItems lists picker entries for every sortable column plus clear.
func (t *TableTab) SortItems() []core.PickerItem {
	var items []core.PickerItem
	for _, c := range t.View().SortableColumns() {
		items = append(items,
			core.PickerItem{ID: c.Key + ":asc", Label: c.Title + " ▲", Meta: "ascending", Section: "Columns", Search: c.Title + " ascending", Group: c.Key},
			core.PickerItem{ID: c.Key + ":desc", Label: c.Title + " ▼", Meta: "descending", Section: "Columns", Search: c.Title + " descending", Group: c.Key},
		)
	}
	return append(items, core.PickerItem{ID: "clear", Label: "Clear sort", Section: "Actions"})
}

func sortRequestFromItem(id string) sortRequestMsg {
	if id == "clear" {
		return sortRequestMsg{direction: tabular.DirectionNone}
	}
	key, dir, _ := strings.Cut(id, ":")
	if dir == "desc" {
		return sortRequestMsg{key: key, direction: tabular.DirectionDescending}
	}
	return sortRequestMsg{key: key, direction: tabular.DirectionAscending}
}

// Export writes the visible rows to dir. The snapshot is taken now; only the
// file write runs in the command.
func (t *TableTab) Export(dir string, format export.Format) tea.Cmd {
	view := export.Snapshot("Users", t.View())
	rows := view.NumRows()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		path, err := export.ToFile(ctx, dir, "users", format, view)
		if err != nil {
			return core.StatusMsg{Text: err.Error(), Level: core.StatusError}
		}
		return core.StatusMsg{Text: fmt.Sprintf("Exported %d rows to %s", rows, path), Code: strings.ToUpper(string(format))}
	}
}
