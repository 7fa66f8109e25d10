package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core"
	"github.com/jask/jaskui/internal/export"
	"github.com/jask/jaskui/screens"
)

const (
	inputsTabIndex = 0
	tableTabIndex  = 1
)

type Options struct {
	Title     string
	Source    UserSource
	ExportDir string
	// KeyOverrides replaces the keys of named actions.
	KeyOverrides map[string][]string
}

// Demo holds the tabs behind a configured model.
type Demo struct {
	Inputs *core.GeneratedTab
	Table  *TableTab
	opts   Options
}

// New builds the demo model with both tabs, the command set and the modal
// constructors wired in.
func New(opts Options) (core.Model, *Demo) {
	if opts.Title == "" {
		opts.Title = "jaskui"
	}
	if opts.Source == nil {
		opts.Source = StaticSource(nil)
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	d := &Demo{
		Inputs: NewInputsTab(),
		Table:  NewTableTab(opts.Source),
		opts:   opts,
	}
	bindings := core.DefaultKeyBindings()
	if len(opts.KeyOverrides) > 0 {
		bindings = core.ApplyActionKeybindings(bindings, opts.KeyOverrides)
	}
	m := core.NewModel(opts.Title, []core.Tab{d.Inputs, d.Table}, core.NewKeyRegistry(bindings), nil)
	d.configure(&m)
	return m, d
}

func (d *Demo) configure(m *core.Model) {
	m.OpenPickerModal = func(model *core.Model) core.Screen {
		return d.sortPicker()
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				return screens.OptionsFromResults(model.CommandRegistry().Search(query, scope, model))
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenJumpPickerModal = func(model *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPickerScreen(targets)
	}

	d.RegisterCommands(m.CommandRegistry())
}

func (d *Demo) sortPicker() core.Screen {
	return screens.NewPickerModal("Sort by", "screen:picker", d.Table.SortItems(), func(it core.PickerItem) tea.Msg {
		return sortRequestFromItem(it.ID)
	})
}

func nothingToExport(t *TableTab) (bool, string) {
	if export.Snapshot("", t.View()).NumRows() == 0 {
		return true, "Nothing to export"
	}
	return false, ""
}

func (d *Demo) RegisterCommands(reg *core.CommandRegistry) {
	reg.Register(core.Command{
		ID:          "switch-inputs",
		Name:        "Switch to inputs",
		Description: "Activate inputs tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTab(inputsTabIndex)
			return core.StatusCmd("Inputs")
		},
	})
	reg.Register(core.Command{
		ID:          "switch-table",
		Name:        "Switch to table",
		Description: "Activate table tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTab(tableTabIndex)
			return core.StatusCmd("Table")
		},
	})
	reg.Register(core.Command{
		ID:          "toggle-loading",
		Name:        "Toggle loading",
		Description: "Show or hide the table loading state",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			d.Table.ToggleLoading()
			if d.Table.Loading() {
				return core.StatusCmd("Table loading")
			}
			return core.StatusCmd("Table loaded")
		},
	})
	reg.Register(core.Command{
		ID:          "toggle-empty",
		Name:        "Toggle empty state",
		Description: "Show the table with no rows",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			d.Table.ToggleEmpty()
			if d.Table.Empty() {
				return core.StatusCmd("Showing empty state")
			}
			return core.StatusCmd("Showing data")
		},
	})
	reg.Register(core.Command{
		ID:          "sort-by",
		Name:        "Sort by…",
		Description: "Pick a sortable column and direction",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTab(tableTabIndex)
			m.PushScreen(d.sortPicker())
			return nil
		},
		Disabled: func(m *core.Model) (bool, string) {
			if d.Table.Loading() {
				return true, "Table is loading"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "clear-selection",
		Name:        "Clear selection",
		Description: "Uncheck every row",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			d.Table.View().SetAll(false)
			return core.StatusCmd("Selection cleared")
		},
		Disabled: func(m *core.Model) (bool, string) {
			if d.Table.View().SelectedCount() == 0 {
				return true, "Nothing selected"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "export-csv",
		Name:        "Export CSV",
		Description: "Write the visible rows as csv",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return d.Table.Export(d.opts.ExportDir, export.FormatCSV)
		},
		Disabled: func(m *core.Model) (bool, string) { return nothingToExport(d.Table) },
	})
	reg.Register(core.Command{
		ID:          "export-html",
		Name:        "Export HTML",
		Description: "Write the visible rows as an html table",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return d.Table.Export(d.opts.ExportDir, export.FormatHTML)
		},
		Disabled: func(m *core.Model) (bool, string) { return nothingToExport(d.Table) },
	})
	reg.Register(core.Command{
		ID:          "reload",
		Name:        "Reload records",
		Description: "Fetch users again from " + d.opts.Source.Describe(),
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return d.Table.Reload()
		},
	})
}
