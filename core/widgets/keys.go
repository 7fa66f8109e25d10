package widgets

import "github.com/charmbracelet/bubbles/key"

// TableKeyMap holds the bindings a focused TablePane reacts to.
type TableKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Activate  key.Binding
}

var DefaultTableKeyMap = TableKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "row up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "row down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev column"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next column"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort column"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "select row"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	// Activate sorts the column under the cursor, or runs the empty-state
	// action when there are no rows.
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "sort / action"),
	),
}

// FieldKeyMap holds the bindings a focused FieldPane reacts to besides text
// entry.
type FieldKeyMap struct {
	Clear  key.Binding
	Reveal key.Binding
}

var DefaultFieldKeyMap = FieldKeyMap{
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("C-x", "clear"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "show/hide"),
	),
}

func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Sort, k.Toggle, k.ToggleAll}
}

func (k FieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Reveal}
}
