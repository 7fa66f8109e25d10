package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core/tabular"
)

// TablePane hosts a tabular.View inside pane chrome. Header and row cursors
// are pane state; sort and selection live in the view.
type TablePane struct {
	id     string
	title  string
	scope  string
	jump   byte
	view   *tabular.View
	keys   TableKeyMap
	height int
	status func(text string) tea.Cmd

	lastHeight   int
	headerCursor int
	rowCursor    int
	top          int
	focused      bool
}

func NewTablePane(id, title, scope string, jumpKey byte, view *tabular.View, height int) *TablePane {
	if view == nil {
		view = tabular.New(tabular.Props{})
	}
	return &TablePane{
		id:     id,
		title:  title,
		scope:  scope,
		jump:   jumpKey,
		view:   view,
		keys:   DefaultTableKeyMap,
		height: height,
	}
}

// WithStatus sets the callback used to report sort changes and ignored
// keys.
func (p *TablePane) WithStatus(fn func(text string) tea.Cmd) *TablePane {
	p.status = fn
	return p
}

func (p *TablePane) ID() string           { return p.id }
func (p *TablePane) Title() string        { return p.title }
func (p *TablePane) Scope() string        { return p.scope }
func (p *TablePane) JumpKey() byte        { return p.jump }
func (p *TablePane) Focusable() bool      { return true }
func (p *TablePane) Init() tea.Cmd        { return nil }
func (p *TablePane) Table() *tabular.View { return p.view }
func (p *TablePane) KeyMap() TableKeyMap  { return p.keys }
func (p *TablePane) HeaderCursor() int    { return p.headerCursor }
func (p *TablePane) RowCursor() int       { return p.rowCursor }

func (p *TablePane) OnSelect() tea.Cmd   { return nil }
func (p *TablePane) OnDeselect() tea.Cmd { return nil }
func (p *TablePane) OnFocus() tea.Cmd {
	p.focused = true
	return nil
}
func (p *TablePane) OnBlur() tea.Cmd {
	p.focused = false
	return nil
}

// SetProps hands new caller data to the view. Cursors are clamped to the new
// shape.
func (p *TablePane) SetProps(props tabular.Props) {
	p.view.SetProps(props)
	p.clamp()
}

func (p *TablePane) visibleRows() int {
	h := p.lastHeight
	if h <= 0 {
		h = p.height
	}
	return TableBodyRows(ContentHeight(h))
}

func (p *TablePane) clamp() {
	if n := len(p.view.Columns()); n == 0 {
		p.headerCursor = 0
	} else {
		p.headerCursor = min(max(p.headerCursor, 0), n-1)
	}
	p.rowCursor, p.top = ClampWindow(p.rowCursor, p.top, len(p.view.Visible()), p.visibleRows())
}

func (p *TablePane) say(text string) tea.Cmd {
	if p.status == nil || text == "" {
		return nil
	}
	return p.status(text)
}

// ClickHeader sorts by the column with key and moves the header cursor onto
// it.
func (p *TablePane) ClickHeader(colKey string) tea.Cmd {
	for i, c := range p.view.Columns() {
		if c.Key == colKey {
			p.headerCursor = i
			break
		}
	}
	return p.sortAtCursor()
}

func (p *TablePane) sortAtCursor() tea.Cmd {
	cols := p.view.Columns()
	if p.headerCursor < 0 || p.headerCursor >= len(cols) {
		return nil
	}
	col := cols[p.headerCursor]
	if p.view.Mode() == tabular.ModeLoading {
		return p.say("Table is loading")
	}
	if !p.view.ClickHeader(col.Key) {
		return p.say(col.Title + " is not sortable")
	}
	p.clamp()
	spec := p.view.Sort()
	if !spec.Active() {
		return p.say("Sort cleared")
	}
	return p.say(fmt.Sprintf("Sorted by %s (%s)", col.Title, spec.Direction))
}

func (p *TablePane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return nil
	}
	p.clamp()
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		p.rowCursor = moveBoundedCursor(p.rowCursor, len(p.view.Visible()), -1)
	case key.Matches(keyMsg, p.keys.Down):
		p.rowCursor = moveBoundedCursor(p.rowCursor, len(p.view.Visible()), 1)
	case key.Matches(keyMsg, p.keys.Left):
		p.headerCursor = moveBoundedCursor(p.headerCursor, len(p.view.Columns()), -1)
	case key.Matches(keyMsg, p.keys.Right):
		p.headerCursor = moveBoundedCursor(p.headerCursor, len(p.view.Columns()), 1)
	case key.Matches(keyMsg, p.keys.Sort):
		return p.sortAtCursor()
	case key.Matches(keyMsg, p.keys.Activate):
		if p.view.Mode() == tabular.ModeEmpty {
			if p.view.RunEmptyAction() {
				p.clamp()
			}
			return nil
		}
		return p.sortAtCursor()
	case key.Matches(keyMsg, p.keys.Toggle):
		p.view.ToggleRowAt(p.rowCursor)
	case key.Matches(keyMsg, p.keys.ToggleAll):
		p.view.ToggleAll()
	default:
		return nil
	}
	p.clamp()
	return nil
}

func (p *TablePane) badge() string {
	if p.view.Mode() == tabular.ModeLoading {
		return "loading…"
	}
	spec := p.view.Sort()
	if !spec.Active() {
		return ""
	}
	for _, h := range p.view.Headers() {
		if h.Key == spec.ColumnKey {
			return h.Title + " " + SortGlyph(h)
		}
	}
	return ""
}

// Frame builds the DataTable for the current state.
func (p *TablePane) Frame() DataTable {
	props := p.view.Props()
	t := DataTable{
		Headers:      p.view.Headers(),
		Rows:         p.view.Rows(),
		Mode:         p.view.Mode(),
		Selectable:   props.Selectable,
		Master:       p.view.MasterState(),
		EmptyMessage: p.view.EmptyMessage(),
		HeaderCursor: -1,
		RowCursor:    -1,
		Top:          p.top,
	}
	if footer, ok := p.view.Footer(); ok {
		t.Footer = footer.String()
	}
	if props.EmptyAction != nil {
		t.ActionLabel = props.EmptyAction.Label
	}
	if p.focused {
		t.HeaderCursor = p.headerCursor
		t.RowCursor = p.rowCursor
	}
	return t
}

func (p *TablePane) View(width, height int, selected, focused bool) string {
	p.lastHeight = min(height, max(p.height, 3))
	if p.height <= 0 {
		p.lastHeight = height
	}
	p.clamp()
	content := p.Frame().Render(ContentWidth(width), ContentHeight(p.lastHeight))
	return Pane{
		Title:    p.title,
		Badge:    p.badge(),
		Height:   p.height,
		Content:  content,
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *TablePane) ShortHelp() []key.Binding { return p.keys.ShortHelp() }
