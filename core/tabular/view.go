package tabular

import (
	"fmt"
	"slices"
)

const (
	// SkeletonRows is the placeholder row count drawn while loading.
	SkeletonRows = 3

	DefaultEmptyMessage = "No data available"
	EmptyHint           = "There are no items to display at the moment."
)

type Mode int

const (
	ModePopulated Mode = iota
	ModeLoading
	ModeEmpty
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeEmpty:
		return "empty"
	default:
		return "populated"
	}
}

type CheckState int

const (
	Unchecked CheckState = iota
	Indeterminate
	Checked
)

// Action is the optional call-to-action shown in the empty state.
type Action struct {
	Label string
	Run   func()
}

type Props struct {
	Records           []*Record
	Columns           []Column
	Loading           bool
	Selectable        bool
	OnSelectionChange func(selected []*Record)
	EmptyMessage      string
	EmptyAction       *Action
}

// View holds the sort spec and selection set for one table instance. Every
// other piece of state (visible order, mode, master checkbox, footer) is
// derived from props on each call.
type View struct {
	props     Props
	sort      SortSpec
	selection SelectionSet
}

func New(props Props) *View {
	return &View{props: props}
}

// SetProps replaces the caller-owned inputs. Sort and selection survive.
func (v *View) SetProps(props Props) {
	v.props = props
}

func (v *View) Props() Props      { return v.props }
func (v *View) Sort() SortSpec    { return v.sort }
func (v *View) Columns() []Column { return v.props.Columns }

func (v *View) EmptyMessage() string {
	if v.props.EmptyMessage == "" {
		return DefaultEmptyMessage
	}
	return v.props.EmptyMessage
}

// Visible returns the records in display order.
func (v *View) Visible() []*Record {
	return sortRecords(v.props.Records, v.props.Columns, v.sort)
}

func (v *View) Mode() Mode {
	if v.props.Loading {
		return ModeLoading
	}
	if len(v.Visible()) == 0 {
		return ModeEmpty
	}
	return ModePopulated
}

// ClickHeader applies a header click on key. It reports whether the sort
// changed; clicks on unknown or non-sortable columns and clicks while loading
// are ignored.
func (v *View) ClickHeader(key string) bool {
	if v.props.Loading {
		return false
	}
	col, ok := findColumn(v.props.Columns, key)
	if !ok || !col.Sortable {
		return false
	}
	v.sort = v.sort.Next(key)
	return true
}

func (v *View) interactive() bool {
	return v.props.Selectable && !v.props.Loading
}

func (v *View) IsSelected(rec *Record) bool {
	return v.selection.Contains(rec)
}

// ToggleRow flips membership of rec and notifies. It reports whether the
// selection changed.
func (v *View) ToggleRow(rec *Record) bool {
	if !v.interactive() || rec == nil {
		return false
	}
	v.selection.Toggle(rec)
	v.notify()
	return true
}

// ToggleRowAt toggles the record at a visible index.
func (v *View) ToggleRowAt(index int) bool {
	visible := v.Visible()
	if index < 0 || index >= len(visible) {
		return false
	}
	return v.ToggleRow(visible[index])
}

// SetAll is the master checkbox: checked selects the whole visible set in
// visible order, unchecked clears the selection.
func (v *View) SetAll(checked bool) bool {
	if !v.interactive() {
		return false
	}
	if checked {
		v.selection.Replace(v.Visible())
	} else {
		v.selection.Clear()
	}
	v.notify()
	return true
}

// ToggleAll clicks the master checkbox. Only a fully checked box unchecks.
func (v *View) ToggleAll() bool {
	return v.SetAll(v.MasterState() != Checked)
}

func (v *View) MasterState() CheckState {
	selected := v.selection.Len()
	visible := len(v.Visible())
	switch {
	case visible > 0 && selected == visible:
		return Checked
	case selected > 0 && selected < visible:
		return Indeterminate
	default:
		return Unchecked
	}
}

// ResetSelection drops every selected record and notifies if anything was
// selected. Unlike SetAll it works in any mode; hosts call it when the
// records behind the selection go away.
func (v *View) ResetSelection() bool {
	if v.selection.Len() == 0 {
		return false
	}
	v.selection.Clear()
	v.notify()
	return true
}

func (v *View) Selection() []*Record {
	return v.selection.Records()
}

func (v *View) SelectedCount() int {
	return v.selection.Len()
}

func (v *View) notify() {
	if v.props.OnSelectionChange != nil {
		v.props.OnSelectionChange(v.selection.Records())
	}
}

type Header struct {
	Key       string
	Title     string
	Sortable  bool
	Direction Direction
}

func (v *View) Headers() []Header {
	out := make([]Header, 0, len(v.props.Columns))
	for _, c := range v.props.Columns {
		h := Header{Key: c.Key, Title: c.Title, Sortable: c.Sortable}
		if c.Sortable {
			h.Direction = v.sort.DirectionFor(c.Key)
		}
		out = append(out, h)
	}
	return out
}

type Row struct {
	Index    int
	Record   *Record
	Cells    []string
	Selected bool
}

// Rows renders the visible set. It is empty outside ModePopulated.
func (v *View) Rows() []Row {
	if v.Mode() != ModePopulated {
		return nil
	}
	visible := v.Visible()
	out := make([]Row, 0, len(visible))
	for i, rec := range visible {
		cells := make([]string, 0, len(v.props.Columns))
		for _, c := range v.props.Columns {
			cells = append(cells, c.Cell(rec, i))
		}
		out = append(out, Row{Index: i, Record: rec, Cells: cells, Selected: v.selection.Contains(rec)})
	}
	return out
}

type Footer struct {
	Total        int
	Selected     int
	ShowSelected bool
}

func (f Footer) Summary() string {
	return fmt.Sprintf("Showing 1 to %d of %d results", f.Total, f.Total)
}

func (f Footer) String() string {
	if f.ShowSelected {
		return fmt.Sprintf("%s  %d selected", f.Summary(), f.Selected)
	}
	return f.Summary()
}

// Footer reports the result summary. ok is false while loading or when the
// visible set is empty.
func (v *View) Footer() (Footer, bool) {
	if v.props.Loading {
		return Footer{}, false
	}
	total := len(v.Visible())
	if total == 0 {
		return Footer{}, false
	}
	selected := v.selection.Len()
	return Footer{
		Total:        total,
		Selected:     selected,
		ShowSelected: v.props.Selectable && selected > 0,
	}, true
}

// SortableColumns lists columns that accept header clicks, in column order.
func (v *View) SortableColumns() []Column {
	return slices.DeleteFunc(slices.Clone(v.props.Columns), func(c Column) bool { return !c.Sortable })
}

// RunEmptyAction triggers the empty-state action when the table is empty.
func (v *View) RunEmptyAction() bool {
	if v.Mode() != ModeEmpty || v.props.EmptyAction == nil || v.props.EmptyAction.Run == nil {
		return false
	}
	v.props.EmptyAction.Run()
	return true
}
