package widgets

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskui/core/field"
)

// FieldPane hosts a field.Field. Keystrokes go through a textinput; each
// resulting value change is offered to the field, which forwards it to the
// host unless disabled or busy.
type FieldPane struct {
	id     string
	title  string
	scope  string
	jump   byte
	field  *field.Field
	input  textinput.Model
	spin   spinner.Model
	keys   FieldKeyMap

	focused bool
}

func NewFieldPane(id, title, scope string, jumpKey byte, f *field.Field) *FieldPane {
	if f == nil {
		f = field.New(field.Props{})
	}
	in := textinput.New()
	in.Prompt = ""
	in.EchoCharacter = '•'
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(paletteMauve)
	p := &FieldPane{
		id:    id,
		title: title,
		scope: scope,
		jump:  jumpKey,
		field: f,
		input: in,
		spin:  sp,
		keys:  DefaultFieldKeyMap,
	}
	p.sync()
	return p
}

func (p *FieldPane) ID() string             { return p.id }
func (p *FieldPane) Title() string          { return p.title }
func (p *FieldPane) Scope() string          { return p.scope }
func (p *FieldPane) JumpKey() byte          { return p.jump }
func (p *FieldPane) Focusable() bool        { return true }
func (p *FieldPane) Field() *field.Field    { return p.field }
func (p *FieldPane) KeyMap() FieldKeyMap    { return p.keys }
func (p *FieldPane) CapturesInput() bool    { return p.focused }
func (p *FieldPane) OnSelect() tea.Cmd      { return nil }
func (p *FieldPane) OnDeselect() tea.Cmd    { return nil }
func (p *FieldPane) InputView() string      { return p.input.View() }
func (p *FieldPane) Spinner() spinner.Model { return p.spin }

func (p *FieldPane) Init() tea.Cmd {
	if p.field.Props().Busy {
		return p.spin.Tick
	}
	return nil
}

func (p *FieldPane) OnFocus() tea.Cmd {
	p.focused = true
	return p.input.Focus()
}

func (p *FieldPane) OnBlur() tea.Cmd {
	p.focused = false
	p.input.Blur()
	return nil
}

// SetProps replaces the field props. It restarts the spinner when the field
// turns busy.
func (p *FieldPane) SetProps(props field.Props) tea.Cmd {
	wasBusy := p.field.Props().Busy
	p.field.SetProps(props)
	p.sync()
	if props.Busy && !wasBusy {
		return p.spin.Tick
	}
	return nil
}

// sync pushes field state into the textinput.
func (p *FieldPane) sync() {
	props := p.field.Props()
	if p.input.Value() != props.Value {
		p.input.SetValue(props.Value)
	}
	p.input.Placeholder = props.Placeholder
	if p.field.Masked() {
		p.input.EchoMode = textinput.EchoPassword
	} else {
		p.input.EchoMode = textinput.EchoNormal
	}
}

func (p *FieldPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.field.Props().Busy {
			return nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !p.focused {
			return nil
		}
		switch {
		case key.Matches(msg, p.keys.Clear):
			p.field.Clear()
			p.sync()
			return nil
		case key.Matches(msg, p.keys.Reveal):
			p.field.ToggleReveal()
			p.sync()
			return nil
		}
		if !p.field.Interactive() {
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		if p.input.Value() != p.field.Value() {
			p.field.Input(p.input.Value())
		}
		p.sync()
		return cmd
	}
	if !p.focused {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Frame builds the InputField for the current state.
func (p *FieldPane) Frame() InputField {
	props := p.field.Props()
	msg, kind := p.field.Message()
	f := InputField{
		Label:       props.Label,
		Input:       p.input.View(),
		Variant:     props.Variant,
		Size:        props.Size,
		Invalid:     props.Invalid,
		Disabled:    props.Disabled || props.Busy,
		Focused:     p.focused,
		Message:     msg,
		MessageKind: kind,
	}
	switch props.Kind {
	case field.KindSearch:
		f.Leading = GlyphSearch
	case field.KindEmail:
		f.Leading = "@"
	}
	if props.Busy {
		f.Trailing = append(f.Trailing, p.spin.View())
	}
	if p.field.ClearVisible() {
		f.Trailing = append(f.Trailing, GlyphClear)
	}
	if p.field.RevealVisible() {
		if p.field.Masked() {
			f.Trailing = append(f.Trailing, GlyphShow)
		} else {
			f.Trailing = append(f.Trailing, GlyphHide)
		}
	}
	return f
}

func (p *FieldPane) View(width, height int, selected, focused bool) string {
	props := p.field.Props()
	p.input.Width = max(1, ContentWidth(width)-8)
	inner := FieldHeight(props.Size, props.Variant)
	return Pane{
		Title:    p.title,
		Badge:    props.Kind.String(),
		Height:   inner + 2,
		Content:  p.Frame().Render(ContentWidth(width), inner),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *FieldPane) ShortHelp() []key.Binding { return p.keys.ShortHelp() }
