// Package field holds the behavior of a single-line labeled text field:
// change notification, the secret reveal switch, the clear affordance and the
// busy indicator. It does no validation; the host decides what is invalid and
// passes Invalid and Error back in.
package field

type Variant int

const (
	VariantFilled Variant = iota
	VariantOutlined
	VariantGhost
)

func (v Variant) String() string {
	switch v {
	case VariantOutlined:
		return "outlined"
	case VariantGhost:
		return "ghost"
	default:
		return "filled"
	}
}

type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	default:
		return "md"
	}
}

type Kind int

const (
	KindText Kind = iota
	KindSecret
	KindEmail
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindSecret:
		return "password"
	case KindEmail:
		return "email"
	case KindSearch:
		return "search"
	default:
		return "text"
	}
}

// Accessibility ids for the message associated with the input.
const (
	ErrorMessageID = "error-message"
	HelperTextID   = "helper-text"
)

type Props struct {
	Value       string
	OnChange    func(value string)
	Label       string
	Placeholder string
	Helper      string
	Error       string
	Disabled    bool
	Invalid     bool
	Variant     Variant
	Size        Size
	Busy        bool
	Clearable   bool
	Revealable  bool
	Kind        Kind
}

type Field struct {
	props    Props
	revealed bool
}

func New(props Props) *Field {
	return &Field{props: props}
}

// SetProps replaces the host-owned inputs. The reveal switch survives.
func (f *Field) SetProps(props Props) {
	f.props = props
}

func (f *Field) Props() Props  { return f.props }
func (f *Field) Value() string { return f.props.Value }

// Interactive is false when the field is disabled or busy.
func (f *Field) Interactive() bool {
	return !f.props.Disabled && !f.props.Busy
}

// Input records a new value and notifies the host. Nothing happens while the
// field is disabled or busy; the return value reports delivery.
func (f *Field) Input(next string) bool {
	if !f.Interactive() || next == f.props.Value {
		return false
	}
	f.props.Value = next
	if f.props.OnChange != nil {
		f.props.OnChange(next)
	}
	return true
}

func (f *Field) ClearVisible() bool {
	return f.props.Clearable && f.props.Value != "" && f.Interactive()
}

// Clear sends an empty value through the change notifier.
func (f *Field) Clear() bool {
	if !f.ClearVisible() {
		return false
	}
	return f.Input("")
}

func (f *Field) RevealVisible() bool {
	return f.props.Revealable && f.props.Kind == KindSecret && !f.props.Busy
}

// ToggleReveal flips between masked and plain rendering. The value is never
// touched.
func (f *Field) ToggleReveal() bool {
	if !f.RevealVisible() {
		return false
	}
	f.revealed = !f.revealed
	return true
}

func (f *Field) Revealed() bool { return f.revealed }

// Masked reports whether the value must be drawn as a secret.
func (f *Field) Masked() bool {
	if f.props.Kind != KindSecret {
		return false
	}
	return !(f.props.Revealable && f.revealed)
}

// RenderedKind is the kind the input presents: a revealed secret shows as
// plain text.
func (f *Field) RenderedKind() Kind {
	if f.props.Kind == KindSecret && !f.Masked() {
		return KindText
	}
	return f.props.Kind
}

type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageHelper
	MessageError
)

// Message returns the line shown under the input. An error hides the helper.
func (f *Field) Message() (string, MessageKind) {
	switch {
	case f.props.Error != "":
		return f.props.Error, MessageError
	case f.props.Helper != "":
		return f.props.Helper, MessageHelper
	default:
		return "", MessageNone
	}
}

// DescribedBy is the id of the message tied to the input, or "".
func (f *Field) DescribedBy() string {
	switch _, kind := f.Message(); kind {
	case MessageError:
		return ErrorMessageID
	case MessageHelper:
		return HelperTextID
	default:
		return ""
	}
}

func (f *Field) AriaInvalid() bool { return f.props.Invalid }
