package app

import (
	"github.com/jask/jaskui/core"
	"github.com/jask/jaskui/core/field"
	"github.com/jask/jaskui/core/widgets"
)

// PasswordMinLength is the demo's only validation rule.
const PasswordMinLength = 8

const passwordTooShort = "Password must be at least 8 characters"

// PasswordError returns the message for value, or "" when it is acceptable.
// An empty password is not flagged.
func PasswordError(value string) string {
	if n := len([]rune(value)); n > 0 && n < PasswordMinLength {
		return passwordTooShort
	}
	return ""
}

type fieldSpec struct {
	id    string
	title string
	jump  byte
	props func(value string) field.Props
}

func inputSpecs() []fieldSpec {
	return []fieldSpec{
		{id: "small", title: "Small Size", jump: 's', props: func(v string) field.Props {
			return field.Props{Value: v, Label: "Small Size", Placeholder: "Enter your name", Size: field.SizeSmall, Helper: "This is helper text"}
		}},
		{id: "email", title: "Medium Size", jump: 'm', props: func(v string) field.Props {
			return field.Props{Value: v, Label: "Medium Size", Placeholder: "Enter your email", Kind: field.KindEmail, Clearable: true}
		}},
		{id: "password", title: "Large Size (Error State)", jump: 'p', props: func(v string) field.Props {
			msg := PasswordError(v)
			return field.Props{
				Value: v, Label: "Large Size (Error State)", Placeholder: "Enter password",
				Size: field.SizeLarge, Kind: field.KindSecret, Revealable: true,
				Invalid: msg != "", Error: msg,
			}
		}},
		{id: "search", title: "Outlined Variant", jump: 'o', props: func(v string) field.Props {
			return field.Props{Value: v, Label: "Outlined Variant", Placeholder: "Search...", Variant: field.VariantOutlined, Kind: field.KindSearch, Clearable: true}
		}},
		{id: "ghost", title: "Ghost Variant", jump: 'g', props: func(v string) field.Props {
			return field.Props{Value: v, Label: "Ghost Variant", Placeholder: "Type something...", Variant: field.VariantGhost}
		}},
		{id: "disabled", title: "Disabled State", jump: 'd', props: func(v string) field.Props {
			return field.Props{Value: v, Label: "Disabled State", Placeholder: "Disabled input", Disabled: true}
		}},
		{id: "loading", title: "Loading State", jump: 'l', props: func(v string) field.Props {
			return field.Props{Value: v, Label: "Loading State", Placeholder: "Loading...", Busy: true, Clearable: true}
		}},
	}
}

// newDemoField wires a field whose host recomputes props on every change,
// so derived state such as the password error follows the value.
func newDemoField(spec fieldSpec) *field.Field {
	f := field.New(field.Props{})
	var apply func(string)
	apply = func(v string) {
		props := spec.props(v)
		props.OnChange = apply
		f.SetProps(props)
	}
	apply("")
	return f
}

func NewInputsTab() *core.GeneratedTab {
	fields := inputSpecs()
	specs := make([]core.PaneSpec, 0, len(fields)+1)
	for _, fs := range fields {
		specs = append(specs, core.PaneSpec{
			ID:        fs.id,
			Title:     fs.title,
			Scope:     "pane:inputs:" + fs.id,
			JumpKey:   fs.jump,
			Focusable: true,
			Factory: func(spec core.PaneSpec) core.Pane {
				return widgets.NewFieldPane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, newDemoField(fs))
			},
		})
	}
	specs = append(specs, core.PaneSpec{
		ID: "props", Title: "Props", Scope: "pane:inputs:props", JumpKey: 'r', Focusable: true,
		Factory: func(spec core.PaneSpec) core.Pane {
			return widgets.NewTablePane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, PropsView(fieldProps), 0).WithStatus(core.StatusCmd)
		},
	})

	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{
				widgets.VStack{
					Widgets: []widgets.Widget{host.BuildPane("small", m), host.BuildPane("email", m), host.BuildPane("password", m)},
					Ratios:  []float64{7, 7, 9},
				},
				widgets.VStack{
					Widgets: []widgets.Widget{host.BuildPane("search", m), host.BuildPane("ghost", m), host.BuildPane("disabled", m)},
					Ratios:  []float64{7, 6, 7},
				},
				widgets.VStack{
					Widgets: []widgets.Widget{host.BuildPane("loading", m), host.BuildPane("props", m)},
					Ratios:  []float64{7, 16},
				},
			},
			Ratios: []float64{0.3, 0.3, 0.4},
			Gap:    1,
		}
	}
	return core.NewGeneratedTab("inputs", "Inputs", specs, layout)
}
