package app

import "github.com/jask/jaskui/core/tabular"

// propRef is one row of a component prop reference.
type propRef struct {
	name, typ, def, desc string
}

var fieldProps = []propRef{
	{"value", "string", "undefined", "The input value"},
	{"onChange", "function", "undefined", "Callback fired when value changes"},
	{"label", "string", "undefined", "Label shown above the input"},
	{"placeholder", "string", "undefined", "Text shown while empty"},
	{"helperText", "string", "undefined", "Hint shown below the input"},
	{"errorMessage", "string", "undefined", "Error shown below the input; hides the helper"},
	{"variant", "filled | outlined | ghost", "filled", "Input visual style variant"},
	{"size", "sm | md | lg", "md", "Input size"},
	{"disabled", "boolean", "false", "Whether the input is disabled"},
	{"invalid", "boolean", "false", "Whether the input is in error state"},
	{"loading", "boolean", "false", "Show a busy indicator and ignore input"},
	{"showClearButton", "boolean", "false", "Offer a clear action while there is a value"},
	{"showPasswordToggle", "boolean", "false", "Offer a reveal switch for secrets"},
	{"type", "text | password | email | search", "text", "Input kind"},
}

var tableProps = []propRef{
	{"data", "T[]", "required", "Array of data objects to display"},
	{"columns", "Column<T>[]", "required", "Column definitions"},
	{"loading", "boolean", "false", "Show loading state"},
	{"selectable", "boolean", "false", "Enable row selection"},
	{"onRowSelect", "function", "undefined", "Callback when selection changes"},
	{"emptyMessage", "string", "No data available", "Message shown when there is no data"},
	{"emptyAction", "{label, onClick}", "undefined", "Call to action shown when empty"},
}

// PropsView is a read-only, non-sortable table over refs.
func PropsView(refs []propRef) *tabular.View {
	rows := make([]map[string]any, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, map[string]any{"prop": r.name, "type": r.typ, "default": r.def, "description": r.desc})
	}
	return tabular.New(tabular.Props{
		Records: tabular.Records(rows...),
		Columns: []tabular.Column{
			{Key: "prop", Title: "Prop", Field: "prop"},
			{Key: "type", Title: "Type", Field: "type"},
			{Key: "default", Title: "Default", Field: "default"},
			{Key: "description", Title: "Description", Field: "description"},
		},
	})
}
