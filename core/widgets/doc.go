// Package widgets contains render primitives and the two stateful panes that
// drive them.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay compositor)
// - data table and input field chrome
// - TablePane and FieldPane, which translate key messages into tabular/field operations
//
// Not allowed here:
// - app-wide routing, scope policy, or tab layout
package widgets
