// Package screens contains the overlay flows pushed on top of tabs: the
// command palette, the section picker and the jump picker.
//
// Allowed here:
// - screen implementations that satisfy core.Screen
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
