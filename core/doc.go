// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - shared state machines used across screens (for example picker logic)
// - tab and pane policy (pane host selection, focus and jump behavior)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - widget rendering primitives and the table/field state machines
package core
