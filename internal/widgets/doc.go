// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (tab bar, fields, buttons, toast stack, overlay compositor)
//
// Not allowed here:
// - key handling, form state transitions, scope logic or toast timing
package widgets
