// Package core contains app-wide contracts shared by the screen and its entry point.
//
// Allowed here:
// - key registry, default bindings and override application
// - scope names used to route keys
//
// Not allowed here:
// - form state, toast state or rendering
package core
