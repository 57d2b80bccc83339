// Package screen is the login/registration screen: a single Bubble Tea model
// that owns the active tab, both form panels, the password reveal bindings,
// the toast container and the in-flight submissions.
//
// All state is mutated from Update on the program goroutine. Timers and
// submissions run as tea.Cmd values and report back through messages.
package screen
