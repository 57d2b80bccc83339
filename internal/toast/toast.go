// Package toast keeps the ordered list of transient notifications shown on the
// screen and schedules their removal.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultDuration is how long a toast stays on screen.
const DefaultDuration = 3000 * time.Millisecond

// Kind selects the toast style. The zero value is KindSuccess.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

type Toast struct {
	ID      string
	Message string
	Kind    Kind
}

// ExpiredMsg is delivered when a toast's lifetime is over.
type ExpiredMsg struct {
	ID string
}

// Ticker schedules fn after d. tea.Tick satisfies it.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

type Option func(*Notifier)

// WithTicker replaces tea.Tick, mainly so tests can observe the scheduled delay.
func WithTicker(t Ticker) Option {
	return func(n *Notifier) { n.tick = t }
}

// Notifier is the single notification container. It is not safe for concurrent
// use; it is owned by the screen model and touched only from Update.
type Notifier struct {
	duration time.Duration
	tick     Ticker
	items    []Toast
}

func NewNotifier(duration time.Duration, opts ...Option) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	n := &Notifier{duration: duration, tick: tea.Tick}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify appends a toast and returns the command that expires it. Every call
// gets its own timer; there is no deduplication and no cap.
func (n *Notifier) Notify(message string, kind Kind) tea.Cmd {
	t := Toast{ID: uuid.NewString(), Message: message, Kind: kind}
	n.items = append(n.items, t)
	id := t.ID
	return n.tick(n.duration, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

func (n *Notifier) Success(message string) tea.Cmd {
	return n.Notify(message, KindSuccess)
}

func (n *Notifier) Error(message string) tea.Cmd {
	return n.Notify(message, KindError)
}

// Expire removes the toast with the given id. It reports whether one was found.
func (n *Notifier) Expire(id string) bool {
	for i, t := range n.items {
		if t.ID != id {
			continue
		}
		next := make([]Toast, 0, len(n.items)-1)
		next = append(next, n.items[:i]...)
		n.items = append(next, n.items[i+1:]...)
		return true
	}
	return false
}

// Items returns the live toasts in the order they were created.
func (n *Notifier) Items() []Toast {
	out := make([]Toast, len(n.items))
	copy(out, n.items)
	return out
}

func (n *Notifier) Len() int {
	return len(n.items)
}

func (n *Notifier) Duration() time.Duration {
	return n.duration
}
