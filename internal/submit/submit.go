// Package submit runs form submissions as asynchronous tasks. The screen only
// sees a Submitter, so the simulated delay can be swapped for a real request
// without touching callers.
package submit

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is how long the simulated submitter takes.
const DefaultDelay = 1000 * time.Millisecond

// Request carries the values read from a form at submit time.
type Request struct {
	Form   string
	Fields map[string]string
}

type Submitter interface {
	Submit(ctx context.Context, req Request) error
}

// SubmitterFunc adapts a plain function to Submitter.
type SubmitterFunc func(ctx context.Context, req Request) error

func (f SubmitterFunc) Submit(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Simulated succeeds after Delay without doing anything.
type Simulated struct {
	Delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Simulated{Delay: delay}
}

func (s *Simulated) Submit(ctx context.Context, _ Request) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DoneMsg reports the end of a task. Seq echoes the token passed to Task so the
// receiver can ignore results it no longer waits for.
type DoneMsg struct {
	Form string
	Seq  uint64
	Err  error
}

// Task returns a command that runs req through s and reports a DoneMsg.
func Task(ctx context.Context, s Submitter, seq uint64, req Request) tea.Cmd {
	return func() tea.Msg {
		err := s.Submit(ctx, req)
		return DoneMsg{Form: req.Form, Seq: seq, Err: err}
	}
}
