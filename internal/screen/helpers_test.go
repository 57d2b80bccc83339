package screen

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ecociclo/internal/submit"
	"github.com/jask/ecociclo/internal/toast"
)

// fakeSubmitter records requests and answers with err without waiting.
type fakeSubmitter struct {
	mu   sync.Mutex
	reqs []submit.Request
	err  error
}

func (f *fakeSubmitter) Submit(_ context.Context, req submit.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.err
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

type fixture struct {
	m         *Model
	submitter *fakeSubmitter
	delays    []time.Duration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{submitter: &fakeSubmitter{}}
	ticker := func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		f.delays = append(f.delays, d)
		return func() tea.Msg { return fn(time.Time{}) }
	}
	f.m = New(Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Submitter: f.submitter,
		Toasts:    toast.NewNotifier(toast.DefaultDuration, toast.WithTicker(ticker)),
	})
	f.m.Init()
	return f
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m *Model, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func typeText(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// complete runs a submit command and feeds its result back into Update,
// returning whatever Update scheduled next.
func complete(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	msg := cmd()
	if _, ok := msg.(submit.DoneMsg); !ok {
		t.Fatalf("expected submit.DoneMsg, got %T", msg)
	}
	_, next := m.Update(msg)
	return next
}

func mustSet(t *testing.T, m *Model, values map[FieldID]string) {
	t.Helper()
	for id, v := range values {
		if err := m.SetValue(id, v); err != nil {
			t.Fatalf("SetValue(%s): %v", id, err)
		}
	}
}
