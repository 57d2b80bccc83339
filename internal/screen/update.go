package screen

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ecociclo/internal/core"
	"github.com/jask/ecociclo/internal/submit"
	"github.com/jask/ecociclo/internal/toast"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case toast.ExpiredMsg:
		m.toasts.Expire(msg.ID)
		return m, nil
	case submit.DoneMsg:
		return m, m.finishSubmit(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := m.Scope()
	switch {
	case m.keys.IsAction(msg, core.ActionQuit, scope):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, core.ActionTabLogin, scope):
		return m.switchTabCmd(ModeLogin)
	case m.keys.IsAction(msg, core.ActionTabRegister, scope):
		return m.switchTabCmd(ModeRegister)
	case m.keys.IsAction(msg, core.ActionTabToggle, scope):
		return m.switchTabCmd(m.mode.other())
	case m.keys.IsAction(msg, core.ActionFocusNext, scope):
		m.moveFocus(1)
		return textinput.Blink
	case m.keys.IsAction(msg, core.ActionFocusPrev, scope):
		m.moveFocus(-1)
		return textinput.Blink
	case m.keys.IsAction(msg, core.ActionReveal, scope):
		if _, ok := m.reveal[m.Focused()]; ok {
			_ = m.TogglePassword(m.Focused())
		}
		return nil
	case m.keys.IsAction(msg, core.ActionToggleTerms, scope) && m.Focused() == SlotTerms:
		m.terms = !m.terms
		return nil
	case m.keys.IsAction(msg, core.ActionSubmit, scope):
		return m.submitActive()
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) switchTabCmd(mode Mode) tea.Cmd {
	if err := m.SwitchTab(mode); err != nil {
		m.logger.Error("switch tab", "error", err)
		return nil
	}
	return textinput.Blink
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in, ok := m.inputs[m.Focused()]
	if !ok {
		return nil
	}
	next, cmd := in.Update(msg)
	*in = next
	return cmd
}
