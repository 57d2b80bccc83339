package screen

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ecociclo/internal/submit"
)

const submitFailedMessage = "Não foi possível concluir a operação. Tente novamente."

// simulate disables mode's button, shows busy on it and starts the submit task.
// When the task reports back, finishSubmit restores the button to idle and then
// runs onComplete. A submit while the button is disabled is dropped.
func (m *Model) simulate(mode Mode, idle, busy string, req submit.Request, onComplete func(m *Model) tea.Cmd) tea.Cmd {
	p := m.panels[mode]
	if p.button.Disabled {
		m.logger.Debug("submit ignored while busy", "form", mode.String())
		return nil
	}
	m.seq++
	p.button.Disabled = true
	p.button.Label = busy
	p.inflight = &inflight{seq: m.seq, idle: idle, onComplete: onComplete}
	m.logger.Info("submit started", "form", mode.String(), "seq", m.seq)
	return submit.Task(m.ctx, m.submitter, m.seq, req)
}

func (m *Model) finishSubmit(msg submit.DoneMsg) tea.Cmd {
	mode, err := ParseMode(msg.Form)
	if err != nil {
		m.logger.Warn("submit result for unknown form", "form", msg.Form)
		return nil
	}
	p := m.panels[mode]
	job := p.inflight
	if job == nil || job.seq != msg.Seq {
		m.logger.Debug("stale submit result", "form", msg.Form, "seq", msg.Seq)
		return nil
	}
	p.inflight = nil
	p.button.Disabled = false
	p.button.Label = job.idle

	if msg.Err != nil {
		m.logger.Warn("submit failed", "form", msg.Form, "error", msg.Err)
		return m.toasts.Error(submitFailedMessage)
	}
	m.logger.Info("submit finished", "form", msg.Form, "seq", msg.Seq)
	if job.onComplete == nil {
		return nil
	}
	return job.onComplete(m)
}
