package screen

import (
	"fmt"
)

// SwitchTab marks mode's tab active and shows its panel, deactivating and
// hiding the other one. Calling it with the current mode yields the same state.
func (m *Model) SwitchTab(mode Mode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	for i := range m.tabs {
		m.tabs[i].Active = false
		m.panels[i].visible = false
	}
	m.tabs[mode].Active = true
	m.panels[mode].visible = true
	m.mode = mode
	m.focusSlot(0)
	m.logger.Debug("tab switched", "mode", mode.String())
	return nil
}

func (m *Model) focusSlot(i int) {
	p := m.panels[m.mode]
	if len(p.ring) == 0 {
		return
	}
	for _, in := range m.inputs {
		in.Blur()
	}
	p.focus = (i%len(p.ring) + len(p.ring)) % len(p.ring)
	if in, ok := m.inputs[p.focused()]; ok {
		in.Focus()
	}
}

func (m *Model) moveFocus(delta int) {
	m.focusSlot(m.panels[m.mode].focus + delta)
}
