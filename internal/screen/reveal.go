package screen

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// Icon is the glyph paired with a password field.
type Icon int

const (
	// IconEye is shown while the field is obscured.
	IconEye Icon = iota
	// IconEyeSlash is shown while the field is plain.
	IconEyeSlash
)

func (i Icon) Glyph() string {
	if i == IconEyeSlash {
		return "⊘"
	}
	return "◉"
}

// RevealIcon is the icon bound to one password field.
type RevealIcon struct {
	Icon Icon
}

// TogglePassword flips the field between obscured and plain and swaps its icon.
func (m *Model) TogglePassword(id FieldID) error {
	icon, ok := m.reveal[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoRevealBinding, id)
	}
	in := m.inputs[id]
	if in.EchoMode == textinput.EchoPassword {
		in.EchoMode = textinput.EchoNormal
		icon.Icon = IconEyeSlash
	} else {
		in.EchoMode = textinput.EchoPassword
		icon.Icon = IconEye
	}
	m.logger.Debug("password visibility toggled", "field", string(id), "plain", in.EchoMode == textinput.EchoNormal)
	return nil
}

// Revealed reports whether the field currently shows plain text.
func (m *Model) Revealed(id FieldID) bool {
	if _, bound := m.reveal[id]; !bound {
		return false
	}
	return m.inputs[id].EchoMode == textinput.EchoNormal
}

// IconFor returns the icon bound to id.
func (m *Model) IconFor(id FieldID) (Icon, bool) {
	icon, ok := m.reveal[id]
	if !ok {
		return 0, false
	}
	return icon.Icon, true
}
