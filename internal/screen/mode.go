package screen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/ecociclo/internal/core"
)

// Mode selects which form panel is shown.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "login":
		return ModeLogin, nil
	case "register":
		return ModeRegister, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeRegister:
		return "register"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool {
	return m == ModeLogin || m == ModeRegister
}

func (m Mode) other() Mode {
	if m == ModeLogin {
		return ModeRegister
	}
	return ModeLogin
}

func (m Mode) scope() string {
	if m == ModeRegister {
		return core.ScopeRegister
	}
	return core.ScopeLogin
}
