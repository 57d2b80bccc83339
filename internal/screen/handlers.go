package screen

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/jask/ecociclo/internal/submit"
)

const (
	loginIdleLabel    = "Entrar"
	loginBusyLabel    = "Entrando..."
	registerIdleLabel = "Criar conta"
	registerBusyLabel = "Criando conta..."

	passwordMismatchMessage = "As senhas não coincidem"
)

var ErrPasswordMismatch = errors.New("password and confirmation differ")

// Registration is what the register form submits. The only rule is that the
// confirmation repeats the password.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string `validate:"eqfield=Password"`
}

func (m *Model) validateRegistration(r Registration) error {
	err := m.validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "ConfirmPassword" {
				return ErrPasswordMismatch
			}
		}
	}
	return fmt.Errorf("validate registration: %w", err)
}

// HandleLogin submits the login form. No credentials are checked.
func (m *Model) HandleLogin() tea.Cmd {
	email := m.Value(FieldLoginEmail)
	password := m.Value(FieldLoginPassword)
	req := submit.Request{
		Form:   ModeLogin.String(),
		Fields: map[string]string{"email": email, "password": password},
	}
	return m.simulate(ModeLogin, loginIdleLabel, loginBusyLabel, req, func(m *Model) tea.Cmd {
		cmd := m.toasts.Success(fmt.Sprintf("Login realizado com sucesso! Bem-vindo de volta, %s", email))
		m.clear(FieldLoginEmail, FieldLoginPassword)
		return cmd
	})
}

// HandleRegister submits the register form unless the passwords differ, in
// which case it only raises an error toast.
func (m *Model) HandleRegister() tea.Cmd {
	r := Registration{
		Name:            m.Value(FieldRegisterName),
		Email:           m.Value(FieldRegisterEmail),
		Password:        m.Value(FieldRegisterPassword),
		ConfirmPassword: m.Value(FieldConfirmPassword),
	}
	if err := m.validateRegistration(r); err != nil {
		if !errors.Is(err, ErrPasswordMismatch) {
			m.logger.Error("registration validation", "error", err)
		}
		return m.toasts.Error(passwordMismatchMessage)
	}
	req := submit.Request{
		Form: ModeRegister.String(),
		Fields: map[string]string{
			"name":     r.Name,
			"email":    r.Email,
			"password": r.Password,
		},
	}
	return m.simulate(ModeRegister, registerIdleLabel, registerBusyLabel, req, func(m *Model) tea.Cmd {
		cmd := m.toasts.Success(fmt.Sprintf("Cadastro realizado com sucesso! Bem-vindo, %s!", r.Name))
		m.clear(FieldRegisterName, FieldRegisterEmail, FieldRegisterPassword, FieldConfirmPassword)
		m.terms = false
		return cmd
	})
}

func (m *Model) submitActive() tea.Cmd {
	if m.mode == ModeRegister {
		return m.HandleRegister()
	}
	return m.HandleLogin()
}
