package screen

import "errors"

// FieldID names one input of either form.
type FieldID string

const (
	FieldLoginEmail       FieldID = "loginEmail"
	FieldLoginPassword    FieldID = "loginPassword"
	FieldRegisterName     FieldID = "registerName"
	FieldRegisterEmail    FieldID = "registerEmail"
	FieldRegisterPassword FieldID = "registerPassword"
	FieldConfirmPassword  FieldID = "confirmPassword"
)

// focus ring slots that are not text inputs
const (
	SlotTerms  FieldID = "terms"
	SlotSubmit FieldID = "submit"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrNoRevealBinding = errors.New("field has no reveal binding")
)

type fieldSpec struct {
	id          FieldID
	label       string
	placeholder string
	secret      bool
}

var loginFields = []fieldSpec{
	{id: FieldLoginEmail, label: "E-mail", placeholder: "seu@email.com"},
	{id: FieldLoginPassword, label: "Senha", placeholder: "••••••••", secret: true},
}

var registerFields = []fieldSpec{
	{id: FieldRegisterName, label: "Nome completo", placeholder: "Seu nome"},
	{id: FieldRegisterEmail, label: "E-mail", placeholder: "seu@email.com"},
	{id: FieldRegisterPassword, label: "Senha", placeholder: "••••••••", secret: true},
	{id: FieldConfirmPassword, label: "Confirmar senha", placeholder: "••••••••", secret: true},
}

const termsLabel = "Aceito os termos de uso e a política de privacidade"
