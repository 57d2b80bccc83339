package core

import "strings"

const (
	ScopeLogin    = "form:login"
	ScopeRegister = "form:register"
)

const (
	ActionQuit        = "quit"
	ActionTabLogin    = "tab-login"
	ActionTabRegister = "tab-register"
	ActionTabToggle   = "tab-toggle"
	ActionFocusNext   = "focus-next"
	ActionFocusPrev   = "focus-prev"
	ActionReveal      = "reveal-password"
	ActionToggleTerms = "toggle-terms"
	ActionSubmit      = "submit"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"esc", "ctrl+c"}, Action: ActionQuit, Description: "sair", Scopes: []string{"*"}},
		{Keys: []string{"f1"}, Action: ActionTabLogin, Description: "login", Scopes: []string{"*"}},
		{Keys: []string{"f2"}, Action: ActionTabRegister, Description: "cadastro", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+t"}, Action: ActionTabToggle, Description: "trocar aba", Scopes: []string{"*"}},
		{Keys: []string{"tab", "down"}, Action: ActionFocusNext, Description: "próximo", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab", "up"}, Action: ActionFocusPrev, Description: "anterior", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+e"}, Action: ActionReveal, Description: "mostrar senha", Scopes: []string{"*"}},
		{Keys: []string{"space"}, Action: ActionToggleTerms, Description: "aceitar termos", Scopes: []string{ScopeRegister}},
		{Keys: []string{"enter"}, Action: ActionSubmit, Description: "enviar", Scopes: []string{"*"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
