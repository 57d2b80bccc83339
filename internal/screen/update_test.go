package screen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingGoesToFocusedField(t *testing.T) {
	f := newFixture(t)
	typeText(t, f.m, "ana@x.com")
	press(t, f.m, "tab")
	typeText(t, f.m, "pw")

	if got := f.m.Value(FieldLoginEmail); got != "ana@x.com" {
		t.Fatalf("email = %q", got)
	}
	if got := f.m.Value(FieldLoginPassword); got != "pw" {
		t.Fatalf("password = %q", got)
	}
}

func TestFocusRingWraps(t *testing.T) {
	f := newFixture(t)
	press(t, f.m, "tab", "tab")
	if f.m.Focused() != SlotSubmit {
		t.Fatalf("focused = %s, want submit", f.m.Focused())
	}
	press(t, f.m, "tab")
	if f.m.Focused() != FieldLoginEmail {
		t.Fatalf("focused = %s, want wrap to email", f.m.Focused())
	}
	press(t, f.m, "shift+tab")
	if f.m.Focused() != SlotSubmit {
		t.Fatalf("focused = %s, want wrap back to submit", f.m.Focused())
	}
}

func TestTabKeysSwitchPanels(t *testing.T) {
	f := newFixture(t)
	press(t, f.m, "f2")
	if f.m.Mode() != ModeRegister || !f.m.PanelVisible(ModeRegister) || f.m.PanelVisible(ModeLogin) {
		t.Fatalf("f2 did not show register: %+v", snapshot(f.m))
	}
	press(t, f.m, "ctrl+t")
	if f.m.Mode() != ModeLogin {
		t.Fatalf("ctrl+t mode = %s, want login", f.m.Mode())
	}
	press(t, f.m, "f1", "f1")
	if f.m.Mode() != ModeLogin || !f.m.TabActive(ModeLogin) || f.m.TabActive(ModeRegister) {
		t.Fatalf("f1 twice: %+v", snapshot(f.m))
	}
}

func TestRevealKeyActsOnFocusedPasswordOnly(t *testing.T) {
	f := newFixture(t)
	press(t, f.m, "ctrl+e")
	if f.m.Revealed(FieldLoginPassword) {
		t.Fatal("ctrl+e on the email field must not reveal the password")
	}
	press(t, f.m, "tab", "ctrl+e")
	if !f.m.Revealed(FieldLoginPassword) {
		t.Fatal("ctrl+e on the password field should reveal it")
	}
}

func TestSpaceTogglesTermsOnlyWhenFocused(t *testing.T) {
	f := newFixture(t)
	press(t, f.m, "f2", "space")
	if f.m.TermsAccepted() {
		t.Fatal("space in the name field must not tick the terms box")
	}
	press(t, f.m, "tab", "tab", "tab", "tab")
	if f.m.Focused() != SlotTerms {
		t.Fatalf("focused = %s, want terms", f.m.Focused())
	}
	press(t, f.m, "space")
	if !f.m.TermsAccepted() {
		t.Fatal("space on the terms box should tick it")
	}
	press(t, f.m, "space")
	if f.m.TermsAccepted() {
		t.Fatal("second space should untick it")
	}
}

func TestEnterSubmitsVisibleForm(t *testing.T) {
	f := newFixture(t)
	typeText(t, f.m, "ana@x.com")
	cmd := press(t, f.m, "enter")
	if !f.m.Button(ModeLogin).Disabled {
		t.Fatal("enter should disable the login button")
	}
	if f.m.Button(ModeRegister).Disabled {
		t.Fatal("register button must stay untouched")
	}
	complete(t, f.m, cmd)
	if f.m.Value(FieldLoginEmail) != "" {
		t.Fatalf("email not cleared: %q", f.m.Value(FieldLoginEmail))
	}
}

func TestEscQuits(t *testing.T) {
	f := newFixture(t)
	cmd := press(t, f.m, "esc")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if f.m.View() != "" {
		t.Fatal("view should be empty after quitting")
	}
}

func TestWindowSize(t *testing.T) {
	f := newFixture(t)
	f.m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if f.m.width != 120 || f.m.height != 40 {
		t.Fatalf("size = %dx%d", f.m.width, f.m.height)
	}
}
