package screen

import (
	"errors"
	"testing"
)

type tabState struct {
	mode        Mode
	loginTab    bool
	registerTab bool
	loginPanel  bool
	regPanel    bool
	focused     FieldID
}

func snapshot(m *Model) tabState {
	return tabState{
		mode:        m.Mode(),
		loginTab:    m.TabActive(ModeLogin),
		registerTab: m.TabActive(ModeRegister),
		loginPanel:  m.PanelVisible(ModeLogin),
		regPanel:    m.PanelVisible(ModeRegister),
		focused:     m.Focused(),
	}
}

func TestNewStartsOnLogin(t *testing.T) {
	f := newFixture(t)
	got := snapshot(f.m)
	want := tabState{mode: ModeLogin, loginTab: true, loginPanel: true, focused: FieldLoginEmail}
	if got != want {
		t.Fatalf("initial state = %+v, want %+v", got, want)
	}
}

func TestSwitchTabShowsExactlyOnePanel(t *testing.T) {
	tests := []struct {
		mode Mode
		want tabState
	}{
		{ModeLogin, tabState{mode: ModeLogin, loginTab: true, loginPanel: true, focused: FieldLoginEmail}},
		{ModeRegister, tabState{mode: ModeRegister, registerTab: true, regPanel: true, focused: FieldRegisterName}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			for _, from := range []Mode{ModeLogin, ModeRegister} {
				f := newFixture(t)
				if err := f.m.SwitchTab(from); err != nil {
					t.Fatalf("SwitchTab(%s): %v", from, err)
				}
				if err := f.m.SwitchTab(tt.mode); err != nil {
					t.Fatalf("SwitchTab(%s): %v", tt.mode, err)
				}
				if got := snapshot(f.m); got != tt.want {
					t.Fatalf("from %s: state = %+v, want %+v", from, got, tt.want)
				}
			}
		})
	}
}

func TestSwitchTabIsIdempotent(t *testing.T) {
	for _, mode := range []Mode{ModeLogin, ModeRegister} {
		f := newFixture(t)
		_ = f.m.SwitchTab(mode)
		once := snapshot(f.m)
		_ = f.m.SwitchTab(mode)
		if twice := snapshot(f.m); twice != once {
			t.Fatalf("%s: second switch changed state: %+v -> %+v", mode, once, twice)
		}
	}
}

func TestSwitchTabRejectsUnknownMode(t *testing.T) {
	f := newFixture(t)
	_ = f.m.SwitchTab(ModeRegister)
	before := snapshot(f.m)

	err := f.m.SwitchTab(Mode(7))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
	if after := snapshot(f.m); after != before {
		t.Fatalf("state changed on invalid mode: %+v -> %+v", before, after)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"login", ModeLogin, false},
		{" Register ", ModeRegister, false},
		{"admin", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) err = %v, want ErrUnknownMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if Mode(9).String() != "Mode(9)" {
		t.Errorf("String() = %q", Mode(9).String())
	}
}
