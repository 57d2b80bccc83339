package screen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/jask/ecociclo/internal/core"
	"github.com/jask/ecociclo/internal/submit"
	"github.com/jask/ecociclo/internal/toast"
	"github.com/jask/ecociclo/internal/widgets"
)

// Button is a form's submit control.
type Button struct {
	IdleLabel string
	Label     string
	Disabled  bool
}

type inflight struct {
	seq        uint64
	idle       string
	onComplete func(m *Model) tea.Cmd
}

type panel struct {
	title    string
	ring     []FieldID
	focus    int
	visible  bool
	button   Button
	inflight *inflight
}

func (p *panel) focused() FieldID {
	if len(p.ring) == 0 {
		return ""
	}
	return p.ring[p.focus]
}

// Options configure New. Zero values fall back to defaults.
type Options struct {
	Context   context.Context
	Logger    *slog.Logger
	Keys      *core.KeyRegistry
	Submitter submit.Submitter
	Toasts    *toast.Notifier
}

type Model struct {
	ctx       context.Context
	logger    *slog.Logger
	keys      *core.KeyRegistry
	submitter submit.Submitter
	toasts    *toast.Notifier
	validate  *validator.Validate

	mode   Mode
	tabs   [2]widgets.Tab
	panels [2]*panel
	inputs map[FieldID]*textinput.Model
	reveal map[FieldID]*RevealIcon
	terms  bool
	seq    uint64

	width    int
	height   int
	quitting bool
}

func New(opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Keys == nil {
		opts.Keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if opts.Submitter == nil {
		opts.Submitter = submit.NewSimulated(submit.DefaultDelay)
	}
	if opts.Toasts == nil {
		opts.Toasts = toast.NewNotifier(toast.DefaultDuration)
	}

	m := &Model{
		ctx:       opts.Context,
		logger:    opts.Logger,
		keys:      opts.Keys,
		submitter: opts.Submitter,
		toasts:    opts.Toasts,
		validate:  validator.New(),
		inputs:    make(map[FieldID]*textinput.Model),
		reveal:    make(map[FieldID]*RevealIcon),
		width:     80,
		height:    24,
	}
	m.tabs[ModeLogin] = widgets.Tab{Title: "Login"}
	m.tabs[ModeRegister] = widgets.Tab{Title: "Cadastro"}
	m.panels[ModeLogin] = m.buildPanel("Bem-vindo de volta", loginFields, false, loginIdleLabel)
	m.panels[ModeRegister] = m.buildPanel("Crie sua conta", registerFields, true, registerIdleLabel)
	_ = m.SwitchTab(ModeLogin)
	return m
}

// buildPanel creates the inputs of one form and records the reveal binding of
// every secret field.
func (m *Model) buildPanel(title string, fields []fieldSpec, withTerms bool, idle string) *panel {
	p := &panel{
		title:  title,
		button: Button{IdleLabel: idle, Label: idle},
	}
	for _, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.placeholder
		in.CharLimit = 120
		in.Width = 40
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
			m.reveal[f.id] = &RevealIcon{Icon: IconEye}
		}
		m.inputs[f.id] = &in
		p.ring = append(p.ring, f.id)
	}
	if withTerms {
		p.ring = append(p.ring, SlotTerms)
	}
	p.ring = append(p.ring, SlotSubmit)
	return p
}

func (m *Model) Init() tea.Cmd {
	if err := m.SwitchTab(ModeLogin); err != nil {
		m.logger.Error("initial tab", "error", err)
	}
	return textinput.Blink
}

func (m *Model) Mode() Mode {
	return m.mode
}

// Scope is the key scope of the visible panel.
func (m *Model) Scope() string {
	return m.mode.scope()
}

func (m *Model) TabActive(mode Mode) bool {
	return mode.valid() && m.tabs[mode].Active
}

func (m *Model) PanelVisible(mode Mode) bool {
	return mode.valid() && m.panels[mode].visible
}

func (m *Model) Button(mode Mode) Button {
	if !mode.valid() {
		return Button{}
	}
	return m.panels[mode].button
}

func (m *Model) Value(id FieldID) string {
	in, ok := m.inputs[id]
	if !ok {
		return ""
	}
	return in.Value()
}

func (m *Model) SetValue(id FieldID, v string) error {
	in, ok := m.inputs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	in.SetValue(v)
	return nil
}

func (m *Model) TermsAccepted() bool {
	return m.terms
}

func (m *Model) SetTermsAccepted(v bool) {
	m.terms = v
}

// Focused is the focus slot of the visible panel.
func (m *Model) Focused() FieldID {
	return m.panels[m.mode].focused()
}

func (m *Model) Toasts() []toast.Toast {
	return m.toasts.Items()
}

func (m *Model) clear(ids ...FieldID) {
	for _, id := range ids {
		if in, ok := m.inputs[id]; ok {
			in.Reset()
		}
	}
}
