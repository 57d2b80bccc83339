package screen

import (
	"strings"

	"github.com/jask/ecociclo/internal/toast"
	"github.com/jask/ecociclo/internal/widgets"
)

const toastWidth = 36

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := max(40, m.width)
	height := max(8, m.height)

	header := widgets.RenderBrand("Ecociclo") + "  " + widgets.RenderTabs(m.tabs[:])
	var body string
	for _, p := range m.panels {
		if p.visible {
			body = m.renderPanel(p, min(width, 60))
		}
	}
	main := widgets.FitHeight(header+"\n\n"+body, height-1)
	main = widgets.OverlayTopRight(main, widgets.RenderNotices(m.notices(), toastWidth), width, height-1, 1)
	return main + "\n" + widgets.RenderFooter(m.helpEntries(), width)
}

func (m *Model) renderPanel(p *panel, width int) string {
	rows := make([]string, 0, len(p.ring))
	for i, slot := range p.ring {
		focused := i == p.focus
		switch slot {
		case SlotTerms:
			rows = append(rows, widgets.RenderCheckbox(termsLabel, m.terms, focused))
		case SlotSubmit:
			rows = append(rows, widgets.RenderButton(p.button.Label, p.button.Disabled, focused))
		default:
			f := widgets.Field{
				Label:   fieldLabel(slot),
				Input:   m.inputs[slot].View(),
				Focused: focused,
			}
			if icon, ok := m.reveal[slot]; ok {
				f.Icon = icon.Icon.Glyph()
			}
			rows = append(rows, f.Render(width-4))
		}
	}
	return widgets.Panel{Title: p.title, Rows: rows}.Render(width)
}

func (m *Model) notices() []widgets.Notice {
	items := m.toasts.Items()
	out := make([]widgets.Notice, 0, len(items))
	for _, t := range items {
		out = append(out, widgets.Notice{Text: t.Message, Error: t.Kind == toast.KindError})
	}
	return out
}

func (m *Model) helpEntries() []widgets.HelpEntry {
	bindings := m.keys.BindingsForScope(m.Scope())
	out := make([]widgets.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, widgets.HelpEntry{Keys: b.Keys, Desc: b.Description})
	}
	return out
}

func fieldLabel(id FieldID) string {
	for _, specs := range [][]fieldSpec{loginFields, registerFields} {
		for _, f := range specs {
			if f.id == id {
				return f.label
			}
		}
	}
	return strings.TrimSpace(string(id))
}
