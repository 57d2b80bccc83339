package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is a labelled input line. Input is the already rendered input view and
// Icon an optional trailing glyph (the password reveal eye).
type Field struct {
	Label   string
	Input   string
	Icon    string
	Focused bool
}

func (f Field) Render(width int) string {
	label := labelStyle.Render(f.Label)
	if f.Focused {
		label = focusedLabelStyle.Render("› " + f.Label)
	}
	line := f.Input
	if f.Icon != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, f.Input, " ", iconStyle.Render(f.Icon))
	}
	return lipgloss.NewStyle().MaxWidth(max(1, width)).Render(label + "\n" + line)
}

func RenderCheckbox(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if focused {
		return focusedLabelStyle.Render(box + " " + label)
	}
	return labelStyle.Render(box + " " + label)
}

func RenderButton(label string, disabled, focused bool) string {
	switch {
	case disabled:
		return buttonDisabledStyle.Render(label)
	case focused:
		return buttonFocusedStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

// Panel frames the visible form body.
type Panel struct {
	Title string
	Rows  []string
}

func (p Panel) Render(width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(max(10, width-2))
	body := strings.Join(p.Rows, "\n\n")
	if p.Title != "" {
		body = focusedLabelStyle.Render(p.Title) + "\n\n" + body
	}
	return style.Render(body)
}
