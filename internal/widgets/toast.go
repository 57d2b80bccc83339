package widgets

import "github.com/charmbracelet/lipgloss"

// Notice is the render view of one toast.
type Notice struct {
	Text  string
	Error bool
}

// RenderNotices stacks notices top to bottom in the order given.
func RenderNotices(notices []Notice, width int) string {
	if len(notices) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(notices))
	for _, n := range notices {
		style := toastSuccessStyle
		if n.Error {
			style = toastErrorStyle
		}
		rendered = append(rendered, style.Width(max(8, width)).Render(n.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
