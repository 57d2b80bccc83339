package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

// HelpEntry is one key/description pair shown in the footer.
type HelpEntry struct {
	Keys []string
	Desc string
}

func RenderFooter(entries []HelpEntry, width int) string {
	space := footerBarStyle.Render(" ")
	sep := footerBarStyle.Render("  ")
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if len(e.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(e.Keys...), key.WithHelp(e.Keys[0], e.Desc))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Key)+space+footerDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = footerDescStyle.Render("Sem atalhos")
	}
	line = ansi.Truncate(line, max(1, width), "")
	if w := ansi.StringWidth(line); w < width {
		line += footerBarStyle.Render(strings.Repeat(" ", width-w))
	}
	return line
}
