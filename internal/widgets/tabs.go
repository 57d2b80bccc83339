package widgets

import "strings"

// Tab is one selectable heading of the tab bar.
type Tab struct {
	Title  string
	Active bool
}

func RenderTabs(tabs []Tab) string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.Active {
			parts = append(parts, activeTabStyle.Render(t.Title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(t.Title))
		}
	}
	return strings.Join(parts, tabSepStyle.Render("│"))
}

func RenderBrand(name string) string {
	return brandStyle.Render(name)
}
