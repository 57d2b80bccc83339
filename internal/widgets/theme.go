package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorAccent  = colorBlue
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorSubtext0
	colorTabOff  = colorOverlay1
	colorBorder  = colorSurface2
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 2)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	labelStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	iconStyle         = lipgloss.NewStyle().Foreground(colorOverlay0)

	buttonStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorCrust).
			Bold(true).
			Padding(0, 3)
	buttonFocusedStyle = buttonStyle.
				Background(colorFocus).
				Underline(true)
	buttonDisabledStyle = lipgloss.NewStyle().
				Background(colorSurface0).
				Foreground(colorOverlay0).
				Padding(0, 3)

	toastBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Background(colorBase).
			Foreground(colorText).
			Padding(0, 1)
	toastSuccessStyle = toastBase.BorderForeground(colorSuccess)
	toastErrorStyle   = toastBase.BorderForeground(colorError).Foreground(colorError)

	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	footerBarStyle  = lipgloss.NewStyle().Background(colorMantle)
	brandStyle      = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)
