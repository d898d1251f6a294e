package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the player front end.
type Theme struct {
	Primary   lipgloss.Color // accent - track title, filled progress
	Secondary lipgloss.Color // secondary accent - gradient tail

	FgBase   lipgloss.Color // primary text
	FgMuted  lipgloss.Color // secondary text (times, bitrate)
	FgSubtle lipgloss.Color // very dim text

	Border lipgloss.Color
	Error  lipgloss.Color
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7dc4e4"),
	Secondary: lipgloss.Color("#c6a0f6"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("240"),
	Error:  lipgloss.Color("#ed8796"),
}

// Default returns the application theme.
func Default() Theme {
	return defaultTheme
}

// Muted returns a style for secondary text.
func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

// Title returns a style for prominent text.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgBase).Bold(true)
}

// ErrorStyle returns a style for error messages.
func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

// PanelBorder returns a rounded border style for panels.
func (t Theme) PanelBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}
