package windows

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	window  lipgloss.Style
	focused lipgloss.Style
	line    lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		window:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		line:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
