package table

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	key    lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		key:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
