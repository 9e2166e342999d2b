package quotes

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	text    lipgloss.Style
	author  lipgloss.Style
	meta    lipgloss.Style
	fav     lipgloss.Style
	tags    lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		text:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("84")),
		author:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		fav:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		tags:    lipgloss.NewStyle().Foreground(lipgloss.Color("109")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
