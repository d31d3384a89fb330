package roster

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	cell         lipgloss.Style
	blockedRow   lipgloss.Style
	activeBadge  lipgloss.Style
	blockedBadge lipgloss.Style
	empty        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cell:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		blockedRow:   lipgloss.NewStyle().Faint(true),
		activeBadge:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		blockedBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:        lipgloss.NewStyle().Faint(true),
	}
}
