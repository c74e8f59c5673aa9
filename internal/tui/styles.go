package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spencerwgreene/launchday/internal/config"
)

// styles carries the lipgloss styles derived from the configured theme.
type styles struct {
	title    lipgloss.Style
	digit    lipgloss.Style
	label    lipgloss.Style
	terminal lipgloss.Style
	footer   lipgloss.Style
	particle lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
		digit: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Digit)).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)),
		terminal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(terminalBoxPadding, terminalBoxPadding*2),
		footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		particle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
	}
}
