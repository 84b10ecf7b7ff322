package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all visual styles of the quiz screens.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Score    lipgloss.Style
	Error    lipgloss.Style

	// Option buttons
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Tables
	TableBorder lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		Good:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Bad:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("88")),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 1),

		TableBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}
