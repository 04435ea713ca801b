package tui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(9)
	urlStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"})
	helpStyle   = lipgloss.NewStyle().Faint(true)
)
