package main

import "github.com/charmbracelet/lipgloss"

var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	LayerOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	LayerOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	LabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func layerStyle(visible bool) lipgloss.Style {
	if visible {
		return LayerOnStyle
	}
	return LayerOffStyle
}
