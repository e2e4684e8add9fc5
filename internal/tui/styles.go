package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
