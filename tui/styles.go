package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Bold(true)
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle = map[string]lipgloss.Style{
		"Active":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
		"Stagnant": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00")),
		"Extinct":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
		"Paused":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#666688")),
	}
)
