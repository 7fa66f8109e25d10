package screens

import "github.com/charmbracelet/lipgloss"

var (
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")).Italic(true)
)
