package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, shared with the core theme.
var (
	paletteText     lipgloss.Color = "#cdd6f4"
	paletteSubtext  lipgloss.Color = "#a6adc8"
	paletteOverlay  lipgloss.Color = "#6c7086"
	paletteBorder   lipgloss.Color = "#585b70"
	paletteSurface0 lipgloss.Color = "#313244"
	paletteSurface1 lipgloss.Color = "#45475a"
	paletteAccent   lipgloss.Color = "#89b4fa"
	paletteGreen    lipgloss.Color = "#a6e3a1"
	paletteRed      lipgloss.Color = "#f38ba8"
	paletteYellow   lipgloss.Color = "#f9e2af"
	paletteMauve    lipgloss.Color = "#cba6f7"
)
