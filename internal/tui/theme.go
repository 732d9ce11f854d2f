package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorPeach   lipgloss.Color = "#fab387"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	setNameStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	statusStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle      = lipgloss.NewStyle().Foreground(colorError)
	paneTitleStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	paneFocusTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	paneBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	paneFocusBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	overlayStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPeach).Padding(0, 1)
	helpStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	barStyle        = lipgloss.NewStyle().Foreground(colorSuccess)
)
