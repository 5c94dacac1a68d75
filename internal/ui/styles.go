package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#2c3e50", Dark: "#FFFFFF"})

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#7f8c8d", Dark: "#AAAAAA"})

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#7f8c8d", Dark: "#888888"})

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#7f8c8d", Dark: "#D6D6D6"})

	rodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#EEEEEE"})

	plateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#B0B0B0"})

	valveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#34495e")).
			Padding(0, 2)

	solenoidOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e74c3c")).
			Background(lipgloss.Color("#34495e"))

	solenoidOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Background(lipgloss.Color("#34495e"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 3)

	extendButtonColor   = lipgloss.Color("#2ecc71")
	retractButtonColor  = lipgloss.Color("#e74c3c")
	disabledButtonColor = lipgloss.Color("#95a5a6")

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"})

	statusValueStyle = statusStyle.Bold(true)

	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#444444"}).
			Padding(0, 2)

	sheetTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#2c3e50", Dark: "#DDDDDD"})

	sheetLabelStyle = lipgloss.NewStyle().Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#999999"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
