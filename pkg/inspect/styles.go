package inspect

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for inspector colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // primary accent
	mintGreen   = lipgloss.Color("#A8E6CF") // success / result states
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	scriptLabelStyle = lipgloss.NewStyle().
				Foreground(mutedGray).
				Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)
)
