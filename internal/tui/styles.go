package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorHeader  = lipgloss.Color("39")  // blue
	ColorOK      = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("214") // orange
	ColorError   = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("241") // gray
	ColorBorder  = lipgloss.Color("240")
	ColorAccent  = lipgloss.Color("205") // pink
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorOK)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	cardTitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)

	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	rowStyle         = lipgloss.NewStyle()

	categoryStyle = lipgloss.NewStyle().Foreground(ColorWarning)
)
