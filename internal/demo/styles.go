package demo

import "github.com/charmbracelet/lipgloss"

// Color palette for the demo views
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, selection
	SuccessColor = lipgloss.Color("#43BF6D") // Green - positive values
	ErrorColor   = lipgloss.Color("#FF5555") // Red - negative values
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Shared styles for the demo views
var (
	// TitleStyle is for view titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// ItemStyle is for unselected menu entries
	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// SelectedItemStyle is for the menu entry under the cursor
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// DescStyle is for menu entry descriptions
	DescStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// HelpStyle is for the key hints at the bottom of each view
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// PositiveStyle is for counter values >= 0
	PositiveStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// NegativeStyle is for counter values < 0
	NegativeStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
