package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	TotalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	FocusedCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#04B575")).
				Bold(true)

	CursorCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#626262"))

	UnsetCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SelectedPlayerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true)

	WinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Theme holds the gradient stops used for score coloring.
type Theme struct {
	stops []colorful.Color
}

// DefaultTheme picks gradient endpoints for the terminal background:
// the web app's red/green/blue ramp on dark terminals, darker variants
// on light ones so low-contrast greens stay readable.
func DefaultTheme(darkBackground bool) Theme {
	if darkBackground {
		return Theme{stops: []colorful.Color{
			{R: 1, G: 0, B: 0},
			{R: 0, G: 1, B: 0},
			{R: 0, G: 0.83, B: 1},
		}}
	}
	return Theme{stops: []colorful.Color{
		{R: 0.8, G: 0, B: 0},
		{R: 0, G: 0.55, B: 0},
		{R: 0, G: 0.45, B: 0.8},
	}}
}

// ScoreColor maps a score onto the gradient, normalised over the
// configured display range: (value - floor) / span, clamped to [0, 1].
// With the default Nerts range of -13..39 a full nerts pile loss is
// deep red and a table-sweeping round is blue.
func (t Theme) ScoreColor(value, floor, span int) lipgloss.Color {
	if span <= 0 {
		span = 1
	}
	pos := (float64(value) - float64(floor)) / float64(span)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}

	var c colorful.Color
	if pos < 0.5 {
		c = t.stops[0].BlendRgb(t.stops[1], pos*2)
	} else {
		c = t.stops[1].BlendRgb(t.stops[2], (pos-0.5)*2)
	}
	return lipgloss.Color(c.Hex())
}

// medal returns the decoration for a leaderboard position once the game
// is over. Positions past third get nothing.
func medal(place int) string {
	switch place {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return ""
	}
}
