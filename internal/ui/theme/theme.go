package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — chalk and stone with a warm accent
var (
	Primary   = lipgloss.Color("#F97316") // Burnt Orange
	Secondary = lipgloss.Color("#0EA5E9") // Sky Blue
	Accent    = lipgloss.Color("#FACC15") // Chalk Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#1C1917") // Charcoal
	BgCard    = lipgloss.Color("#292524") // Warm Stone
	Border    = lipgloss.Color("#44403C") // Granite
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Sent = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Toggle buttons (outcome/style/difficulty/tag groups)
var (
	ToggleActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	ToggleInactive = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgCard).
			Padding(0, 1)

	ToggleFocused = lipgloss.NewStyle().
			Foreground(Primary).
			Background(BgCard).
			Bold(true).
			Padding(0, 1)
)

// OutcomeColor maps an outcome label to its badge color.
func OutcomeColor(outcome string) color.Color {
	switch outcome {
	case "flash":
		return Accent
	case "send":
		return Success
	case "dirty":
		return Secondary
	case "fail":
		return Error
	default:
		return TextDim
	}
}
