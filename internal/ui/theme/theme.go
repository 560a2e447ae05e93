package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: forest and sky tones
var (
	Primary   = lipgloss.Color("#10B981") // Emerald
	Secondary = lipgloss.Color("#6366F1") // Indigo
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Prompt    = lipgloss.Color("#7C3AED") // Violet
	Biotic    = lipgloss.Color("#16A34A") // Leaf
	Abiotic   = lipgloss.Color("#2563EB") // Water
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

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	PromptCard = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Prompt).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Success).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Habitat map used by the quadrat simulation.
var (
	Ground = lipgloss.NewStyle().
		Background(BgCard)

	QuadratFrame = lipgloss.NewStyle().
			Background(Accent)

	Counted = lipgloss.NewStyle().
		Background(Success)
)

var categoryColors = map[string]color.Color{
	"Plant":          Success,
	"Sessile Animal": Secondary,
	"Slow Animal":    Accent,
	"Fungi":          Prompt,
}

// Category styles an organism category label. Unknown categories use Text.
func Category(name string) lipgloss.Style {
	c, ok := categoryColors[name]
	if !ok {
		c = Text
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
