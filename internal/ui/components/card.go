package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards inside a slide.
// Cards never grow past 72 cells so text stays readable on wide terminals.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded card at the given outer width.
func Card(content string, width int) string {
	return theme.Card.
		Width(width).
		Render(content)
}

// PromptCard wraps content in the double-border reflection card and
// centers it inside width x height.
func PromptCard(content string, width, height int) string {
	card := theme.PromptCard.
		Width(ContentWidth(width)).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// Centered places content in the middle of a width x height box.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
