// Package help shows the key reference.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/input"
	"github.com/abhisek/ecoslides/internal/screen"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// Keys available inside slide widgets.
var widgetKeys = []layout.KeyHint{
	{Key: "A-D / 1-4", Description: "answer a quiz question"},
	{Key: "Enter / N", Description: "next quiz question"},
	{Key: "R", Description: "retake quiz"},
	{Key: "P / C / X", Description: "place, count, reset quadrat"},
	{Key: "Tab / ↑↓", Description: "calculator field"},
	{Key: "+ / -", Description: "adjust calculator value"},
	{Key: "B / A", Description: "biotic or abiotic factors"},
	{Key: "1-3", Description: "explore a population patch"},
}

// HelpScreen lists deck and widget keys.
type HelpScreen struct {
	keys input.KeyMap
}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates the help screen for the given key map.
func New(keys input.KeyMap) *HelpScreen {
	return &HelpScreen{keys: keys}
}

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string { return "Help" }

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (h *HelpScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }

func section(title string, hints []layout.KeyHint) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(14)
	var b strings.Builder
	b.WriteString(theme.Heading.Render(title) + "\n")
	for _, hint := range hints {
		b.WriteString("  " + keyStyle.Render(hint.Key) + theme.Body.Render(hint.Description) + "\n")
	}
	return b.String()
}

func (h *HelpScreen) View(width, height int) string {
	deckKeys := make([]layout.KeyHint, 0, len(h.keys.Bindings())+1)
	for _, b := range h.keys.Bindings() {
		deckKeys = append(deckKeys, input.Hint(b))
	}
	deckKeys = append(deckKeys, layout.KeyHint{Key: "Drag", Description: "swipe left or right to change slide"})

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		section("Deck", deckKeys),
		"    ",
		section("Activities", widgetKeys),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, cols)
}
