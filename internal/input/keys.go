// Package input maps raw terminal events to presentation intents.
package input

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/ecoslides/internal/ui/layout"
)

// KeyMap holds the deck-level key bindings.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Fullscreen key.Binding
	Escape     key.Binding
	Confirm    key.Binding
	Outline    key.Binding
	Help       key.Binding
	Scores     key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "pgdown", "space"),
			key.WithHelp("→", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←", "previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last slide"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("⇧↑", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("⇧↓", "scroll down"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("F", "fullscreen"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "right"),
			key.WithHelp("Enter", "continue"),
		),
		Outline: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("G", "go to slide"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "quiz scores"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("Y", "copy question"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
	}
}

// Hint converts a binding to a footer hint.
func Hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

// Bindings lists every binding in display order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.First, k.Last, k.ScrollUp, k.ScrollDown, k.Fullscreen, k.Escape, k.Confirm, k.Outline, k.Help, k.Scores, k.Copy, k.Quit}
}
