package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ecoslides/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a right-aligned
// status in the header, such as the slide counter.
type StatusProvider interface {
	Status() string
}

// EscapeHandler lets a screen claim the Escape key before the app pops
// the screen stack. HandleEscape reports whether the key was consumed.
type EscapeHandler interface {
	HandleEscape() (Screen, tea.Cmd, bool)
}
