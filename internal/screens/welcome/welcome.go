// Package welcome shows the title splash before the deck opens.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/router"
	"github.com/abhisek/ecoslides/internal/screen"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const treeArt = `      ▲
     ▲▲▲
    ▲▲▲▲▲
   ▲▲▲▲▲▲▲
  ▲▲▲▲▲▲▲▲▲
      █
  ~~~~~~~~~~~`

// Leaves drifting beside the tree.
var leafFrames = []string{"🍃", "🌱"}

type tickMsg time.Time

// WelcomeScreen animates the splash and hands over to the deck on any key.
type WelcomeScreen struct {
	title        string
	deckFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash for the lesson title. deckFactory builds the screen
// that replaces the splash.
func New(title string, deckFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		title:       title,
		deckFactory: deckFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg, tea.MouseClickMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	deck := w.deckFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: deck}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(treeArt)

	if w.elapsed >= phase1End {
		leaf := leafFrames[w.tickCount%len(leafFrames)]
		other := leafFrames[(w.tickCount+1)%len(leafFrames)]

		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[1] = leaf + "  " + lines[1]
		}
		if len(lines) > 4 {
			lines[4] = lines[4] + "  " + other
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.title),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to begin"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
