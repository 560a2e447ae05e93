// Package outline implements the jump-to-slide list.
package outline

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/input"
	"github.com/abhisek/ecoslides/internal/router"
	"github.com/abhisek/ecoslides/internal/screen"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// OutlineScreen lists every slide; Enter closes the list and jumps.
type OutlineScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*OutlineScreen)(nil)
var _ screen.KeyHintProvider = (*OutlineScreen)(nil)

// New builds the list with current preselected.
func New(lesson *content.Lesson, current int) *OutlineScreen {
	items := make([]components.MenuItem, 0, lesson.TotalSlides())
	for _, s := range lesson.Slides {
		target := s.Index
		detail := ""
		if _, gated := lesson.PromptFor(target); gated {
			detail = "💭"
		}
		if s.Widget != content.WidgetNone {
			detail += " [" + string(s.Widget) + "]"
		}
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%2d. %s", s.Index, s.Title),
			Detail: detail,
			Action: func() tea.Cmd {
				return tea.Sequence(
					func() tea.Msg { return router.PopScreenMsg{} },
					func() tea.Msg { return input.JumpMsg{Slide: target} },
				)
			},
		})
	}
	m := components.NewMenu(items)
	m.Select(current - 1)
	return &OutlineScreen{menu: m}
}

func (s *OutlineScreen) Init() tea.Cmd { return nil }

func (s *OutlineScreen) Title() string { return "Outline" }

func (s *OutlineScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Go to slide"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the highlighted slide index.
func (s *OutlineScreen) Selected() int { return s.menu.Selected + 1 }

func (s *OutlineScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *OutlineScreen) View(width, height int) string {
	s.menu.Height = max(height-4, 1)
	title := theme.Heading.Render("Slides")
	hint := theme.Hint.Render("💭 opens with a discussion prompt")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", s.menu.View(), hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}
