// Package history shows recorded quiz results inside the deck.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/quiz"
	"github.com/abhisek/ecoslides/internal/screen"
	"github.com/abhisek/ecoslides/internal/store"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

const loadTimeout = 2 * time.Second

type historyLoadedMsg struct {
	Results []store.QuizResult
	Stats   []store.TopicStat
	Err     error
}

// HistoryScreen lists past quiz results with per-topic bests.
type HistoryScreen struct {
	repo     store.EventRepo
	results  []store.QuizResult
	stats    []store.TopicStat
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. A nil repo means history is turned off.
func New(repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.repo == nil {
		s.loaded = true
		return nil
	}
	repo := s.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		results, err := repo.QueryQuizResults(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := repo.TopicStats(ctx)
		if err != nil {
			return historyLoadedMsg{Results: results}
		}
		return historyLoadedMsg{Results: results, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "Quiz Scores"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the highlighted row.
func (s *HistoryScreen) Selected() int { return s.selected }

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.repo == nil:
		return centered.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  History is turned off.")
	case s.errMsg != "":
		return centered.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	case !s.loaded:
		return centered.Foreground(theme.TextDim).
			Render("\n\n  Loading scores...")
	case len(s.results) == 0:
		return centered.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes taken yet. Try one at the end of the deck!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.stats) > 0 {
		b.WriteString("  " + lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("Best by topic") + "\n")
		for _, st := range s.stats {
			tier := quiz.TierFor(st.BestAccuracy)
			b.WriteString(fmt.Sprintf("  %s %-22s %s\n",
				tier.Emoji(),
				st.Topic,
				lipgloss.NewStyle().Foreground(tierColor(tier)).
					Render(fmt.Sprintf("%3.0f%%  (%d attempts)", st.BestAccuracy*100, st.Attempts)),
			))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("Recent") + "\n")
	for i, r := range s.results {
		dateStr := r.Timestamp.Local().Format("Jan 02, 15:04")
		line := fmt.Sprintf("%-13s  %-22s  %d/%d", dateStr, r.Topic, r.Score, r.Total)

		if i == s.selected {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line) + "\n")
		} else {
			b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
		}

		if s.expanded[i] {
			tier, err := quiz.ParseTier(r.Tier)
			if err != nil {
				tier = quiz.TierFor(r.Accuracy())
			}
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			b.WriteString(dim.Render(fmt.Sprintf("      %s %s", tier.Emoji(), tier.Message(r.Topic))) + "\n")
			b.WriteString(dim.Render(fmt.Sprintf("      Session %s", shortID(r.SessionID))) + "\n")
		}
	}

	return b.String()
}

func tierColor(t quiz.Tier) color.Color {
	switch t {
	case quiz.TierExcellent:
		return theme.Success
	case quiz.TierGood:
		return theme.Accent
	default:
		return theme.Error
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
