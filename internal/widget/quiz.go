package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/ecoslides/internal/quiz"
	"github.com/abhisek/ecoslides/internal/store"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// storeTimeout bounds a single results write from the UI loop.
const storeTimeout = 2 * time.Second

// QuizCompletedMsg is emitted once each time a quiz is finished.
type QuizCompletedMsg struct {
	Result quiz.Result
}

// Quiz runs a per-topic quiz.
type Quiz struct {
	ctrl   *quiz.Controller
	choice components.MultiChoice
	deps   Deps
}

// NewQuiz mounts a fresh quiz for topic.
func NewQuiz(topic string, d Deps) (*Quiz, error) {
	ctrl, err := quiz.New(topic, d.Lesson.Questions)
	if err != nil {
		return nil, err
	}
	q := &Quiz{ctrl: ctrl, deps: d}
	q.resetChoice()
	return q, nil
}

// Controller exposes the underlying quiz state.
func (q *Quiz) Controller() *quiz.Controller { return q.ctrl }

func (q *Quiz) resetChoice() {
	cur := q.ctrl.Current()
	q.choice = components.NewMultiChoice(cur.Options, cur.AnswerIndex())
}

func (q *Quiz) Init() tea.Cmd { return nil }

func (q *Quiz) Update(msg tea.Msg) (Widget, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return q, nil
	}
	st := q.ctrl.Snapshot()

	if kmsg.String() == "r" {
		q.ctrl.Restart()
		q.resetChoice()
		return q, nil
	}

	switch {
	case st.Complete:
		return q, nil

	case st.ExplanationVisible:
		switch kmsg.String() {
		case "enter", "n":
			q.ctrl.Advance()
			if q.ctrl.Snapshot().Complete {
				return q, q.complete()
			}
			q.resetChoice()
		}
		return q, nil
	}

	q.choice, _ = q.choice.Update(msg)
	if q.choice.Answered() {
		q.ctrl.SelectIndex(q.choice.ChosenIndex)
	}
	return q, nil
}

// complete records the result and announces it.
func (q *Quiz) complete() tea.Cmd {
	res := q.ctrl.Result()
	log := q.deps.logger()
	log.Info("quiz completed",
		zap.String("topic", res.Topic),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.Stringer("tier", res.Tier),
	)

	if q.deps.Repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		err := q.deps.Repo.AppendQuizResult(ctx, store.QuizResultData{
			SessionID: q.deps.SessionID,
			Topic:     res.Topic,
			Score:     res.Score,
			Total:     res.Total,
			Tier:      res.Tier.String(),
		})
		if err != nil {
			log.Warn("record quiz result", zap.Error(err))
		}
	}

	return func() tea.Msg { return QuizCompletedMsg{Result: res} }
}

func (q *Quiz) KeyHints() []layout.KeyHint {
	st := q.ctrl.Snapshot()
	switch {
	case st.Complete:
		return []layout.KeyHint{{Key: "R", Description: "take quiz again"}}
	case st.ExplanationVisible:
		label := "next question"
		if st.Cursor == st.Total-1 {
			label = "see results"
		}
		return []layout.KeyHint{{Key: "Enter", Description: label}}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "answer"},
		{Key: "↑↓", Description: "choose"},
	}
}

func (q *Quiz) View(width int) string {
	cw := components.ContentWidth(width)
	st := q.ctrl.Snapshot()
	if st.Complete {
		return q.resultView(cw)
	}

	cur := q.ctrl.Current()
	var b strings.Builder
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", st.Cursor+1, st.Total),
		st.Cursor+1, st.Total, false, cw,
	).View())
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Width(cw).Render(cur.Question))
	b.WriteString("\n\n")
	b.WriteString(q.choice.View())

	if st.ExplanationVisible {
		b.WriteString("\n")
		verdict := theme.Correct.Render("✓ Correct!")
		if !q.ctrl.LastCorrect() {
			verdict = theme.Incorrect.Render("✗ Not quite")
		}
		b.WriteString(verdict + "\n")
		b.WriteString(theme.Dimmed.Render("You selected: "+st.Selection) + "\n")
		if !q.ctrl.LastCorrect() {
			b.WriteString(theme.Dimmed.Render("Correct answer: "+cur.Answer) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw).Render(cur.Explanation))
	}
	return b.String()
}

func (q *Quiz) resultView(cw int) string {
	res := q.ctrl.Result()
	pct := int(q.ctrl.Accuracy()*100 + 0.5)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(res.Tier.Emoji() + "  Quiz Complete! 🎉"),
		"",
		fmt.Sprintf("You scored %d out of %d (%d%%)", res.Score, res.Total, pct),
		"",
		theme.Selected.Render(res.Tier.Message(res.Topic)),
		"",
		theme.Hint.Render("Press R to take quiz again"),
	}
	return components.Card(lipgloss.JoinVertical(lipgloss.Center, lines...), cw)
}
