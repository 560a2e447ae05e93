// Package quiz implements a per-topic multiple-choice quiz session.
package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/ecoslides/internal/content"
)

// ErrNoQuestions is returned when a topic has no questions.
var ErrNoQuestions = errors.New("topic has no questions")

// State is a read-only view of a quiz session.
type State struct {
	Cursor             int
	Score              int
	Total              int
	Selection          string // "" until an option is chosen
	ExplanationVisible bool
	Complete           bool
}

// Controller runs one quiz over the questions of a single topic.
type Controller struct {
	topic     string
	questions []content.Question

	cursor    int
	score     int
	selection string
	revealed  bool
	complete  bool
}

// New builds a controller for topic from the question table, keeping
// table order.
func New(topic string, table []content.Question) (*Controller, error) {
	var qs []content.Question
	for _, q := range table {
		if q.Topic == topic {
			qs = append(qs, q)
		}
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoQuestions, topic)
	}
	return &Controller{topic: topic, questions: qs}, nil
}

// Topic returns the quiz topic.
func (c *Controller) Topic() string { return c.topic }

// Len returns the number of questions.
func (c *Controller) Len() int { return len(c.questions) }

// Current returns the question under the cursor.
func (c *Controller) Current() content.Question {
	return c.questions[c.cursor]
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() State {
	return State{
		Cursor:             c.cursor,
		Score:              c.score,
		Total:              len(c.questions),
		Selection:          c.selection,
		ExplanationVisible: c.revealed,
		Complete:           c.complete,
	}
}

// Select records choice for the current question and reveals the
// explanation. Ignored once an answer is showing or the quiz is over.
// Reports whether the selection was accepted.
func (c *Controller) Select(choice string) bool {
	if c.revealed || c.complete {
		return false
	}
	c.selection = choice
	c.revealed = true
	if c.Current().IsCorrect(choice) {
		c.score++
	}
	return true
}

// SelectIndex selects the option at i of the current question.
func (c *Controller) SelectIndex(i int) bool {
	opts := c.Current().Options
	if i < 0 || i >= len(opts) {
		return false
	}
	return c.Select(opts[i])
}

// LastCorrect reports whether the revealed selection was right.
func (c *Controller) LastCorrect() bool {
	return c.revealed && c.Current().IsCorrect(c.selection)
}

// Advance moves past a revealed answer. On the last question it
// completes the quiz.
func (c *Controller) Advance() bool {
	if !c.revealed || c.complete {
		return false
	}
	if c.cursor == len(c.questions)-1 {
		c.complete = true
		return true
	}
	c.cursor++
	c.selection = ""
	c.revealed = false
	return true
}

// Restart returns the session to its initial state.
func (c *Controller) Restart() {
	c.cursor = 0
	c.score = 0
	c.selection = ""
	c.revealed = false
	c.complete = false
}

// Accuracy returns score / total.
func (c *Controller) Accuracy() float64 {
	return float64(c.score) / float64(len(c.questions))
}

// Tier returns the performance tier for the current score.
func (c *Controller) Tier() Tier {
	return TierFor(c.Accuracy())
}

// Result summarizes a finished session.
type Result struct {
	Topic string
	Score int
	Total int
	Tier  Tier
}

// Result returns the session summary.
func (c *Controller) Result() Result {
	return Result{Topic: c.topic, Score: c.score, Total: len(c.questions), Tier: c.Tier()}
}
