package widget

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/quadrat"
	"github.com/abhisek/ecoslides/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// mockRepo records quiz results in memory.
type mockRepo struct {
	results []store.QuizResultData
	err     error
}

func (m *mockRepo) AppendQuizResult(_ context.Context, d store.QuizResultData) error {
	if m.err != nil {
		return m.err
	}
	m.results = append(m.results, d)
	return nil
}
func (m *mockRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (m *mockRepo) QueryQuizResults(context.Context, store.QueryOpts) ([]store.QuizResult, error) {
	return nil, nil
}
func (m *mockRepo) QuerySessionEvents(context.Context, store.QueryOpts) ([]store.SessionEvent, error) {
	return nil, nil
}
func (m *mockRepo) TopicStats(context.Context) ([]store.TopicStat, error) { return nil, nil }
func (m *mockRepo) Reset(context.Context) (store.ResetCounts, error) {
	return store.ResetCounts{}, nil
}

func testDeps(t *testing.T) (Deps, *mockRepo) {
	t.Helper()
	l, err := content.Default()
	require.NoError(t, err)
	repo := &mockRepo{}
	return Deps{Lesson: l, Repo: repo, SessionID: "s-1", Rand: quadrat.Seeded(7)}, repo
}

func TestMount(t *testing.T) {
	d, _ := testDeps(t)
	want := map[int]string{1: "", 4: "*widget.Factors", 5: "*widget.Patches", 9: "*widget.Quadrat", 10: "*widget.Recapture", 11: "*widget.Quiz"}
	for idx, typ := range want {
		s, _ := d.Lesson.Slide(idx)
		w, err := Mount(s, d)
		require.NoError(t, err)
		if typ == "" {
			assert.Nil(t, w, "slide %d", idx)
			continue
		}
		assert.Equal(t, typ, typeName(w), "slide %d", idx)
	}

	_, err := Mount(content.Slide{Index: 3, Widget: "slider"}, d)
	assert.Error(t, err)
}

func typeName(w Widget) string {
	switch w.(type) {
	case *Factors:
		return "*widget.Factors"
	case *Patches:
		return "*widget.Patches"
	case *Quadrat:
		return "*widget.Quadrat"
	case *Recapture:
		return "*widget.Recapture"
	case *Quiz:
		return "*widget.Quiz"
	}
	return "?"
}

func answerKey(q *Quiz, correct bool) tea.KeyPressMsg {
	i := q.Controller().Current().AnswerIndex()
	if !correct {
		i = (i + 1) % len(q.Controller().Current().Options)
	}
	return keyPress(rune('a' + i))
}

func TestQuiz_FullRunRecordsResult(t *testing.T) {
	d, repo := testDeps(t)
	q, err := NewQuiz("Communities", d)
	require.NoError(t, err)

	var completed []QuizCompletedMsg
	for i := 0; i < q.Controller().Len(); i++ {
		q.Update(answerKey(q, i != 0))
		// A second answer is ignored while the explanation shows.
		q.Update(answerKey(q, true))
		_, cmd := q.Update(specialKey(tea.KeyEnter))
		if cmd != nil {
			if msg, ok := cmd().(QuizCompletedMsg); ok {
				completed = append(completed, msg)
			}
		}
	}

	require.Len(t, completed, 1)
	assert.Equal(t, 2, completed[0].Result.Score)
	require.Len(t, repo.results, 1)
	assert.Equal(t, store.QuizResultData{SessionID: "s-1", Topic: "Communities", Score: 2, Total: 3, Tier: "good"}, repo.results[0])

	out := ansi.Strip(q.View(100))
	assert.Contains(t, out, "Quiz Complete!")
	assert.Contains(t, out, "You scored 2 out of 3 (67%)")
	assert.Contains(t, out, "Good work! Keep studying Communities!")
}

func TestQuiz_RevealShowsCorrectAnswer(t *testing.T) {
	d, _ := testDeps(t)
	q, err := NewQuiz("Populations", d)
	require.NoError(t, err)

	q.Update(answerKey(q, false))
	out := ansi.Strip(q.View(100))
	assert.Contains(t, out, "You selected:")
	assert.Contains(t, out, "Correct answer: Individuals of the same species in a defined area")
	assert.Equal(t, "Enter", q.KeyHints()[0].Key)
}

func TestQuiz_RestartAndStoreFailure(t *testing.T) {
	d, repo := testDeps(t)
	repo.err = assert.AnError
	q, err := NewQuiz("Metapopulations", d)
	require.NoError(t, err)

	for range q.Controller().Len() {
		q.Update(answerKey(q, true))
		q.Update(keyPress('n'))
	}
	assert.True(t, q.Controller().Snapshot().Complete)
	assert.Empty(t, repo.results)

	q.Update(keyPress('r'))
	st := q.Controller().Snapshot()
	assert.False(t, st.Complete)
	assert.Zero(t, st.Score)
	assert.False(t, q.choice.Answered())
}

func TestQuiz_UnknownTopic(t *testing.T) {
	d, _ := testDeps(t)
	_, err := NewQuiz("Biomes", d)
	assert.Error(t, err)
}

func TestQuadrat_PlaceCountReset(t *testing.T) {
	d, _ := testDeps(t)
	w := NewQuadrat(d)

	w.Update(keyPress('c'))
	assert.Contains(t, ansi.Strip(w.View(100)), "Place a quadrat first")
	assert.Len(t, w.KeyHints(), 1)

	w.Update(keyPress('p'))
	frame, ok := w.Sampler().Placed()
	require.True(t, ok)
	assert.Len(t, w.KeyHints(), 3)

	w.Update(keyPress('c'))
	got, ok := w.Sampler().LastCount()
	require.True(t, ok)
	assert.Equal(t, quadrat.CountIn(frame, d.Lesson.Organisms), got)
	assert.Contains(t, ansi.Strip(w.View(100)), "Organisms counted:")

	w.Update(keyPress('x'))
	_, ok = w.Sampler().Placed()
	assert.False(t, ok)
}

func TestQuadrat_CellMapping(t *testing.T) {
	d, _ := testDeps(t)
	w := NewQuadrat(d)
	col, row := w.cellOf(0, 0)
	assert.Equal(t, [2]int{0, 0}, [2]int{col, row})
	col, row = w.cellOf(90, 80)
	assert.Equal(t, [2]int{gridCols - 1, gridRows - 1}, [2]int{col, row})
}

func drainTicks(t *testing.T, w *Recapture, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i <= countUpSteps; i++ {
		msg, ok := cmd().(countTickMsg)
		require.True(t, ok)
		_, cmd = w.Update(msg)
	}
}

func TestRecapture_CalculateCountsUp(t *testing.T) {
	d, _ := testDeps(t)
	w := NewRecapture(d.Lesson.Recapture)
	w.Init()

	assert.Equal(t, "N = (50 × 30) / 10 = 1500 / 10", w.Formula().String())
	_, shown := w.Displayed()
	assert.False(t, shown)

	_, cmd := w.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	n, shown := w.Displayed()
	require.True(t, shown)
	assert.Less(t, n, 150)

	drainTicks(t, w, cmd)
	n, _ = w.Displayed()
	assert.Equal(t, 150, n)
	assert.Contains(t, ansi.Strip(w.View(100)), "Estimated Population: 150")
}

func TestRecapture_StaleTicksIgnored(t *testing.T) {
	d, _ := testDeps(t)
	w := NewRecapture(d.Lesson.Recapture)

	w.Update(specialKey(tea.KeyEnter))
	stale := countTickMsg{owner: w, gen: w.gen, step: countUpSteps}

	w.Update(keyPress('+'))
	assert.Equal(t, 51, w.Formula().Marked)
	_, shown := w.Displayed()
	assert.False(t, shown, "input change hides the old result")

	_, cmd := w.Update(stale)
	assert.Nil(t, cmd)
	_, shown = w.Displayed()
	assert.False(t, shown)

	other := NewRecapture(d.Lesson.Recapture)
	other.Update(specialKey(tea.KeyEnter))
	w.Update(specialKey(tea.KeyEnter))
	w.Update(countTickMsg{owner: other, gen: w.gen, step: countUpSteps})
	n, _ := w.Displayed()
	assert.NotEqual(t, 153, n, "tick from another widget ignored")
}

func TestRecapture_FieldsAndTyping(t *testing.T) {
	d, _ := testDeps(t)
	w := NewRecapture(d.Lesson.Recapture)
	w.Init()

	w.Update(specialKey(tea.KeyTab))
	w.Update(specialKey(tea.KeyTab))
	assert.Equal(t, 2, w.focus)
	w.Update(specialKey(tea.KeyBackspace))
	w.Update(specialKey(tea.KeyBackspace))
	w.Update(keyPress('5'))
	assert.Equal(t, 5, w.Formula().Recaptured)

	w.Update(specialKey(tea.KeyTab))
	assert.Equal(t, 0, w.focus, "focus wraps")
	w.Update(keyPress('-'))
	assert.Equal(t, 49, w.Formula().Marked)
}

func TestFactors_Toggle(t *testing.T) {
	d, _ := testDeps(t)
	f := NewFactors(d.Lesson.Factors)
	assert.Equal(t, KindBiotic, f.Active())
	assert.Contains(t, ansi.Strip(f.View(100)), "Predation")

	f.Update(keyPress('a'))
	assert.Equal(t, KindAbiotic, f.Active())
	f.Update(specialKey(tea.KeyTab))
	assert.Equal(t, KindBiotic, f.Active())
	f.Update(keyPress('z'))
	assert.Equal(t, KindBiotic, f.Active())
}

func TestPatches_SelectToggle(t *testing.T) {
	d, _ := testDeps(t)
	p := NewPatches(d.Lesson.Patches)
	_, ok := p.Selected()
	assert.False(t, ok)

	p.Update(keyPress('2'))
	pt, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, pt.ID)
	assert.Contains(t, ansi.Strip(p.View(100)), "Population B")

	p.Update(keyPress('3'))
	pt, _ = p.Selected()
	assert.Equal(t, 3, pt.ID)

	p.Update(keyPress('3'))
	_, ok = p.Selected()
	assert.False(t, ok)

	p.Update(keyPress('9'))
	_, ok = p.Selected()
	assert.False(t, ok)
}
