package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/abhisek/ecoslides/internal/content"
)

func lessonPrompts() []content.Prompt {
	return []content.Prompt{
		{Slide: 4, Question: "biotic vs abiotic?"},
		{Slide: 6, Question: "competition?"},
		{Slide: 8, Question: "counting?"},
		{Slide: 5, Question: "metapopulations?"},
	}
}

func newLessonNav(t *testing.T) *Navigator {
	t.Helper()
	n, err := New(15, lessonPrompts())
	require.NoError(t, err)
	return n
}

func TestNew_Validation(t *testing.T) {
	_, err := New(0, nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)

	_, err = New(3, []content.Prompt{{Slide: 4}})
	assert.Error(t, err)

	_, err = New(5, []content.Prompt{{Slide: 2}, {Slide: 2}})
	assert.Error(t, err)

	n, err := New(5, nil)
	require.NoError(t, err)
	assert.Equal(t, State{CurrentSlide: 1}, n.Snapshot())
}

func TestRequestAdvance_Bounds(t *testing.T) {
	n := newLessonNav(t)

	assert.False(t, n.RequestAdvance(Backward))
	assert.Equal(t, 1, n.Current())

	n.JumpToLast()
	assert.False(t, n.RequestAdvance(Forward))
	assert.Equal(t, 15, n.Current())
}

func TestRequestAdvance_InvalidDirection(t *testing.T) {
	n := newLessonNav(t)
	assert.False(t, n.RequestAdvance(Direction(2)))
	assert.False(t, n.RequestAdvance(Direction(0)))
	assert.Equal(t, State{CurrentSlide: 1}, n.Snapshot())
}

func TestRequestAdvance_UngatedStep(t *testing.T) {
	n := newLessonNav(t)
	assert.True(t, n.RequestAdvance(Forward))
	assert.Equal(t, State{CurrentSlide: 2}, n.Snapshot())
}

// Walkthrough of the gated forward flow from slide 3.
func TestGatedForward_ConfirmFlow(t *testing.T) {
	n := newLessonNav(t)
	n.Seek(3)

	n.RequestAdvance(Forward)
	assert.Equal(t, State{CurrentSlide: 3, PendingSlide: 4, PromptActive: true}, n.Snapshot())

	p, ok := n.ActivePrompt()
	require.True(t, ok)
	assert.Equal(t, 4, p.Slide)

	assert.True(t, n.ConfirmPrompt())
	assert.Equal(t, State{CurrentSlide: 4}, n.Snapshot())

	// slide 5 is also gated
	n.RequestAdvance(Forward)
	assert.Equal(t, State{CurrentSlide: 4, PendingSlide: 5, PromptActive: true}, n.Snapshot())
}

func TestGatedForward_CancelFlow(t *testing.T) {
	n := newLessonNav(t)
	n.Seek(7)

	n.RequestAdvance(Forward)
	assert.Equal(t, State{CurrentSlide: 7, PendingSlide: 8, PromptActive: true}, n.Snapshot())

	assert.True(t, n.CancelPrompt())
	assert.Equal(t, State{CurrentSlide: 7}, n.Snapshot())
}

func TestGatedBackward_IsSymmetric(t *testing.T) {
	n := newLessonNav(t)
	n.Seek(7)

	n.RequestAdvance(Backward)
	assert.Equal(t, State{CurrentSlide: 7, PendingSlide: 6, PromptActive: true}, n.Snapshot())

	n.ConfirmPrompt()
	assert.Equal(t, 6, n.Current())
}

func TestPromptActive_ForwardIsNoopBackwardCancels(t *testing.T) {
	n := newLessonNav(t)
	n.Seek(3)
	n.RequestAdvance(Forward)

	assert.False(t, n.RequestAdvance(Forward))
	assert.Equal(t, State{CurrentSlide: 3, PendingSlide: 4, PromptActive: true}, n.Snapshot())

	assert.True(t, n.RequestAdvance(Backward))
	assert.Equal(t, State{CurrentSlide: 3}, n.Snapshot())
}

func TestConfirmCancel_NoopWithoutPrompt(t *testing.T) {
	n := newLessonNav(t)
	n.Seek(2)
	assert.False(t, n.ConfirmPrompt())
	assert.False(t, n.CancelPrompt())
	assert.Equal(t, State{CurrentSlide: 2}, n.Snapshot())
}

func TestJumps_ClearPrompt(t *testing.T) {
	n := newLessonNav(t)
	n.Seek(3)
	n.RequestAdvance(Forward)

	n.JumpToLast()
	assert.Equal(t, State{CurrentSlide: 15}, n.Snapshot())

	n.Seek(5)
	n.RequestAdvance(Forward)
	n.JumpToFirst()
	assert.Equal(t, State{CurrentSlide: 1}, n.Snapshot())
}

func TestGoTo(t *testing.T) {
	n := newLessonNav(t)

	assert.True(t, n.GoTo(10))
	assert.Equal(t, 10, n.Current())

	assert.False(t, n.GoTo(0))
	assert.False(t, n.GoTo(16))
	assert.False(t, n.GoTo(10))

	assert.True(t, n.GoTo(8))
	assert.Equal(t, State{CurrentSlide: 10, PendingSlide: 8, PromptActive: true}, n.Snapshot())

	// no jumping around while a prompt is up
	assert.False(t, n.GoTo(2))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.Equal(t, "Direction(3)", Direction(3).String())
}

// navAction applies one randomly chosen operation.
func navAction(t *rapid.T, n *Navigator) {
	switch rapid.IntRange(0, 6).Draw(t, "op") {
	case 0:
		n.RequestAdvance(Forward)
	case 1:
		n.RequestAdvance(Backward)
	case 2:
		n.ConfirmPrompt()
	case 3:
		n.CancelPrompt()
	case 4:
		n.JumpToFirst()
	case 5:
		n.JumpToLast()
	case 6:
		n.GoTo(rapid.IntRange(-2, n.Total()+2).Draw(t, "goto"))
	}
}

func genNav(t *rapid.T) *Navigator {
	total := rapid.IntRange(1, 20).Draw(t, "total")
	gated := rapid.SliceOfN(rapid.Bool(), total, total).Draw(t, "gated")
	var prompts []content.Prompt
	for i, g := range gated {
		if g {
			prompts = append(prompts, content.Prompt{Slide: i + 1, Question: "q"})
		}
	}
	n, err := New(total, prompts)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return n
}

func TestProperty_StateInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := genNav(t)
		steps := rapid.IntRange(0, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			navAction(t, n)
			s := n.Snapshot()
			if s.CurrentSlide < 1 || s.CurrentSlide > n.Total() {
				t.Fatalf("current %d outside [1, %d]", s.CurrentSlide, n.Total())
			}
			if s.PromptActive != (s.PendingSlide != 0) {
				t.Fatalf("prompt flag %v disagrees with pending %d", s.PromptActive, s.PendingSlide)
			}
			if s.PromptActive && !n.Gated(s.PendingSlide) {
				t.Fatalf("pending slide %d is not gated", s.PendingSlide)
			}
		}
	})
}

func TestProperty_GatedStepParksTarget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := genNav(t)
		for i := rapid.IntRange(0, 20).Draw(t, "warmup"); i > 0; i-- {
			navAction(t, n)
		}
		if n.Snapshot().PromptActive {
			return
		}
		dir := rapid.SampledFrom([]Direction{Forward, Backward}).Draw(t, "dir")
		before := n.Current()
		target := before + int(dir)
		if target < 1 || target > n.Total() {
			return
		}
		n.RequestAdvance(dir)
		s := n.Snapshot()
		if n.Gated(target) {
			if !s.PromptActive || s.PendingSlide != target || s.CurrentSlide != before {
				t.Fatalf("gated step to %d: got %+v", target, s)
			}
		} else if s.CurrentSlide != target || s.PromptActive {
			t.Fatalf("ungated step to %d: got %+v", target, s)
		}
	})
}

func TestProperty_ConfirmAndCancel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := genNav(t)
		for i := rapid.IntRange(0, 30).Draw(t, "warmup"); i > 0; i-- {
			navAction(t, n)
		}
		s := n.Snapshot()
		if !s.PromptActive {
			return
		}
		if rapid.Bool().Draw(t, "confirm") {
			n.ConfirmPrompt()
			if got := n.Snapshot(); got != (State{CurrentSlide: s.PendingSlide}) {
				t.Fatalf("confirm from %+v: got %+v", s, got)
			}
			return
		}
		n.CancelPrompt()
		if got := n.Snapshot(); got != (State{CurrentSlide: s.CurrentSlide}) {
			t.Fatalf("cancel from %+v: got %+v", s, got)
		}
	})
}

func TestProperty_JumpToFirstFromAnyState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := genNav(t)
		for i := rapid.IntRange(0, 30).Draw(t, "warmup"); i > 0; i-- {
			navAction(t, n)
		}
		n.JumpToFirst()
		if got := n.Snapshot(); got != (State{CurrentSlide: 1}) {
			t.Fatalf("jumpToFirst: got %+v", got)
		}
	})
}
