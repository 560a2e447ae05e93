// Package deck holds the slide navigation state machine.
//
// A Navigator tracks the current slide and intercepts moves into slides
// that have a discussion prompt: the move is parked as the pending slide
// until the prompt is confirmed or cancelled.
package deck

import (
	"errors"
	"fmt"

	"github.com/abhisek/ecoslides/internal/content"
)

// Direction is a single-step move through the deck.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ErrEmptyDeck is returned when a navigator is built for zero slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// State is a read-only view of the navigation state.
// PendingSlide is 0 when no move is parked.
type State struct {
	CurrentSlide int
	PendingSlide int
	PromptActive bool
}

// Navigator owns the navigation state for one presentation.
type Navigator struct {
	total   int
	prompts map[int]content.Prompt

	current int
	pending int
	active  bool
}

// New creates a Navigator positioned on slide 1.
func New(total int, prompts []content.Prompt) (*Navigator, error) {
	if total < 1 {
		return nil, ErrEmptyDeck
	}
	byTarget := make(map[int]content.Prompt, len(prompts))
	for _, p := range prompts {
		if p.Slide < 1 || p.Slide > total {
			return nil, fmt.Errorf("prompt targets slide %d outside [1, %d]", p.Slide, total)
		}
		if _, dup := byTarget[p.Slide]; dup {
			return nil, fmt.Errorf("duplicate prompt for slide %d", p.Slide)
		}
		byTarget[p.Slide] = p
	}
	return &Navigator{total: total, prompts: byTarget, current: 1}, nil
}

// Total returns the number of slides.
func (n *Navigator) Total() int { return n.total }

// Current returns the current slide index.
func (n *Navigator) Current() int { return n.current }

// Snapshot returns a copy of the navigation state.
func (n *Navigator) Snapshot() State {
	return State{CurrentSlide: n.current, PendingSlide: n.pending, PromptActive: n.active}
}

// Gated reports whether entering slide requires a prompt.
func (n *Navigator) Gated(slide int) bool {
	_, ok := n.prompts[slide]
	return ok
}

// ActivePrompt returns the prompt being shown, if any.
func (n *Navigator) ActivePrompt() (content.Prompt, bool) {
	if !n.active {
		return content.Prompt{}, false
	}
	p, ok := n.prompts[n.pending]
	return p, ok
}

// RequestAdvance moves one slide in dir. Moves out of range and invalid
// directions are ignored. A move into a gated slide parks it as pending
// and activates the prompt. While a prompt is active, Backward cancels it
// and Forward does nothing. Reports whether the state changed.
func (n *Navigator) RequestAdvance(dir Direction) bool {
	if dir != Forward && dir != Backward {
		return false
	}
	if n.active {
		if dir == Backward {
			return n.CancelPrompt()
		}
		return false
	}
	return n.moveTo(n.current + int(dir))
}

// GoTo moves directly to slide, gated the same way as a single step.
func (n *Navigator) GoTo(slide int) bool {
	if n.active || slide == n.current {
		return false
	}
	return n.moveTo(slide)
}

func (n *Navigator) moveTo(target int) bool {
	if target < 1 || target > n.total {
		return false
	}
	if n.Gated(target) {
		n.pending = target
		n.active = true
		return true
	}
	n.current = target
	return true
}

// ConfirmPrompt enters the pending slide. No-op unless a prompt is active.
func (n *Navigator) ConfirmPrompt() bool {
	if !n.active || n.pending == 0 {
		return false
	}
	n.current = n.pending
	n.clearPrompt()
	return true
}

// CancelPrompt dismisses the prompt and stays on the slide that was
// current when the gated move was requested. A Backward request while a
// prompt is up cancels this way rather than retreating a further slide.
func (n *Navigator) CancelPrompt() bool {
	if !n.active {
		return false
	}
	n.clearPrompt()
	return true
}

// Seek places the deck on slide without gating. Out-of-range slides are
// ignored.
func (n *Navigator) Seek(slide int) bool {
	if slide < 1 || slide > n.total {
		return false
	}
	n.current = slide
	n.clearPrompt()
	return true
}

// JumpToFirst moves to slide 1, bypassing and clearing any prompt.
func (n *Navigator) JumpToFirst() {
	n.current = 1
	n.clearPrompt()
}

// JumpToLast moves to the last slide, bypassing and clearing any prompt.
func (n *Navigator) JumpToLast() {
	n.current = n.total
	n.clearPrompt()
}

func (n *Navigator) clearPrompt() {
	n.pending = 0
	n.active = false
}
