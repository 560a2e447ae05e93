package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ecoslides/internal/deck"
)

// DefaultSwipeThreshold is the minimum horizontal drag, in cells.
const DefaultSwipeThreshold = 10

// ClassifySwipe turns a drag from (x0, y0) to (x1, y1) into a direction.
// Dragging left moves forward and dragging right moves backward. Drags
// that are too short or mostly vertical return ok == false.
func ClassifySwipe(x0, y0, x1, y1, threshold int) (dir deck.Direction, ok bool) {
	dx := x0 - x1
	dy := y0 - y1
	if abs(dx) <= threshold || abs(dx) <= abs(dy) {
		return 0, false
	}
	if dx > 0 {
		return deck.Forward, true
	}
	return deck.Backward, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SwipeTracker pairs mouse press and release events into swipes.
type SwipeTracker struct {
	Threshold int

	pressed bool
	x, y    int
}

// NewSwipeTracker creates a tracker; threshold <= 0 uses the default.
func NewSwipeTracker(threshold int) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{Threshold: threshold}
}

// Handle consumes a mouse message. It returns a NavigateMsg command when
// a release completes a swipe, and nil otherwise.
func (s *SwipeTracker) Handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		m := msg.Mouse()
		if m.Button != tea.MouseLeft {
			return nil
		}
		s.pressed = true
		s.x, s.y = m.X, m.Y
	case tea.MouseReleaseMsg:
		if !s.pressed {
			return nil
		}
		s.pressed = false
		m := msg.Mouse()
		dir, ok := ClassifySwipe(s.x, s.y, m.X, m.Y, s.Threshold)
		if !ok {
			return nil
		}
		return func() tea.Msg { return NavigateMsg{Direction: dir} }
	}
	return nil
}
