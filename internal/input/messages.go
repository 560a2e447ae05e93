package input

import "github.com/abhisek/ecoslides/internal/deck"

// NavigateMsg asks the presentation to step one slide.
type NavigateMsg struct {
	Direction deck.Direction
}

// JumpMsg asks the presentation to go to a specific slide.
type JumpMsg struct {
	Slide int
}
