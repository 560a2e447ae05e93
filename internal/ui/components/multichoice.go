package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// Labels for the choices, in order.
var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice is a multiple-choice selector. Once a choice is made it
// reveals the correct option and the chosen one.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	ChosenIndex  int // -1 until answered
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Answered reports whether a choice has been made.
func (m MultiChoice) Answered() bool {
	return m.ChosenIndex >= 0
}

// Update moves the cursor and records a choice on enter, a letter or a
// digit. Input after the first choice is ignored.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Answered() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	k := kmsg.String()
	switch k {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		m.ChosenIndex = m.Cursor
	default:
		if i, ok := choiceIndex(k, len(m.Options)); ok {
			m.Cursor = i
			m.ChosenIndex = i
		}
	}
	return m, nil
}

// choiceIndex maps "a".."d" and "1".."4" to an option index.
func choiceIndex(k string, n int) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	c := k[0]
	var i int
	switch {
	case c >= 'a' && c <= 'z':
		i = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		i = int(c - 'A')
	case c >= '1' && c <= '9':
		i = int(c - '1')
	default:
		return 0, false
	}
	if i >= n {
		return 0, false
	}
	return i, true
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if i == m.Cursor && !m.Answered() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Answered() && i == m.CorrectIndex:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case m.Answered() && i == m.ChosenIndex:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case m.Answered():
			b.WriteString(theme.Dimmed.Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
