package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// NumberField wraps bubbles/textinput as a bounded integer entry.
// Non-digit keystrokes are dropped before they reach the input.
type NumberField struct {
	Label string
	Min   int
	Max   int
	Model textinput.Model
}

// NewNumberField creates a field holding value, clamped to [lo, hi].
func NewNumberField(label string, value, lo, hi int) NumberField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = len(strconv.Itoa(hi))
	ti.SetWidth(ti.CharLimit + 1)

	f := NumberField{Label: label, Min: lo, Max: hi, Model: ti}
	f.SetValue(value)
	return f
}

// Focus focuses the field.
func (f *NumberField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus and normalizes the text to the clamped value.
func (f *NumberField) Blur() {
	f.Model.Blur()
	f.SetValue(f.Value())
}

// Focused reports whether the field has focus.
func (f NumberField) Focused() bool {
	return f.Model.Focused()
}

// SetValue stores v after clamping it to the field bounds.
func (f *NumberField) SetValue(v int) {
	f.Model.SetValue(strconv.Itoa(f.clamp(v)))
	f.Model.CursorEnd()
}

// Step adds delta to the current value.
func (f *NumberField) Step(delta int) {
	f.SetValue(f.Value() + delta)
}

// Value returns the typed number clamped to the field bounds. An empty or
// unparsable entry reads as Min.
func (f NumberField) Value() int {
	n, err := strconv.Atoi(f.Model.Value())
	if err != nil {
		return f.Min
	}
	return f.clamp(n)
}

func (f NumberField) clamp(v int) int {
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// Update forwards editing keys to the input.
func (f NumberField) Update(msg tea.Msg) (NumberField, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" && !isDigits(kmsg.Text) {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// View renders "Label: [value]" with the focused field highlighted.
func (f NumberField) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.Label + ": ")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	if f.Focused() {
		box = box.BorderForeground(theme.Primary)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box.Render(f.Model.View()))
}
