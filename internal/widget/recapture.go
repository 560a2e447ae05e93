package widget

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/recapture"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// Count-up animation timing.
const (
	countUpSteps    = 30
	countUpInterval = 30 * time.Millisecond
)

// countTickMsg advances the count-up of one calculation. owner and gen
// identify the calculation so ticks from a replaced widget or an earlier
// result are dropped.
type countTickMsg struct {
	owner *Recapture
	gen   int
	step  int
}

// Recapture is the mark-recapture calculator.
type Recapture struct {
	fields [3]components.NumberField
	focus  int

	gen    int
	step   int
	target int
	shown  bool
	err    error
}

// NewRecapture mounts a calculator with the lesson's input ranges.
func NewRecapture(r content.RecaptureRanges) *Recapture {
	w := &Recapture{
		fields: [3]components.NumberField{
			components.NewNumberField("M (Marked)", r.Marked.Default, r.Marked.Min, r.Marked.Max),
			components.NewNumberField("C (Caught)", r.Caught.Default, r.Caught.Min, r.Caught.Max),
			components.NewNumberField("R (Recaptured)", r.Recaptured.Default, r.Recaptured.Min, r.Recaptured.Max),
		},
	}
	return w
}

// Formula returns the formula for the current inputs.
func (w *Recapture) Formula() recapture.Formula {
	return recapture.Formula{
		Marked:     w.fields[0].Value(),
		Caught:     w.fields[1].Value(),
		Recaptured: w.fields[2].Value(),
	}
}

// Displayed returns the value currently shown in the result line.
func (w *Recapture) Displayed() (int, bool) {
	if !w.shown {
		return 0, false
	}
	return recapture.CountUp(w.target, w.step, countUpSteps), true
}

func (w *Recapture) Init() tea.Cmd {
	return w.fields[0].Focus()
}

func (w *Recapture) setFocus(i int) tea.Cmd {
	w.fields[w.focus].Blur()
	w.focus = (i + len(w.fields)) % len(w.fields)
	return w.fields[w.focus].Focus()
}

// invalidate hides a stale result after an input change.
func (w *Recapture) invalidate() {
	w.shown = false
	w.err = nil
	w.gen++
}

func (w *Recapture) tick() tea.Cmd {
	owner, gen, step := w, w.gen, w.step+1
	return tea.Tick(countUpInterval, func(time.Time) tea.Msg {
		return countTickMsg{owner: owner, gen: gen, step: step}
	})
}

func (w *Recapture) calculate() tea.Cmd {
	w.gen++
	w.step = 0
	n, err := w.Formula().Estimate()
	if err != nil {
		w.err = err
		w.shown = false
		return nil
	}
	w.err = nil
	w.target = n
	w.shown = true
	return w.tick()
}

func (w *Recapture) Update(msg tea.Msg) (Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case countTickMsg:
		if msg.owner != w || msg.gen != w.gen || !w.shown {
			return w, nil
		}
		w.step = msg.step
		if w.step >= countUpSteps {
			return w, nil
		}
		return w, w.tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return w, w.setFocus(w.focus + 1)
		case "shift+tab", "up":
			return w, w.setFocus(w.focus - 1)
		case "+", "=":
			w.fields[w.focus].Step(1)
			w.invalidate()
			return w, nil
		case "-", "_":
			w.fields[w.focus].Step(-1)
			w.invalidate()
			return w, nil
		case "enter":
			return w, w.calculate()
		}
		before := w.fields[w.focus].Model.Value()
		var cmd tea.Cmd
		w.fields[w.focus], cmd = w.fields[w.focus].Update(msg)
		if w.fields[w.focus].Model.Value() != before {
			w.invalidate()
		}
		return w, cmd
	}

	var cmd tea.Cmd
	w.fields[w.focus], cmd = w.fields[w.focus].Update(msg)
	return w, cmd
}

func (w *Recapture) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "field"},
		{Key: "+/-", Description: "adjust"},
		{Key: "Enter", Description: "calculate"},
	}
}

func (w *Recapture) View(width int) string {
	cw := components.ContentWidth(width)

	fields := make([]string, 0, len(w.fields))
	for _, f := range w.fields {
		fields = append(fields, f.View())
	}

	f := w.Formula()
	formula := theme.Selected.Render("N = (M × C) / R")
	live := theme.Dimmed.Render(f.String())

	var result string
	switch {
	case w.err != nil:
		result = theme.Incorrect.Render("Error: " + w.err.Error())
	case w.shown:
		n, _ := w.Displayed()
		result = fmt.Sprintf("Estimated Population: %s", theme.Correct.Render(fmt.Sprint(n)))
	default:
		result = theme.Hint.Render("Press Enter to calculate")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Heading.Render("Mark-Recapture Calculator"),
		"",
		formula,
		live,
		"",
		lipgloss.JoinVertical(lipgloss.Left, fields...),
		"",
		result,
	)
	return components.Card(body, cw)
}
