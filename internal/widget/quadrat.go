package widget

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/quadrat"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// Habitat grid resolution. Each cell is two terminal columns wide so
// emoji symbols fit.
const (
	gridCols = 30
	gridRows = 16
)

// Quadrat drives the random quadrat sampling demo.
type Quadrat struct {
	sampler *quadrat.Sampler
	err     string
}

// NewQuadrat mounts a sampler over the lesson habitat.
func NewQuadrat(d Deps) *Quadrat {
	return &Quadrat{sampler: quadrat.NewSampler(d.Lesson.Habitat, d.Lesson.Organisms, d.Rand)}
}

// Sampler exposes the underlying simulation.
func (q *Quadrat) Sampler() *quadrat.Sampler { return q.sampler }

func (q *Quadrat) Init() tea.Cmd { return nil }

func (q *Quadrat) Update(msg tea.Msg) (Widget, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return q, nil
	}
	switch kmsg.String() {
	case "p":
		q.sampler.Place()
		q.err = ""
	case "c":
		if _, err := q.sampler.Count(); errors.Is(err, quadrat.ErrNotPlaced) {
			q.err = "Place a quadrat first"
		}
	case "x":
		q.sampler.Reset()
		q.err = ""
	}
	return q, nil
}

func (q *Quadrat) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "P", Description: "place quadrat"}}
	if _, ok := q.sampler.Placed(); ok {
		hints = append(hints,
			layout.KeyHint{Key: "C", Description: "count"},
			layout.KeyHint{Key: "X", Description: "reset"},
		)
	}
	return hints
}

// cellOf maps habitat coordinates to a grid cell.
func (q *Quadrat) cellOf(x, y float64) (int, int) {
	h := q.sampler.Habitat()
	col := int(x / h.Width * gridCols)
	row := int(y / h.Height * gridRows)
	return min(max(col, 0), gridCols-1), min(max(row, 0), gridRows-1)
}

// cellCenter returns the habitat coordinates of a cell's center.
func (q *Quadrat) cellCenter(col, row int) (float64, float64) {
	h := q.sampler.Habitat()
	return (float64(col) + 0.5) * h.Width / gridCols, (float64(row) + 0.5) * h.Height / gridRows
}

func (q *Quadrat) grid() string {
	type cell struct {
		symbol  string
		counted bool
	}
	cells := make([][]cell, gridRows)
	for r := range cells {
		cells[r] = make([]cell, gridCols)
	}

	frame, placed := q.sampler.Placed()
	_, counted := q.sampler.LastCount()
	for _, o := range q.sampler.Organisms() {
		col, row := q.cellOf(o.X, o.Y)
		if cells[row][col].symbol != "" {
			continue
		}
		cells[row][col] = cell{
			symbol:  o.Symbol,
			counted: counted && placed && frame.Contains(o.X, o.Y),
		}
	}

	var b strings.Builder
	for r := range gridRows {
		for c := range gridCols {
			style := theme.Ground
			if placed {
				if x, y := q.cellCenter(c, r); frame.Contains(x, y) {
					style = theme.QuadratFrame
				}
			}
			sym := cells[r][c].symbol
			if sym == "" {
				sym = "  "
			} else if cells[r][c].counted {
				style = theme.Counted
			}
			if lipgloss.Width(sym) < 2 {
				sym += " "
			}
			b.WriteString(style.Render(sym))
		}
		if r < gridRows-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(b.String())
}

func (q *Quadrat) View(width int) string {
	cw := components.ContentWidth(width)
	parts := []string{
		theme.Heading.Render("Interactive Quadrat Sampling"),
		"",
		q.grid(),
		"",
	}

	count, counted := q.sampler.LastCount()
	frame, placed := q.sampler.Placed()
	switch {
	case q.err != "":
		parts = append(parts, theme.Incorrect.Render(q.err))
	case counted:
		parts = append(parts, q.countView(count, frame, cw))
	case placed:
		parts = append(parts, theme.Hint.Render("Quadrat placed. Press C to count the organisms inside."))
	default:
		parts = append(parts, theme.Hint.Render("Press P to drop a quadrat at a random spot."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (q *Quadrat) countView(c quadrat.Count, f quadrat.Quadrat, cw int) string {
	lines := []string{
		fmt.Sprintf("Organisms counted: %s  %s",
			theme.Selected.Render(fmt.Sprint(c.Total)),
			theme.Dimmed.Render("individuals per quadrat")),
	}
	if c.Total > 0 {
		var parts []string
		for _, cc := range c.ByCategory {
			if cc.Count > 0 {
				parts = append(parts, theme.Category(cc.Category).Render(cc.Category)+fmt.Sprintf(": %d", cc.Count))
			}
		}
		lines = append(lines, "Breakdown: "+strings.Join(parts, " • "))
	}
	lines = append(lines, theme.Dimmed.Render(fmt.Sprintf(
		"Quadrat covers %.1f%% - %.1f%% horizontally, %.1f%% - %.1f%% vertically",
		f.Left, f.Left+f.Size, f.Top, f.Top+f.Size,
	)))
	if c.Total == 0 {
		lines = append(lines, theme.Hint.Render("💡 Try placing the quadrat in a different area to find organisms!"))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}
