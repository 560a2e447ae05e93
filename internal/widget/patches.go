package widget

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

const (
	mapCols = 56
	mapRows = 10
)

// Patches shows the metapopulation map. Pressing a patch number selects
// it; pressing it again clears the selection.
type Patches struct {
	patches  []content.Patch
	selected int // patch id, 0 when none
}

// NewPatches mounts the explorer with nothing selected.
func NewPatches(patches []content.Patch) *Patches {
	return &Patches{patches: patches}
}

// Selected returns the selected patch, if any.
func (p *Patches) Selected() (content.Patch, bool) {
	for _, pt := range p.patches {
		if pt.ID == p.selected {
			return pt, true
		}
	}
	return content.Patch{}, false
}

func (p *Patches) Init() tea.Cmd { return nil }

func (p *Patches) Update(msg tea.Msg) (Widget, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}
	k := kmsg.String()
	for _, pt := range p.patches {
		if k == fmt.Sprint(pt.ID) {
			if p.selected == pt.ID {
				p.selected = 0
			} else {
				p.selected = pt.ID
			}
			break
		}
	}
	return p, nil
}

func (p *Patches) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: fmt.Sprintf("1-%d", len(p.patches)), Description: "explore population"}}
}

func marker(pt content.Patch) string {
	switch pt.Size {
	case "large":
		return fmt.Sprintf("(( %d ))", pt.ID)
	case "medium":
		return fmt.Sprintf("( %d )", pt.ID)
	}
	return fmt.Sprintf("(%d)", pt.ID)
}

func (p *Patches) mapView() string {
	rows := make([][]string, mapRows)
	for r := range rows {
		rows[r] = strings.Split(strings.Repeat(" ", mapCols), "")
	}
	for _, pt := range p.patches {
		m := marker(pt)
		style := lipgloss.NewStyle().Foreground(theme.Biotic).Bold(true)
		if pt.ID == p.selected {
			style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Accent).Bold(true)
		}
		row := min(int(pt.Y/100*mapRows), mapRows-1)
		col := int(pt.X / 100 * mapCols)
		col = min(max(col-len(m)/2, 0), mapCols-len(m))
		rows[row][col] = style.Render(m)
		for i := 1; i < len(m); i++ {
			rows[row][col+i] = ""
		}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, "")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(strings.Join(lines, "\n"))
}

func (p *Patches) View(width int) string {
	cw := components.ContentWidth(width)
	info := theme.Hint.Render(fmt.Sprintf("Press 1-%d to explore a population patch", len(p.patches)))
	if pt, ok := p.Selected(); ok {
		info = theme.Selected.Render(fmt.Sprintf("Patch %d", pt.ID)) + "\n" + theme.Body.Render(pt.Info)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Heading.Render("Metapopulation Map"),
		p.mapView(),
		lipgloss.NewStyle().Width(cw).Render(info),
	)
}
