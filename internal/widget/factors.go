package widget

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/content"
	"github.com/abhisek/ecoslides/internal/ui/components"
	"github.com/abhisek/ecoslides/internal/ui/layout"
	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// Factor kinds in the shipped lesson.
const (
	KindBiotic  = "biotic"
	KindAbiotic = "abiotic"
)

// Factors toggles between biotic and abiotic factor cards.
type Factors struct {
	groups []content.FactorGroup
	active int
}

// NewFactors mounts the explorer with the first group selected.
func NewFactors(groups []content.FactorGroup) *Factors {
	return &Factors{groups: groups}
}

// Active returns the kind currently shown.
func (f *Factors) Active() string {
	if len(f.groups) == 0 {
		return ""
	}
	return f.groups[f.active].Kind
}

func (f *Factors) selectKind(kind string) {
	for i, g := range f.groups {
		if g.Kind == kind {
			f.active = i
			return
		}
	}
}

func (f *Factors) Init() tea.Cmd { return nil }

func (f *Factors) Update(msg tea.Msg) (Widget, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(f.groups) == 0 {
		return f, nil
	}
	switch kmsg.String() {
	case "tab":
		f.active = (f.active + 1) % len(f.groups)
	case "b":
		f.selectKind(KindBiotic)
	case "a":
		f.selectKind(KindAbiotic)
	}
	return f, nil
}

func (f *Factors) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "B", Description: "biotic"},
		{Key: "A", Description: "abiotic"},
	}
}

func (f *Factors) View(width int) string {
	if len(f.groups) == 0 {
		return ""
	}
	cw := components.ContentWidth(width)

	tabs := make([]string, 0, len(f.groups))
	for i, g := range f.groups {
		label := strings.ToUpper(g.Kind[:1]) + g.Kind[1:] + " Factors"
		tabs = append(tabs, components.NewButton(label, i == f.active, nil).View())
	}

	accent := theme.Biotic
	if f.Active() == KindAbiotic {
		accent = theme.Abiotic
	}
	cardWidth := cw/2 - 1
	cards := make([]string, 0, len(f.groups[f.active].Items))
	for _, item := range f.groups[f.active].Items {
		body := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(item.Name) + "\n" +
			theme.Dimmed.Render(item.Description)
		cards = append(cards, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(cardWidth).
			Render(body))
	}

	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(tabs, "  ")...),
		"",
		theme.Heading.Render(f.groups[f.active].Heading),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}
