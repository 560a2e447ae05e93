package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecoslides/internal/ui/theme"
)

// MenuItem represents a single entry in a selectable list.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list that scrolls to keep the selection visible.
type Menu struct {
	Items    []MenuItem
	Selected int
	Height   int // visible rows, 0 shows everything
	offset   int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Select moves the selection to i if that item is enabled.
func (m *Menu) Select(i int) {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return
	}
	m.Selected = i
	m.scroll()
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "home":
		m.Select(0)
	case "end":
		m.Select(len(m.Items) - 1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	m.scroll()
	return m, nil
}

func (m *Menu) scroll() {
	if m.Height <= 0 {
		m.offset = 0
		return
	}
	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+m.Height {
		m.offset = m.Selected - m.Height + 1
	}
}

// View renders the visible window of the menu.
func (m Menu) View() string {
	start, end := 0, len(m.Items)
	if m.Height > 0 && m.Height < len(m.Items) {
		start = m.offset
		end = min(start+m.Height, len(m.Items))
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := m.Items[i]
		detail := ""
		if item.Detail != "" {
			detail = "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Dimmed.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString(detail + "\n")
	}
	return b.String()
}
