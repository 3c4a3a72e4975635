package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Action runs on enter.
type MenuItem struct {
	Label  string
	Hint   string
	Action func() tea.Cmd
}

// Menu is a numbered vertical list with a cursor. Pressing an item's
// number selects and runs it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu returns a menu with the cursor on the first item.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor or runs the selected item.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch k := key.String(); k {
	case "up", "k":
		m.Selected = max(m.Selected-1, 0)
	case "down", "j":
		m.Selected = min(m.Selected+1, len(m.Items)-1)
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		return m, m.run()
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= min(len(m.Items), 9) {
			m.Selected = n - 1
			return m, m.run()
		}
	}
	return m, nil
}

func (m Menu) run() tea.Cmd {
	if act := m.Items[m.Selected].Action; act != nil {
		return act()
	}
	return nil
}

// View renders one line per item.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		marker := " "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Selected {
			marker = "▸"
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %d  %s", marker, i+1, item.Label)))
		if item.Hint != "" {
			b.WriteString("  " + theme.Hint.Render(item.Hint))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
