package mocktests

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/mocktest"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/layout"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

// historyRows bounds the history panel.
const historyRows = 8

type historyMsg struct {
	history []mocktest.Result
	err     error
}

type ranMsg struct {
	result mocktest.Result
	err    error
}

// MockTestsScreen runs simulated mock tests and shows their history.
type MockTestsScreen struct {
	svc     *dashboard.Service
	menu    components.Menu
	history []mocktest.Result
	last    *mocktest.Result
	errMsg  string
}

var (
	_ screen.Screen          = (*MockTestsScreen)(nil)
	_ screen.KeyHintProvider = (*MockTestsScreen)(nil)
)

// New creates a new MockTestsScreen.
func New(svc *dashboard.Service) *MockTestsScreen {
	s := &MockTestsScreen{svc: svc}

	var items []components.MenuItem
	for _, t := range svc.MockTests().Catalog().Tests() {
		name := t.Name
		items = append(items, components.MenuItem{
			Label:  name,
			Hint:   string(t.Type),
			Action: func() tea.Cmd { return s.run(name) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *MockTestsScreen) Init() tea.Cmd {
	return s.loadHistory()
}

func (s *MockTestsScreen) loadHistory() tea.Cmd {
	return func() tea.Msg {
		h, err := s.svc.MockTests().History(context.Background())
		return historyMsg{history: h, err: err}
	}
}

func (s *MockTestsScreen) run(name string) tea.Cmd {
	return func() tea.Msg {
		r, err := s.svc.MockTests().Run(context.Background(), name)
		return ranMsg{result: r, err: err}
	}
}

func (s *MockTestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.history = msg.history
		return s, nil

	case ranMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.last = &msg.result
		s.errMsg = ""
		return s, tea.Batch(s.loadHistory(), screen.LoadReport(s.svc))
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MockTestsScreen) View(width, height int) string {
	left := theme.Selected.Render("Start a test") + "\n\n" + s.menu.View()

	right := []string{s.renderLast(), s.renderHistory()}
	var content string
	if layout.IsCompactWidth(width) {
		content = lipgloss.JoinVertical(lipgloss.Left, left, strings.Join(right, "\n\n"))
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", strings.Join(right, "\n\n"))
	}
	if s.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *MockTestsScreen) renderLast() string {
	if s.last == nil {
		return theme.Hint.Render("Pick a test to simulate it.")
	}
	r := s.last
	lines := []string{
		theme.Selected.Render(r.Category + " result"),
		"",
		components.NewProgressBar("Score", r.Score, 36).View(),
		theme.Hint.Render(fmt.Sprintf("%d questions in %d min", r.TotalQuestions, r.TimeTaken)),
		theme.Body.Render("Status: ") + renderVerdict(r.Score),
		"",
		theme.Done.Render("Strengths: ") + theme.Body.Render(strings.Join(r.Strengths, ", ")),
		lipgloss.NewStyle().Foreground(theme.Error).Render("Weaknesses: ") +
			theme.Body.Render(strings.Join(r.Weaknesses, ", ")),
		"",
		theme.Body.Render(mocktest.Comment(r.Score, r.Category)),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *MockTestsScreen) renderHistory() string {
	lines := []string{
		theme.Selected.Render(fmt.Sprintf("History · %d tests · avg %d%%",
			len(s.history), mocktest.Average(s.history))),
	}
	for i, r := range s.history {
		if i == historyRows {
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("... %d more", len(s.history)-historyRows)))
			break
		}
		score := lipgloss.NewStyle().Foreground(theme.ScoreColor(r.Score)).Render(fmt.Sprintf("%3d%%", r.Score))
		lines = append(lines, theme.Body.Render(fmt.Sprintf("%s  %-10s ", r.Date, r.Category))+score+"  "+renderVerdict(r.Score))
	}
	return strings.Join(lines, "\n")
}

func renderVerdict(score int) string {
	v := string(mocktest.VerdictFor(score))
	return lipgloss.NewStyle().Foreground(theme.VerdictColor(v)).Bold(true).Render(v)
}

func (s *MockTestsScreen) Title() string {
	return "Mock Tests"
}

func (s *MockTestsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Run"},
		{Key: "Esc", Description: "Back"},
	}
}
