package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/router"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/screens/analysis"
	"github.com/abhisek/prepiq/internal/screens/mocktests"
	"github.com/abhisek/prepiq/internal/screens/problems"
	roadmapscreen "github.com/abhisek/prepiq/internal/screens/roadmap"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

// HomeScreen shows the headline figures and the main menu.
type HomeScreen struct {
	menu   components.Menu
	report *dashboard.Report
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

func push(s func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s()}
		}
	}
}

// New creates a new HomeScreen.
func New(svc *dashboard.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ANALYSIS", Hint: "weakness and readiness", Action: push(func() screen.Screen { return analysis.New(svc) })},
		{Label: "ROADMAP", Hint: "30-day plan", Action: push(func() screen.Screen { return roadmapscreen.New(svc) })},
		{Label: "PROBLEMS", Hint: "log solves", Action: push(func() screen.Screen { return problems.New(svc) })},
		{Label: "MOCK TESTS", Hint: "timed simulations", Action: push(func() screen.Screen { return mocktests.New(svc) })},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if rm, ok := msg.(screen.ReportMsg); ok {
		if rm.Err != nil {
			h.errMsg = rm.Err.Error()
			return h, nil
		}
		h.report = rm.Report
		h.errMsg = ""
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 60)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("P R E P I Q"))
	sections = append(sections, theme.Subtitle.Width(cw).Render("placement preparation dashboard"))

	switch {
	case h.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Width(cw).
			Render("Error: "+h.errMsg))
	case h.report == nil:
		sections = append(sections, theme.Hint.Width(cw).Render("Loading..."))
	default:
		sections = append(sections, renderStats(h.report, cw))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderStats(r *dashboard.Report, cw int) string {
	lines := []string{
		components.NewProgressBar("Readiness", r.Overall, cw-4).View(),
		components.NewProgressBar("Roadmap  ", r.Progress, cw-4).View(),
	}

	weak := "none"
	if len(r.WeakTopics) > 0 {
		weak = strings.Join(r.WeakTopics, ", ")
	}
	lines = append(lines,
		"",
		lipgloss.NewStyle().Foreground(theme.Error).Render("Weak: ")+theme.Body.Render(weak),
		theme.Hint.Render(fmt.Sprintf("%d/%d problems solved · %d mock tests · avg %d%%",
			r.Problems.Solved, r.Problems.Total, r.MockTests, r.MockAverage)),
		theme.Hint.Render(fmt.Sprintf("%d day streak · %d due for review", r.Streak, r.DueReviews)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(cw).
		Render(strings.Join(lines, "\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
