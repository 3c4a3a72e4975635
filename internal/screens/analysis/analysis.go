package analysis

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/layout"
	"github.com/abhisek/prepiq/internal/ui/theme"
	"github.com/abhisek/prepiq/internal/weakness"
)

// AnalysisScreen shows the per-topic weakness table and company readiness.
type AnalysisScreen struct {
	svc    *dashboard.Service
	report *dashboard.Report
	errMsg string
}

var (
	_ screen.Screen          = (*AnalysisScreen)(nil)
	_ screen.KeyHintProvider = (*AnalysisScreen)(nil)
)

// New creates a new AnalysisScreen.
func New(svc *dashboard.Service) *AnalysisScreen {
	return &AnalysisScreen{svc: svc}
}

func (a *AnalysisScreen) Init() tea.Cmd {
	return screen.LoadReport(a.svc)
}

func (a *AnalysisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ReportMsg:
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			return a, nil
		}
		a.report = msg.Report
		a.errMsg = ""
	case tea.KeyMsg:
		if msg.String() == "r" {
			return a, screen.LoadReport(a.svc)
		}
	}
	return a, nil
}

func (a *AnalysisScreen) View(width, height int) string {
	if a.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+a.errMsg))
	}
	if a.report == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Analyzing..."))
	}

	weak := renderWeakness(a.report.Weaknesses)
	ready := renderReadiness(a.report, 40)

	var content string
	if layout.IsCompactWidth(width) {
		content = lipgloss.JoinVertical(lipgloss.Left, weak, "", ready)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, weak, "    ", ready)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderWeakness(results []weakness.Result) string {
	head := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	lines := []string{
		theme.Selected.Render("Topic weakness"),
		"",
		head.Render(fmt.Sprintf("%-14s %6s %9s  %s", "TOPIC", "SCORE", "ACCURACY", "CLASS")),
	}
	for _, r := range results {
		class := lipgloss.NewStyle().
			Foreground(theme.ClassificationColor(string(r.Classification))).
			Render(string(r.Classification))
		lines = append(lines, theme.Body.Render(
			fmt.Sprintf("%-14s %6.2f %8.1f%%  ", r.Topic, r.Score, r.Accuracy))+class)
	}

	counts := weakness.CountByClassification(results)
	lines = append(lines, "", theme.Hint.Render(fmt.Sprintf("%d weak · %d average · %d strong",
		counts[weakness.Weak], counts[weakness.Average], counts[weakness.Strong])))
	return strings.Join(lines, "\n")
}

func renderReadiness(r *dashboard.Report, width int) string {
	lines := []string{
		theme.Selected.Render("Company readiness"),
		"",
		components.NewProgressBar("Overall", r.Overall, width).View(),
		"",
	}
	for _, c := range r.Companies {
		bar := components.NewProgressBar(c.Company, c.Readiness, width)
		bar.LabelWidth = 9
		lines = append(lines, bar.View())
	}
	if len(r.WeakTopics) > 0 {
		lines = append(lines, "", theme.Hint.Render("Focus: "+strings.Join(r.WeakTopics, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (a *AnalysisScreen) Title() string {
	return "Analysis"
}

func (a *AnalysisScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}
