package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	rm "github.com/abhisek/prepiq/internal/roadmap"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/layout"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

type dayMarkedMsg struct {
	day int
	err error
}

// RoadmapScreen lists the 30 days of the plan and marks them complete.
type RoadmapScreen struct {
	svc    *dashboard.Service
	days   []rm.Day
	topics []rm.TopicStat
	cursor int
	errMsg string
}

var (
	_ screen.Screen          = (*RoadmapScreen)(nil)
	_ screen.KeyHintProvider = (*RoadmapScreen)(nil)
)

// New creates a new RoadmapScreen.
func New(svc *dashboard.Service) *RoadmapScreen {
	return &RoadmapScreen{svc: svc}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return screen.LoadReport(s.svc)
}

func (s *RoadmapScreen) markDay(day int) tea.Cmd {
	return func() tea.Msg {
		_, err := s.svc.Roadmap().MarkDayComplete(context.Background(), day)
		return dayMarkedMsg{day: day, err: err}
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ReportMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.days = msg.Report.Roadmap
		s.topics = msg.Report.TopicProgress
		s.errMsg = ""
		s.cursor = min(s.cursor, max(len(s.days)-1, 0))

	case dayMarkedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.days = rm.Apply(s.days, msg.day)
		s.topics = rm.TopicProgress(s.days)
		return s, screen.LoadReport(s.svc)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.days)-1 {
				s.cursor++
			}
		case "enter", " ":
			if s.cursor < len(s.days) && !s.days[s.cursor].Completed {
				return s, s.markDay(s.days[s.cursor].Day)
			}
		}
	}
	return s, nil
}

// visibleRange returns the window of days around the cursor that fits in
// rows lines.
func (s *RoadmapScreen) visibleRange(rows int) (int, int) {
	if rows <= 0 || rows >= len(s.days) {
		return 0, len(s.days)
	}
	start := max(s.cursor-rows/2, 0)
	end := start + rows
	if end > len(s.days) {
		end = len(s.days)
		start = end - rows
	}
	return start, end
}

func (s *RoadmapScreen) View(width, height int) string {
	if s.days == nil {
		msg := theme.Hint.Render("Building roadmap...")
		if s.errMsg != "" {
			msg = lipgloss.NewStyle().Foreground(theme.Error).Render("Error: " + s.errMsg)
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	start, end := s.visibleRange(height - 6)
	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, s.renderDay(i))
	}
	list := strings.Join(lines, "\n")

	side := s.renderSide(36)
	var content string
	if layout.IsCompactWidth(width) {
		content = lipgloss.JoinVertical(lipgloss.Left, list, "", side)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, list, "    ", side)
	}
	if s.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *RoadmapScreen) renderDay(i int) string {
	d := s.days[i]
	mark := "[ ]"
	if d.Completed {
		mark = "[x]"
	}
	topic := d.Topic
	if d.IsMockInterview {
		topic += " *"
	}
	line := fmt.Sprintf("%s Day %2d  %-18s %d problems", mark, d.Day, topic, d.Problems)

	style := theme.Unselected
	switch {
	case i == s.cursor:
		return theme.Selected.Render("▸ " + line)
	case d.Completed:
		style = theme.Done
	}
	return style.Render("  " + line)
}

func (s *RoadmapScreen) renderSide(width int) string {
	lines := []string{
		theme.Selected.Render("Progress"),
		"",
		components.NewProgressBar("Overall", rm.Progress(s.days), width).View(),
		theme.Hint.Render(fmt.Sprintf("%d problems planned", rm.TotalProblems(s.days))),
		"",
		theme.Selected.Render("By topic"),
		"",
	}
	for _, t := range s.topics {
		bar := components.NewProgressBar(t.Topic, t.Percentage, width)
		bar.LabelWidth = 14
		lines = append(lines, bar.View())
	}
	return strings.Join(lines, "\n")
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Mark done"},
		{Key: "Esc", Description: "Back"},
	}
}
