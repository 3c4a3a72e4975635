package problems

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/tracker"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/layout"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeTime
	modeAttempts
	modeConfidence
	modeFeedback
)

type problemsMsg struct {
	problems []tracker.Problem
	err      error
}

type solvedMsg struct {
	result tracker.SolveResult
	err    error
}

// ProblemsScreen browses the problem log and records solves.
type ProblemsScreen struct {
	svc      *dashboard.Service
	problems []tracker.Problem
	visible  []tracker.Problem
	query    tracker.Query
	topicIdx int // 0 means all topics
	cursor   int
	mode     mode

	input    components.TextInput
	solving  tracker.Problem
	time     int
	attempts int
	result   *tracker.SolveResult
	errMsg   string
}

var (
	_ screen.Screen          = (*ProblemsScreen)(nil)
	_ screen.KeyHintProvider = (*ProblemsScreen)(nil)
	_ screen.Modal           = (*ProblemsScreen)(nil)
)

// New creates a new ProblemsScreen.
func New(svc *dashboard.Service) *ProblemsScreen {
	return &ProblemsScreen{svc: svc}
}

func (s *ProblemsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProblemsScreen) load() tea.Cmd {
	return func() tea.Msg {
		ps, err := s.svc.Tracker().List(context.Background())
		return problemsMsg{problems: ps, err: err}
	}
}

func (s *ProblemsScreen) solve(id string, in tracker.SolveInput) tea.Cmd {
	return func() tea.Msg {
		res, err := s.svc.Tracker().RecordSolve(context.Background(), id, in)
		return solvedMsg{result: res, err: err}
	}
}

// Modal reports whether an input owns the keyboard.
func (s *ProblemsScreen) Modal() bool {
	return s.mode != modeBrowse
}

func (s *ProblemsScreen) refilter() {
	s.query.Topic = ""
	if topics := tracker.Topics(s.problems); s.topicIdx > 0 && s.topicIdx <= len(topics) {
		s.query.Topic = topics[s.topicIdx-1]
	}
	s.visible = tracker.Filter(s.problems, s.query)
	s.cursor = min(s.cursor, max(len(s.visible)-1, 0))
}

func (s *ProblemsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemsMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.problems = msg.problems
		s.refilter()
		return s, nil

	case solvedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.mode = modeBrowse
			return s, nil
		}
		s.result = &msg.result
		s.mode = modeFeedback
		s.errMsg = ""
		return s, tea.Batch(s.load(), screen.LoadReport(s.svc))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeSearch || s.mode == modeTime || s.mode == modeAttempts {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProblemsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.mode {
	case modeBrowse:
		return s.handleBrowse(key)

	case modeSearch:
		switch key {
		case "enter", "esc":
			s.mode = modeBrowse
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.query.Search = s.input.Value()
		s.refilter()
		return s, cmd

	case modeTime, modeAttempts:
		switch key {
		case "esc":
			s.mode = modeBrowse
			return s, nil
		case "enter":
			return s.submitNumber()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case modeConfidence:
		if key == "esc" {
			s.mode = modeBrowse
			return s, nil
		}
		if len(key) == 1 && key[0] >= '0'+tracker.MinConfidence && key[0] <= '0'+tracker.MaxConfidence {
			in := tracker.SolveInput{
				TimeTaken:  s.time,
				Attempts:   s.attempts,
				Confidence: int(key[0] - '0'),
			}
			return s, s.solve(s.solving.ID, in)
		}

	case modeFeedback:
		s.mode = modeBrowse
		s.result = nil
	}
	return s, nil
}

func (s *ProblemsScreen) handleBrowse(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
	case "/":
		s.mode = modeSearch
		s.input = components.NewTextInput("search title or topic", false, 40)
		s.input.SetValue(s.query.Search)
		return s, s.input.Init()
	case "f":
		s.query.Difficulty = nextDifficulty(s.query.Difficulty)
		s.refilter()
	case "t":
		s.topicIdx = (s.topicIdx + 1) % (len(tracker.Topics(s.problems)) + 1)
		s.refilter()
	case "enter":
		if s.cursor < len(s.visible) {
			s.solving = s.visible[s.cursor]
			s.errMsg = ""
			s.mode = modeTime
			s.input = components.NewTextInput("minutes", true, 4)
			return s, s.input.Init()
		}
	}
	return s, nil
}

func (s *ProblemsScreen) submitNumber() (screen.Screen, tea.Cmd) {
	n, err := s.input.Int()
	if err != nil || n <= 0 {
		s.errMsg = "enter a positive number"
		return s, nil
	}
	s.errMsg = ""

	if s.mode == modeTime {
		s.time = n
		s.mode = modeAttempts
		s.input = components.NewTextInput("attempts", true, 3)
		s.input.SetValue("1")
		return s, s.input.Init()
	}
	s.attempts = n
	s.mode = modeConfidence
	return s, nil
}

func nextDifficulty(d tracker.Difficulty) tracker.Difficulty {
	all := tracker.AllDifficulties()
	for i, x := range all {
		if x == d {
			if i+1 < len(all) {
				return all[i+1]
			}
			return ""
		}
	}
	return all[0]
}

func (s *ProblemsScreen) View(width, height int) string {
	var sections []string

	switch s.mode {
	case modeTime, modeAttempts, modeConfidence:
		sections = append(sections, s.renderSolve())
	case modeFeedback:
		sections = append(sections, s.renderFeedback())
	default:
		sections = append(sections, s.renderFilters(), s.renderList(height-8))
	}

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (s *ProblemsScreen) renderFilters() string {
	st := tracker.Summarize(s.problems)
	diff := "all"
	if s.query.Difficulty != "" {
		diff = string(s.query.Difficulty)
	}
	topic := "all"
	if s.query.Topic != "" {
		topic = s.query.Topic
	}

	line := theme.Hint.Render(fmt.Sprintf("%d/%d solved · difficulty: %s · topic: %s",
		st.Solved, st.Total, diff, topic))
	if s.mode == modeSearch {
		return line + "\n" + theme.Selected.Render("/ ") + s.input.View()
	}
	if s.query.Search != "" {
		line += "\n" + theme.Hint.Render("search: "+s.query.Search)
	}
	return line
}

func (s *ProblemsScreen) renderList(rows int) string {
	if len(s.visible) == 0 {
		return theme.Hint.Render("No problems match.")
	}

	start := 0
	if rows > 0 && len(s.visible) > rows {
		start = min(max(s.cursor-rows/2, 0), len(s.visible)-rows)
	} else {
		rows = len(s.visible)
	}

	var lines []string
	for i := start; i < start+rows && i < len(s.visible); i++ {
		p := s.visible[i]
		mark := "[ ]"
		if p.Solved {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %-32s %-14s %-6s", mark, p.Title, p.Topic, p.Difficulty)
		if p.TimeTaken != nil {
			line += fmt.Sprintf(" %3dm", *p.TimeTaken)
		}

		switch {
		case i == s.cursor:
			lines = append(lines, theme.Selected.Render("▸ "+line))
		case p.Solved:
			lines = append(lines, theme.Done.Render("  "+line))
		default:
			lines = append(lines, theme.Unselected.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *ProblemsScreen) renderSolve() string {
	p := s.solving
	lines := []string{
		theme.Selected.Render(p.Title),
		theme.Hint.Render(fmt.Sprintf("%s · %s", p.Topic, p.Difficulty)),
		"",
	}
	switch s.mode {
	case modeTime:
		lines = append(lines, theme.Body.Render("Time taken (minutes): ")+s.input.View())
	case modeAttempts:
		lines = append(lines,
			theme.Done.Render(fmt.Sprintf("Time: %d min", s.time)),
			theme.Body.Render("Attempts: ")+s.input.View())
	case modeConfidence:
		lines = append(lines,
			theme.Done.Render(fmt.Sprintf("Time: %d min · Attempts: %d", s.time, s.attempts)),
			theme.Body.Render(fmt.Sprintf("Confidence (%d-%d)?", tracker.MinConfidence, tracker.MaxConfidence)))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *ProblemsScreen) renderFeedback() string {
	if s.result == nil {
		return ""
	}
	lines := []string{
		theme.Done.Render("Solved " + s.result.Problem.Title),
		"",
	}
	for _, f := range s.result.Feedback {
		lines = append(lines, theme.Body.Render("• "+f))
	}
	lines = append(lines, "", theme.Hint.Render("press any key"))
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *ProblemsScreen) Title() string {
	return "Problems"
}

func (s *ProblemsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeBrowse:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Log solve"},
			{Key: "/", Description: "Search"},
			{Key: "f", Description: "Difficulty"},
			{Key: "t", Description: "Topic"},
			{Key: "Esc", Description: "Back"},
		}
	case modeFeedback:
		return []layout.KeyHint{{Key: "any", Description: "Continue"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
}
