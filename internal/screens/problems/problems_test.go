package problems

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/store"
	"github.com/abhisek/prepiq/internal/tracker"
)

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newLoadedScreen(t *testing.T) (*ProblemsScreen, *dashboard.Service) {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	svc := dashboard.New(store.NewMemoryKV(), dataset.Default(),
		dashboard.Sources{Seed: 1, Now: clock}, dashboard.Options{}, nil)
	s := New(svc)
	s.Update(s.Init()())
	if len(s.problems) != len(dataset.DefaultProblems()) {
		t.Fatalf("expected the default bank, got %d problems", len(s.problems))
	}
	return s, svc
}

func TestDifficultyFilterCycles(t *testing.T) {
	s, _ := newLoadedScreen(t)
	bank := dataset.DefaultProblems()

	for _, d := range tracker.AllDifficulties() {
		s.Update(key('f'))
		if s.query.Difficulty != d {
			t.Fatalf("expected %s filter, got %q", d, s.query.Difficulty)
		}
		want := len(tracker.Filter(bank, tracker.Query{Difficulty: d}))
		if len(s.visible) != want {
			t.Errorf("%s: expected %d visible, got %d", d, want, len(s.visible))
		}
	}

	s.Update(key('f'))
	if s.query.Difficulty != "" || len(s.visible) != len(bank) {
		t.Error("fourth press should clear the filter")
	}
}

func TestTopicFilterCycles(t *testing.T) {
	s, _ := newLoadedScreen(t)
	topics := tracker.Topics(s.problems)

	s.Update(key('t'))
	if s.query.Topic != topics[0] {
		t.Fatalf("expected topic %s, got %q", topics[0], s.query.Topic)
	}
	for _, p := range s.visible {
		if p.Topic != topics[0] {
			t.Errorf("unexpected topic %s in filtered list", p.Topic)
		}
	}

	for range topics {
		s.Update(key('t'))
	}
	if s.query.Topic != "" {
		t.Errorf("expected wrap to all topics, got %q", s.query.Topic)
	}
}

func TestSearchMode(t *testing.T) {
	s, _ := newLoadedScreen(t)

	s.Update(key('/'))
	if !s.Modal() {
		t.Fatal("search should own the keyboard")
	}
	for _, r := range "graph" {
		s.Update(key(r))
	}
	if s.query.Search != "graph" {
		t.Fatalf("expected search %q, got %q", "graph", s.query.Search)
	}
	want := len(tracker.Filter(s.problems, tracker.Query{Search: "graph"}))
	if want == 0 || len(s.visible) != want {
		t.Errorf("expected %d matches, got %d", want, len(s.visible))
	}

	s.Update(keyEsc)
	if s.Modal() {
		t.Error("esc should close the search input")
	}
	if s.query.Search != "graph" {
		t.Error("closing search keeps the query")
	}
}

func TestSolveFlow(t *testing.T) {
	s, svc := newLoadedScreen(t)
	s.Update(keyDown)
	target := s.visible[1]

	s.Update(keyEnter)
	if s.mode != modeTime || !s.Modal() {
		t.Fatal("enter should ask for the time taken")
	}

	s.Update(keyEnter)
	if s.mode != modeTime || s.errMsg == "" {
		t.Fatal("empty time should be rejected")
	}

	s.input.SetValue("25")
	s.Update(keyEnter)
	if s.mode != modeAttempts || s.time != 25 {
		t.Fatalf("expected attempts step, got mode %d time %d", s.mode, s.time)
	}
	if s.input.Value() != "1" {
		t.Errorf("attempts should default to 1, got %q", s.input.Value())
	}

	s.input.SetValue("2")
	s.Update(keyEnter)
	if s.mode != modeConfidence || s.attempts != 2 {
		t.Fatal("expected confidence step")
	}

	_, cmd := s.Update(key('9'))
	if cmd != nil {
		t.Error("out of range confidence should be ignored")
	}
	_, cmd = s.Update(key('4'))
	if cmd == nil {
		t.Fatal("confidence should submit the solve")
	}
	msg := cmd()
	if _, ok := msg.(solvedMsg); !ok {
		t.Fatalf("expected solvedMsg, got %T", msg)
	}

	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Error("a solve should reload problems and the report")
	}
	if s.mode != modeFeedback || s.result == nil {
		t.Fatal("expected feedback view")
	}
	if len(s.result.Feedback) == 0 {
		t.Error("expected feedback lines")
	}
	if !strings.Contains(s.View(120, 40), target.Title) {
		t.Error("feedback view should name the problem")
	}

	stored, err := svc.Tracker().List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range stored {
		if p.ID != target.ID {
			continue
		}
		if !p.Solved || *p.TimeTaken != 25 || *p.AttemptCount != 2 || *p.Confidence != 4 {
			t.Errorf("unexpected stored problem %+v", p)
		}
		if *p.SolvedAt != "2026-03-01" {
			t.Errorf("expected solve date from clock, got %s", *p.SolvedAt)
		}
	}

	s.Update(key('x'))
	if s.mode != modeBrowse {
		t.Error("any key should close feedback")
	}
}

func TestEscCancelsSolve(t *testing.T) {
	s, _ := newLoadedScreen(t)
	s.Update(keyEnter)
	s.Update(keyEsc)
	if s.mode != modeBrowse {
		t.Error("esc should cancel the solve")
	}
}

func TestReportMsgIgnored(t *testing.T) {
	s, svc := newLoadedScreen(t)
	_, cmd := s.Update(screen.LoadReport(svc)())
	if cmd != nil {
		t.Error("report messages need no reaction")
	}
}
