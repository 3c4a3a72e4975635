package tracker

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		confidence int
		want       int
	}{
		{0, 1},
		{1, 1},
		{2, 3},
		{3, 7},
		{4, 14},
		{5, 30},
		{9, 30},
	}
	for _, tt := range tests {
		if got := IntervalDays(tt.confidence); got != tt.want {
			t.Errorf("IntervalDays(%d) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}

func TestDueForReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	problems := []Problem{
		{ID: "a", Solved: true, SolvedAt: stringPtr("2026-03-09"), Confidence: intPtr(1)}, // due 03-10
		{ID: "b", Solved: true, SolvedAt: stringPtr("2026-03-01"), Confidence: intPtr(2)}, // due 03-04
		{ID: "c", Solved: true, SolvedAt: stringPtr("2026-03-05"), Confidence: intPtr(3)}, // due 03-12
		{ID: "d", Solved: false, SolvedAt: stringPtr("2026-01-01"), Confidence: intPtr(1)},
		{ID: "e", Solved: true, Confidence: intPtr(1)},
		{ID: "f", Solved: true, SolvedAt: stringPtr("bad"), Confidence: intPtr(1)},
		{ID: "g", Solved: true, SolvedAt: stringPtr("2026-03-04"), Confidence: intPtr(2)}, // due 03-07
	}

	due := DueForReview(problems, now)
	var ids []string
	for _, r := range due {
		ids = append(ids, r.Problem.ID)
	}
	want := []string{"b", "g", "a"}
	if len(ids) != len(want) {
		t.Fatalf("due = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("due = %v, want %v", ids, want)
		}
	}
	if due[0].OverdueDays != 6 || due[2].OverdueDays != 0 {
		t.Errorf("unexpected overdue days %d, %d", due[0].OverdueDays, due[2].OverdueDays)
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	solvedOn := func(dates ...string) []Problem {
		var ps []Problem
		for i, d := range dates {
			ps = append(ps, Problem{ID: string(rune('a' + i)), Solved: true, SolvedAt: stringPtr(d)})
		}
		return ps
	}

	tests := []struct {
		name     string
		problems []Problem
		want     int
	}{
		{"none", nil, 0},
		{"today only", solvedOn("2026-03-10"), 1},
		{"run ending today", solvedOn("2026-03-10", "2026-03-09", "2026-03-08"), 3},
		{"run ending yesterday", solvedOn("2026-03-09", "2026-03-08"), 2},
		{"broken", solvedOn("2026-03-10", "2026-03-08"), 1},
		{"stale", solvedOn("2026-03-07"), 0},
		{"same day twice", solvedOn("2026-03-10", "2026-03-10"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.problems, now); got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}

	unsolved := []Problem{{ID: "x", SolvedAt: stringPtr("2026-03-10")}}
	if got := Streak(unsolved, now); got != 0 {
		t.Errorf("unsolved problems should not count, got %d", got)
	}
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct{ current, want int }{
		{0, 3}, {2, 3}, {3, 7}, {13, 14}, {21, 30}, {30, 40}, {45, 50},
	}
	for _, tt := range tests {
		if got := NextStreakMilestone(tt.current); got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestDueForReviewAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Clocks spring forward on 2026-03-08, so that day is 23 hours long.
	problems := []Problem{{ID: "a", Solved: true, SolvedAt: stringPtr("2026-03-07"), Confidence: intPtr(1)}}
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, ny)

	due := DueForReview(problems, now)
	if len(due) != 1 {
		t.Fatalf("expected 1 due review, got %d", len(due))
	}
	if due[0].OverdueDays != 1 {
		t.Errorf("OverdueDays = %d, want 1", due[0].OverdueDays)
	}
}

func TestDaysBetweenCalendarDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	tests := []struct {
		from, to time.Time
		want     int
	}{
		{time.Date(2026, 3, 8, 0, 0, 0, 0, ny), time.Date(2026, 3, 9, 0, 0, 0, 0, ny), 1},
		{time.Date(2026, 3, 7, 0, 0, 0, 0, ny), time.Date(2026, 3, 9, 0, 0, 0, 0, ny), 2},
		{time.Date(2026, 11, 1, 0, 0, 0, 0, ny), time.Date(2026, 11, 2, 0, 0, 0, 0, ny), 1},
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		if got := daysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("daysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}
