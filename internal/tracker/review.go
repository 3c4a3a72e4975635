package tracker

import (
	"slices"
	"strings"
	"time"
)

// ReviewIntervals is the days until a solved problem is due for review,
// indexed by confidence-1. Shakier solves come back sooner.
var ReviewIntervals = []int{1, 3, 7, 14, 30}

// Review is a solved problem that is due to be revisited.
type Review struct {
	Problem     Problem   `json:"problem"`
	Due         time.Time `json:"due"`
	OverdueDays int       `json:"overdueDays"`
}

// IntervalDays returns the review interval for a confidence level.
// Out-of-range confidences are clamped.
func IntervalDays(confidence int) int {
	i := min(max(confidence, MinConfidence), MaxConfidence) - 1
	return ReviewIntervals[i]
}

// DueForReview lists solved problems whose review date is on or before
// now, most overdue first. Problems without a solve date or confidence
// are never due.
func DueForReview(problems []Problem, now time.Time) []Review {
	today := truncateDay(now)
	var due []Review
	for _, p := range problems {
		if !p.Solved || p.SolvedAt == nil || p.Confidence == nil {
			continue
		}
		solvedAt, err := time.ParseInLocation(DateLayout, *p.SolvedAt, today.Location())
		if err != nil {
			continue
		}
		at := solvedAt.AddDate(0, 0, IntervalDays(*p.Confidence))
		if today.Before(at) {
			continue
		}
		due = append(due, Review{
			Problem:     p,
			Due:         at,
			OverdueDays: daysBetween(at, today),
		})
	}

	slices.SortStableFunc(due, func(a, b Review) int {
		if a.OverdueDays != b.OverdueDays {
			return b.OverdueDays - a.OverdueDays
		}
		return strings.Compare(a.Problem.ID, b.Problem.ID)
	})
	return due
}

// Streak counts consecutive days with at least one solve, ending today.
// A streak whose last solve was yesterday is still alive.
func Streak(problems []Problem, now time.Time) int {
	today := truncateDay(now)
	days := make(map[string]bool)
	for _, p := range problems {
		if p.Solved && p.SolvedAt != nil {
			days[*p.SolvedAt] = true
		}
	}

	day := today
	if !days[day.Format(DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for days[day.Format(DateLayout)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// NextStreakMilestone returns the next streak length worth celebrating.
func NextStreakMilestone(current int) int {
	for _, m := range []int{3, 7, 14, 21, 30} {
		if m > current {
			return m
		}
	}
	// Beyond a month, every 10 days.
	return (current/10 + 1) * 10
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from from to to. Dates are compared in
// UTC, where every day is 24 hours, so DST changes cannot shorten a day.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
