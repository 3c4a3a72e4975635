// Package tracker keeps the problem log: which practice problems were
// solved, how long they took and how confident the learner felt.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Difficulty is the difficulty label of a problem.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// AllDifficulties returns difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty matches s case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range AllDifficulties() {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

const (
	MinConfidence = 1
	MaxConfidence = 5
)

// Problem is one entry of the problem log.
type Problem struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Topic        string     `json:"topic" yaml:"topic"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
	TimeTaken    *int       `json:"timeTaken,omitempty" yaml:"timeTaken,omitempty"`
	AttemptCount *int       `json:"attemptCount,omitempty" yaml:"attemptCount,omitempty"`
	Confidence   *int       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Solved       bool       `json:"solved" yaml:"solved"`
	SolvedAt     *string    `json:"solvedAt,omitempty" yaml:"solvedAt,omitempty"`
}

// Validate checks the shape of p.
func (p Problem) Validate() error {
	var errs []error
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(p.Topic) == "" {
		errs = append(errs, errors.New("topic is required"))
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	if p.TimeTaken != nil && *p.TimeTaken < 0 {
		errs = append(errs, fmt.Errorf("timeTaken must not be negative, got %d", *p.TimeTaken))
	}
	if p.AttemptCount != nil && *p.AttemptCount < 0 {
		errs = append(errs, fmt.Errorf("attemptCount must not be negative, got %d", *p.AttemptCount))
	}
	if p.Confidence != nil && (*p.Confidence < MinConfidence || *p.Confidence > MaxConfidence) {
		errs = append(errs, fmt.Errorf("confidence must be in %d..%d, got %d", MinConfidence, MaxConfidence, *p.Confidence))
	}
	if p.SolvedAt != nil {
		if _, err := time.Parse(DateLayout, *p.SolvedAt); err != nil {
			errs = append(errs, fmt.Errorf("solvedAt must be a YYYY-MM-DD date, got %q", *p.SolvedAt))
		}
	}
	return errors.Join(errs...)
}

// Normalize validates p and returns it with trimmed text fields and the
// canonical difficulty label.
func (p Problem) Normalize() (Problem, error) {
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Topic = strings.TrimSpace(p.Topic)
	p.Difficulty, _ = ParseDifficulty(string(p.Difficulty))
	return p, nil
}

// Attempts returns the recorded attempt count. Solved problems count at
// least once.
func (p Problem) Attempts() int {
	n := 0
	if p.AttemptCount != nil {
		n = *p.AttemptCount
	}
	if p.Solved && n < 1 {
		n = 1
	}
	return n
}

// Query narrows a problem list. Empty fields match everything.
type Query struct {
	Search     string
	Difficulty Difficulty
	Topic      string
}

// Filter returns the problems matching q, preserving order.
func Filter(problems []Problem, q Query) []Problem {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	var out []Problem
	for _, p := range problems {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Topic), search) {
			continue
		}
		if q.Difficulty != "" && p.Difficulty != q.Difficulty {
			continue
		}
		if q.Topic != "" && p.Topic != q.Topic {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Topics lists distinct topics in first-seen order.
func Topics(problems []Problem) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, p := range problems {
		if !seen[p.Topic] {
			seen[p.Topic] = true
			topics = append(topics, p.Topic)
		}
	}
	return topics
}

// Stats counts the problem log.
type Stats struct {
	Total  int `json:"total"`
	Solved int `json:"solved"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Summarize counts problems by status and difficulty.
func Summarize(problems []Problem) Stats {
	var s Stats
	for _, p := range problems {
		s.Total++
		if p.Solved {
			s.Solved++
		}
		switch p.Difficulty {
		case Easy:
			s.Easy++
		case Medium:
			s.Medium++
		case Hard:
			s.Hard++
		}
	}
	return s
}

func intPtr(v int) *int          { return &v }
func stringPtr(v string) *string { return &v }
