// Package mocktest simulates timed mock tests and keeps their history.
// Scores are random; nothing here grades real answers.
package mocktest

// Type distinguishes pattern tests from company tests.
type Type string

const (
	Pattern Type = "pattern"
	Company Type = "company"
)

// Result is the outcome of one mock test.
type Result struct {
	ID             string   `json:"id" yaml:"id"`
	Type           Type     `json:"type" yaml:"type"`
	Category       string   `json:"category" yaml:"category"`
	Score          int      `json:"score" yaml:"score"`
	TotalQuestions int      `json:"totalQuestions" yaml:"totalQuestions"`
	TimeTaken      int      `json:"timeTaken" yaml:"timeTaken"`
	Date           string   `json:"date" yaml:"date"`
	Strengths      []string `json:"strengths" yaml:"strengths"`
	Weaknesses     []string `json:"weaknesses" yaml:"weaknesses"`
}

// Test is an entry of the catalog.
type Test struct {
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	Description string `json:"description"`
}
