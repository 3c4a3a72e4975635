package mocktest

import "fmt"

// Comment returns coaching feedback for a score in category.
func Comment(score int, category string) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Exceptional performance in %s! You demonstrate strong command of core patterns. Focus on edge cases and optimization to achieve perfection.", category)
	case score >= 60:
		return fmt.Sprintf("Solid foundation in %s. Your approach is correct but can be optimized. Practice timed drills to improve speed and accuracy under pressure.", category)
	case score >= 40:
		return fmt.Sprintf("%s needs targeted practice. Review fundamental patterns and solve 3-5 medium problems daily. Your weak areas need structured revision.", category)
	default:
		return fmt.Sprintf("Critical gaps in %s detected. Start with easy problems to build pattern recognition. Follow the roadmap for a structured improvement plan.", category)
	}
}

// Average returns the mean score of history rounded down, 0 when empty.
func Average(history []Result) int {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range history {
		sum += r.Score
	}
	return sum / len(history)
}

// Verdict is the pass status shown next to a score.
type Verdict string

const (
	Pass Verdict = "Pass"
	Avg  Verdict = "Avg"
	Fail Verdict = "Fail"
)

// VerdictFor bands a score: 70 and above passes, 50 and above is average.
func VerdictFor(score int) Verdict {
	switch {
	case score >= 70:
		return Pass
	case score >= 50:
		return Avg
	}
	return Fail
}
