package tracker

import (
	"fmt"
	"math"
)

const (
	slowFactor = 1.3
	fastFactor = 0.7

	lowConfidence  = 2
	highConfidence = 4

	// reinforceAttempts is the attempt count above which a pattern is
	// flagged for daily practice.
	reinforceAttempts = 2
)

// TopicAverageTime is the mean recorded time of problems in topic. The
// bool is false when no problem in the topic has a recorded time.
func TopicAverageTime(problems []Problem, topic string) (float64, bool) {
	sum, n := 0, 0
	for _, p := range problems {
		if p.Topic == topic && p.TimeTaken != nil && *p.TimeTaken > 0 {
			sum += *p.TimeTaken
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Feedback produces coaching notes for a solve of problem. problems is the
// log as it was before the solve was recorded.
func Feedback(problems []Problem, problem Problem, in SolveInput) []string {
	var msgs []string

	avg, ok := TopicAverageTime(problems, problem.Topic)
	switch {
	case !ok:
		msgs = append(msgs, fmt.Sprintf("First recorded time for %s. %d min is now your baseline.", problem.Topic, in.TimeTaken))
	case float64(in.TimeTaken) > avg*slowFactor:
		msgs = append(msgs, fmt.Sprintf("Your time (%dmin) is above the topic average (%dmin). Focus on pattern recognition for %s problems.",
			in.TimeTaken, int(math.Round(avg)), problem.Topic))
	case float64(in.TimeTaken) < avg*fastFactor:
		pct := int(math.Round((avg - float64(in.TimeTaken)) / avg * 100))
		msgs = append(msgs, fmt.Sprintf("Excellent speed! You solved this %d%% faster than your %s average.", pct, problem.Topic))
	default:
		msgs = append(msgs, fmt.Sprintf("Good pace. Your time is consistent with your %s average.", problem.Topic))
	}

	switch {
	case in.Confidence <= lowConfidence:
		msgs = append(msgs, fmt.Sprintf("Low confidence detected. Review core %s patterns and attempt similar %s problems.", problem.Topic, problem.Difficulty))
	case in.Confidence >= highConfidence:
		msgs = append(msgs, fmt.Sprintf("High confidence! Consider trying harder %s problems to level up.", problem.Topic))
	}

	if in.Attempts > reinforceAttempts {
		msgs = append(msgs, fmt.Sprintf("Multiple attempts suggest this pattern needs reinforcement. Add %s to your daily practice.", problem.Topic))
	}
	return msgs
}
