package tracker

import (
	"math"

	"github.com/abhisek/prepiq/internal/weakness"
)

// Aggregate derives per-topic performance from the problem log. Topics are
// returned in first-seen order; topics nobody attempted are left out.
// AvgTime is the mean of the recorded solve times, rounded to one decimal.
func Aggregate(problems []Problem) []weakness.TopicPerformance {
	type acc struct {
		attempts, solved int
		timeSum, timed   int
	}

	var order []string
	byTopic := make(map[string]*acc)
	for _, p := range problems {
		a, ok := byTopic[p.Topic]
		if !ok {
			a = &acc{}
			byTopic[p.Topic] = a
			order = append(order, p.Topic)
		}
		a.attempts += p.Attempts()
		if p.Solved {
			a.solved++
		}
		if p.TimeTaken != nil {
			a.timeSum += *p.TimeTaken
			a.timed++
		}
	}

	var out []weakness.TopicPerformance
	for _, topic := range order {
		a := byTopic[topic]
		if a.attempts <= 0 {
			continue
		}
		var avg float64
		if a.timed > 0 {
			avg = math.Round(float64(a.timeSum)/float64(a.timed)*10) / 10
		}
		out = append(out, weakness.TopicPerformance{
			Topic:    topic,
			Attempts: a.attempts,
			Solved:   a.solved,
			AvgTime:  avg,
		})
	}
	return out
}
