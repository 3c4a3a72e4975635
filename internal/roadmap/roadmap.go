// Package roadmap builds the 30-day study plan and tracks which days have
// been completed.
package roadmap

import "math"

const (
	// TotalDays is the length of every generated roadmap.
	TotalDays = 30

	// MockInterval places a mock interview on every day divisible by it.
	MockInterval = 7

	// MockInterviewTopic is the topic label of mock-interview days.
	MockInterviewTopic = "Mock Interview"

	MockProblems     = 5
	FocusProblems    = 4
	StandardProblems = 3

	// focusSlots is how many leading topics get FocusProblems.
	focusSlots = 2
)

// FallbackTopics is used when no weak topics are supplied.
var FallbackTopics = []string{"Array", "DP", "Graph"}

// Day is one entry of the roadmap.
type Day struct {
	Day             int    `json:"day"`
	Topic           string `json:"topic"`
	Problems        int    `json:"problems"`
	IsMockInterview bool   `json:"isMockInterview"`
	Completed       bool   `json:"completed"`
}

// TopicStat summarizes roadmap completion for a single topic.
type TopicStat struct {
	Topic      string `json:"topic"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// Generate lays out TotalDays days. Topics are cycled weakest first and the
// first two get more problems. completed lists days already done.
func Generate(weakTopics []string, completed []int) []Day {
	topics := weakTopics
	if len(topics) == 0 {
		topics = FallbackTopics
	}

	done := make(map[int]bool, len(completed))
	for _, d := range completed {
		done[d] = true
	}

	days := make([]Day, 0, TotalDays)
	for i := 1; i <= TotalDays; i++ {
		if i%MockInterval == 0 {
			days = append(days, Day{
				Day:             i,
				Topic:           MockInterviewTopic,
				Problems:        MockProblems,
				IsMockInterview: true,
				Completed:       done[i],
			})
			continue
		}

		idx := (i - 1) % len(topics)
		problems := StandardProblems
		if idx < focusSlots {
			problems = FocusProblems
		}
		days = append(days, Day{
			Day:       i,
			Topic:     topics[idx],
			Problems:  problems,
			Completed: done[i],
		})
	}
	return days
}

// Progress returns the percentage of completed days, rounded.
func Progress(days []Day) int {
	if len(days) == 0 {
		return 0
	}
	n := 0
	for _, d := range days {
		if d.Completed {
			n++
		}
	}
	return int(math.Round(float64(n) / float64(len(days)) * 100))
}

// TopicProgress groups days by topic in first-seen order.
func TopicProgress(days []Day) []TopicStat {
	var stats []TopicStat
	index := make(map[string]int)

	for _, d := range days {
		i, ok := index[d.Topic]
		if !ok {
			i = len(stats)
			index[d.Topic] = i
			stats = append(stats, TopicStat{Topic: d.Topic})
		}
		stats[i].Total++
		if d.Completed {
			stats[i].Completed++
		}
	}

	for i := range stats {
		stats[i].Percentage = int(math.Round(float64(stats[i].Completed) / float64(stats[i].Total) * 100))
	}
	return stats
}

// Apply returns a copy of days with day marked completed.
func Apply(days []Day, day int) []Day {
	out := make([]Day, len(days))
	copy(out, days)
	for i := range out {
		if out[i].Day == day {
			out[i].Completed = true
		}
	}
	return out
}

// TotalProblems sums the problem counts of days.
func TotalProblems(days []Day) int {
	n := 0
	for _, d := range days {
		n += d.Problems
	}
	return n
}
