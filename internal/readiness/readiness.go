package readiness

import (
	"math"
	"sort"

	"github.com/abhisek/prepiq/internal/weakness"
)

const (
	// PenaltyCapMinutes is the average solve time at which the time
	// penalty saturates.
	PenaltyCapMinutes = 60.0

	// MaxTimePenalty is the largest share of a topic's score the time
	// penalty can remove.
	MaxTimePenalty = 0.3
)

// CompanyWeights maps a topic name to its relative weight in [0,1].
// Weights are not normalized.
type CompanyWeights map[string]float64

// CompanyPatterns maps a company name to its topic weights.
type CompanyPatterns map[string]CompanyWeights

// Companies returns the company names in alphabetical order.
func (p CompanyPatterns) Companies() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompanyReadiness is one company's readiness percentage.
type CompanyReadiness struct {
	Company   string `json:"company"`
	Readiness int    `json:"readiness"`
}

// TopicScore is the time-penalized accuracy of one topic, in [0,1].
func TopicScore(t weakness.TopicPerformance) float64 {
	timePenalty := math.Min(t.AvgTime/PenaltyCapMinutes, 1)
	return t.Accuracy() * (1 - timePenalty*MaxTimePenalty)
}

// Calculate returns how ready the user is for one company, 0..100.
// Only topics with a positive weight count; topics the company does not
// weigh neither help nor hurt. With no matching weight the result is 0.
func Calculate(topics []weakness.TopicPerformance, weights CompanyWeights) int {
	var totalScore, totalWeight float64
	for _, t := range topics {
		weight := weights[t.Topic]
		if weight <= 0 || t.Attempts <= 0 {
			continue
		}
		totalScore += TopicScore(t) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(totalScore / totalWeight * 100))
}

// Overall is the rounded mean readiness across every company.
func Overall(topics []weakness.TopicPerformance, patterns CompanyPatterns) int {
	if len(patterns) == 0 {
		return 0
	}
	sum := 0
	for _, name := range patterns.Companies() {
		sum += Calculate(topics, patterns[name])
	}
	return int(math.Round(float64(sum) / float64(len(patterns))))
}

// Breakdown returns every company's readiness, best prepared first.
// Equal readiness falls back to company name.
func Breakdown(topics []weakness.TopicPerformance, patterns CompanyPatterns) []CompanyReadiness {
	out := make([]CompanyReadiness, 0, len(patterns))
	for _, name := range patterns.Companies() {
		out = append(out, CompanyReadiness{
			Company:   name,
			Readiness: Calculate(topics, patterns[name]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Readiness > out[j].Readiness
	})
	return out
}

// Focus lists the topics that cost the most readiness for one company:
// weighted topics ordered by weight*(1-score), largest gap first. Weighted
// topics the user has never practiced are reported with a full gap.
func Focus(topics []weakness.TopicPerformance, weights CompanyWeights, n int) []string {
	type gap struct {
		topic string
		value float64
	}

	seen := make(map[string]bool, len(topics))
	var gaps []gap
	for _, t := range topics {
		seen[t.Topic] = true
		w := weights[t.Topic]
		if w <= 0 {
			continue
		}
		gaps = append(gaps, gap{topic: t.Topic, value: w * (1 - TopicScore(t))})
	}
	for topic, w := range weights {
		if w > 0 && !seen[topic] {
			gaps = append(gaps, gap{topic: topic, value: w})
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].value != gaps[j].value {
			return gaps[i].value > gaps[j].value
		}
		return gaps[i].topic < gaps[j].topic
	})

	var names []string
	for i := 0; i < n && i < len(gaps); i++ {
		names = append(names, gaps[i].topic)
	}
	return names
}
