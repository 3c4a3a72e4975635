package weakness

import (
	"math"
	"sort"
)

const (
	// BaselineMinutes is the neutral average solve time.
	BaselineMinutes = 30.0

	// WeakThreshold and AverageThreshold partition the score line:
	// score > 5 is Weak, 2 < score <= 5 is Average, otherwise Strong.
	WeakThreshold    = 5.0
	AverageThreshold = 2.0

	// DefaultWeakTopicCount is the default n for WeakTopics.
	DefaultWeakTopicCount = 3
)

// CalculateWeakness scores a topic; higher means weaker.
//
//	score = (1 - accuracy) * (avgTime/30) * (1 + log2(attempts+1)/4) * 10
//
// The result is rounded to 2 decimals. A topic with no attempts has no
// evidence either way and scores 0.
func CalculateWeakness(t TopicPerformance) float64 {
	if t.Attempts <= 0 {
		return 0
	}
	accuracy := t.Accuracy()
	timeFactor := t.AvgTime / BaselineMinutes
	volumeFactor := math.Log2(float64(t.Attempts)+1) / 4

	return roundTo((1-accuracy)*timeFactor*(1+volumeFactor)*10, 2)
}

// ClassifyStrength maps a weakness score to its classification.
func ClassifyStrength(score float64) Classification {
	switch {
	case score > WeakThreshold:
		return Weak
	case score > AverageThreshold:
		return Average
	default:
		return Strong
	}
}

// AnalyzeWeaknesses scores and classifies every topic and returns the
// results weakest first. Topics with equal scores keep their input order.
func AnalyzeWeaknesses(topics []TopicPerformance) []Result {
	results := make([]Result, 0, len(topics))
	for _, t := range topics {
		score := CalculateWeakness(t)
		results = append(results, Result{
			Topic:          t.Topic,
			Score:          score,
			Classification: ClassifyStrength(score),
			Accuracy:       roundTo(t.Accuracy()*100, 1),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// WeakTopics returns up to n topic names classified as Weak, weakest first.
// It never pads: fewer Weak topics means a shorter list.
func WeakTopics(topics []TopicPerformance, n int) []string {
	var names []string
	for _, r := range AnalyzeWeaknesses(topics) {
		if len(names) >= n {
			break
		}
		if r.Classification == Weak {
			names = append(names, r.Topic)
		}
	}
	return names
}

// RankedTopics returns every topic name in weakest-first order.
func RankedTopics(results []Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Topic
	}
	return names
}

// CountByClassification tallies results per classification.
func CountByClassification(results []Result) map[Classification]int {
	counts := make(map[Classification]int, 3)
	for _, r := range results {
		counts[r.Classification]++
	}
	return counts
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
