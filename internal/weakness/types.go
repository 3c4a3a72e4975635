package weakness

// Classification is the three-way strength bucket for a topic.
type Classification string

const (
	Weak    Classification = "Weak"
	Average Classification = "Average"
	Strong  Classification = "Strong"
)

// AllClassifications returns the classifications from weakest to strongest.
func AllClassifications() []Classification {
	return []Classification{Weak, Average, Strong}
}

// TopicPerformance is one topic's practice record within a snapshot.
type TopicPerformance struct {
	Topic    string  `json:"topic" yaml:"topic"`
	Attempts int     `json:"attempts" yaml:"attempts"`
	Solved   int     `json:"solved" yaml:"solved"`
	AvgTime  float64 `json:"avgTime" yaml:"avgTime"` // minutes
}

// Accuracy returns solved/attempts, or 0 when the topic has no attempts.
func (t TopicPerformance) Accuracy() float64 {
	if t.Attempts <= 0 {
		return 0
	}
	return float64(t.Solved) / float64(t.Attempts)
}

// Result is the derived weakness analysis for one topic.
type Result struct {
	Topic          string         `json:"topic"`
	Score          float64        `json:"score"`
	Classification Classification `json:"classification"`
	Accuracy       float64        `json:"accuracy"` // percentage, 1 decimal
}
