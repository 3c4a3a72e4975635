// Package dashboard combines the analytics into the single report the CLI
// and the interactive dashboard render.
package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/mocktest"
	"github.com/abhisek/prepiq/internal/readiness"
	"github.com/abhisek/prepiq/internal/roadmap"
	"github.com/abhisek/prepiq/internal/tracker"
	"github.com/abhisek/prepiq/internal/weakness"
)

// Options selects the inputs of a report.
type Options struct {
	// FromProblems derives topic performance from the problem log instead
	// of the dataset's performance table.
	FromProblems bool

	// WeakOnly feeds only the top WeakTopicCount Weak topics to the
	// roadmap. Otherwise every topic is used, weakest first.
	WeakOnly bool

	// WeakTopicCount bounds the WeakTopics list. Defaults to
	// weakness.DefaultWeakTopicCount.
	WeakTopicCount int
}

// Report is one consistent view of the user's preparation.
type Report struct {
	Performance   []weakness.TopicPerformance  `json:"performance"`
	Weaknesses    []weakness.Result            `json:"weaknesses"`
	WeakTopics    []string                     `json:"weakTopics"`
	Overall       int                          `json:"overall"`
	Companies     []readiness.CompanyReadiness `json:"companies"`
	Roadmap       []roadmap.Day                `json:"roadmap"`
	Progress      int                          `json:"progress"`
	TopicProgress []roadmap.TopicStat          `json:"topicProgress"`
	Problems      tracker.Stats                `json:"problems"`
	Streak        int                          `json:"streak"`
	DueReviews    int                          `json:"dueReviews"`
	MockTests     int                          `json:"mockTests"`
	MockAverage   int                          `json:"mockAverage"`
}

// Service builds reports.
type Service struct {
	data     *dataset.Dataset
	roadmap  *roadmap.Service
	tracker  *tracker.Service
	mocktest *mocktest.Service
	opts     Options
	log      *zap.Logger
}

// NewService wires the report sources together. A nil logger disables
// logging.
func NewService(data *dataset.Dataset, rm *roadmap.Service, tr *tracker.Service, mt *mocktest.Service, opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.WeakTopicCount <= 0 {
		opts.WeakTopicCount = weakness.DefaultWeakTopicCount
	}
	return &Service{
		data:     data,
		roadmap:  rm,
		tracker:  tr,
		mocktest: mt,
		opts:     opts,
		log:      log.Named("dashboard"),
	}
}

func (s *Service) Dataset() *dataset.Dataset { return s.data }
func (s *Service) Roadmap() *roadmap.Service { return s.roadmap }
func (s *Service) Tracker() *tracker.Service { return s.tracker }
func (s *Service) MockTests() *mocktest.Service { return s.mocktest }

// Performance returns the topic performance the analytics run on.
func (s *Service) Performance(ctx context.Context) ([]weakness.TopicPerformance, error) {
	if !s.opts.FromProblems {
		return s.data.Performance, nil
	}
	problems, err := s.tracker.List(ctx)
	if err != nil {
		return nil, err
	}
	return tracker.Aggregate(problems), nil
}

// RoadmapTopics picks the roadmap's topic list from ranked results.
func (s *Service) RoadmapTopics(results []weakness.Result) []string {
	if !s.opts.WeakOnly {
		return weakness.RankedTopics(results)
	}
	var topics []string
	for _, r := range results {
		if len(topics) == s.opts.WeakTopicCount {
			break
		}
		if r.Classification == weakness.Weak {
			topics = append(topics, r.Topic)
		}
	}
	return topics
}

// Report computes every figure of the dashboard.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	perf, err := s.Performance(ctx)
	if err != nil {
		return nil, fmt.Errorf("load performance: %w", err)
	}

	results := weakness.AnalyzeWeaknesses(perf)
	days, err := s.roadmap.Build(ctx, s.RoadmapTopics(results))
	if err != nil {
		return nil, err
	}

	problems, err := s.tracker.List(ctx)
	if err != nil {
		return nil, err
	}
	due, err := s.tracker.Due(ctx)
	if err != nil {
		return nil, err
	}
	streak, err := s.tracker.Streak(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.mocktest.History(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Performance:   perf,
		Weaknesses:    results,
		WeakTopics:    weakness.WeakTopics(perf, s.opts.WeakTopicCount),
		Overall:       readiness.Overall(perf, s.data.Companies),
		Companies:     readiness.Breakdown(perf, s.data.Companies),
		Roadmap:       days,
		Progress:      roadmap.Progress(days),
		TopicProgress: roadmap.TopicProgress(days),
		Problems:      tracker.Summarize(problems),
		Streak:        streak,
		DueReviews:    len(due),
		MockTests:     len(history),
		MockAverage:   mocktest.Average(history),
	}

	s.log.Debug("report built",
		zap.Int("topics", len(perf)),
		zap.Int("overall", r.Overall),
		zap.Int("progress", r.Progress),
	)
	return r, nil
}
