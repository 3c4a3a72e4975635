package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/readiness"
	"github.com/abhisek/prepiq/internal/roadmap"
	"github.com/abhisek/prepiq/internal/store"
	"github.com/abhisek/prepiq/internal/tracker"
)

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return New(store.NewMemoryKV(), dataset.Default(), Sources{Seed: 1, Now: clock}, opts, nil)
}

func TestReportDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, Options{})

	r, err := svc.Report(ctx)
	require.NoError(t, err)

	ds := dataset.Default()
	assert.Len(t, r.Weaknesses, 12)
	assert.Equal(t, []string{"Graph", "DP", "Backtracking"}, r.WeakTopics)
	assert.Equal(t, readiness.Overall(ds.Performance, ds.Companies), r.Overall)
	assert.Len(t, r.Companies, 4)

	require.Len(t, r.Roadmap, roadmap.TotalDays)
	// Every ranked topic feeds the roadmap, so day 4 is the fourth weakest.
	assert.Equal(t, r.Weaknesses[3].Topic, r.Roadmap[3].Topic)
	assert.Equal(t, 0, r.Progress)

	assert.Equal(t, 25, r.Problems.Total)
	assert.Equal(t, 3, r.MockTests)
	assert.Equal(t, 62, r.MockAverage)
}

func TestReportWeakOnly(t *testing.T) {
	svc := newTestService(t, Options{WeakOnly: true, WeakTopicCount: 2})

	r, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Graph", "DP"}, r.WeakTopics)
	assert.Equal(t, "Graph", r.Roadmap[0].Topic)
	assert.Equal(t, "DP", r.Roadmap[1].Topic)
	assert.Equal(t, "Graph", r.Roadmap[2].Topic)
}

func TestReportTracksProgress(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, Options{})

	for _, d := range []int{1, 2, 3, 4, 5, 6} {
		_, err := svc.Roadmap().MarkDayComplete(ctx, d)
		require.NoError(t, err)
	}

	r, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, r.Progress)
}

func TestReportFromProblems(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, Options{FromProblems: true})

	perf, err := svc.Performance(ctx)
	require.NoError(t, err)
	assert.Equal(t, tracker.Aggregate(dataset.DefaultProblems()), perf)

	_, err = svc.Tracker().RecordSolve(ctx, "p13", tracker.SolveInput{TimeTaken: 30, Attempts: 2, Confidence: 3})
	require.NoError(t, err)

	r, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, r.Problems.Solved)

	var graph bool
	for _, tp := range r.Performance {
		if tp.Topic == "Graph" {
			graph = true
			assert.Equal(t, 2, tp.Solved)
		}
	}
	assert.True(t, graph)
}

func TestReportCountsMockRuns(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, Options{})

	_, err := svc.MockTests().Run(ctx, "Google")
	require.NoError(t, err)

	r, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, r.MockTests)
}

func TestReportStreakAndReviews(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, Options{})

	r, err := svc.Report(ctx)
	require.NoError(t, err)
	due, err := svc.Tracker().Due(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(due), r.DueReviews)

	_, err = svc.Tracker().RecordSolve(ctx, "p13", tracker.SolveInput{TimeTaken: 25, Confidence: 4})
	require.NoError(t, err)

	r, err = svc.Report(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Streak, 1)
}
