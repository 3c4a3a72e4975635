package mocktest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepiq/internal/store"
)

var companies = []string{"Amazon", "Apple", "Google", "Meta"}

func fixedClock() time.Time {
	return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
}

func TestSimulateBounds(t *testing.T) {
	sim := NewSimulator(42, fixedClock)
	test := Test{Name: "Graph", Type: Pattern}

	for i := 0; i < 500; i++ {
		r := sim.Simulate(test)
		require.GreaterOrEqual(t, r.Score, 40)
		require.LessOrEqual(t, r.Score, 89)
		require.GreaterOrEqual(t, r.TimeTaken, 30)
		require.LessOrEqual(t, r.TimeTaken, 59)
		require.Equal(t, TotalQuestions, r.TotalQuestions)
		require.Equal(t, "2026-03-02", r.Date)
		require.Equal(t, "Graph", r.Category)
		require.Equal(t, Pattern, r.Type)

		require.Len(t, r.Strengths, 2)
		require.Len(t, r.Weaknesses, 2)
		require.NotEqual(t, r.Strengths[0], r.Strengths[1])
		require.NotEqual(t, r.Weaknesses[0], r.Weaknesses[1])
		require.Contains(t, strengthPool, r.Strengths[0])
		require.Contains(t, weaknessPool, r.Weaknesses[1])
	}
}

func TestSimulateSeeded(t *testing.T) {
	test := Test{Name: "DP", Type: Pattern}
	a := NewSimulator(7, fixedClock)
	b := NewSimulator(7, fixedClock)

	for i := 0; i < 10; i++ {
		ra, rb := a.Simulate(test), b.Simulate(test)
		assert.NotEqual(t, ra.ID, rb.ID, "ids are unique")
		ra.ID, rb.ID = "", ""
		assert.Equal(t, ra, rb)
	}
}

func TestComment(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Exceptional performance in Array"},
		{80, "Exceptional"},
		{79, "Solid foundation"},
		{60, "Solid foundation"},
		{59, "needs targeted practice"},
		{40, "needs targeted practice"},
		{39, "Critical gaps in Array"},
	}
	for _, tt := range tests {
		got := Comment(tt.score, "Array")
		assert.True(t, strings.Contains(got, tt.want), "score %d: %q", tt.score, got)
	}
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0, Average(nil))
	assert.Equal(t, 62, Average([]Result{{Score: 85}, {Score: 62}, {Score: 40}}))
}

func TestCatalog(t *testing.T) {
	c := NewCatalog(companies)

	assert.Len(t, c.Tests(), 8)
	assert.Len(t, c.ByType(Pattern), 4)
	assert.Len(t, c.ByType(Company), 4)

	test, err := c.Find("google")
	require.NoError(t, err)
	assert.Equal(t, Company, test.Type)
	assert.Equal(t, "Google", test.Name)

	test, err = c.Find("dp")
	require.NoError(t, err)
	assert.Equal(t, Pattern, test.Type)

	_, err = c.Find("Netflix")
	assert.True(t, errors.Is(err, ErrUnknownTest))

	custom := NewCatalog([]string{"Stripe"})
	test, err = custom.Find("Stripe")
	require.NoError(t, err)
	assert.NotEmpty(t, test.Description)
}

func sampleHistory() []Result {
	return []Result{
		{ID: "mt1", Type: Pattern, Category: "Array", Score: 85, TotalQuestions: 10, TimeTaken: 45, Date: "2026-02-20"},
		{ID: "mt2", Type: Company, Category: "Amazon", Score: 62, TotalQuestions: 10, TimeTaken: 55, Date: "2026-02-22"},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := NewRepo(store.NewMemoryKV(), "")
	return NewService(repo, NewSimulator(1, fixedClock), NewCatalog(companies), sampleHistory(), nil)
}

func TestServiceHistoryDefaultsToSample(t *testing.T) {
	svc := newTestService(t)
	got, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleHistory(), got)
}

func TestServiceRun(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Run(ctx, "Amazon")
	require.NoError(t, err)
	assert.Equal(t, Company, first.Type)

	second, err := svc.Run(ctx, "array")
	require.NoError(t, err)
	assert.Equal(t, "Array", second.Category)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, second.ID, history[0].ID, "newest first")
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, "mt1", history[2].ID)
}

func TestServiceRunUnknown(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Run(ctx, "Netflix")
	assert.True(t, errors.Is(err, ErrUnknownTest))

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestServiceReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Run(ctx, "Meta")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx))

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleHistory(), history)
}

func TestNewRepoKeys(t *testing.T) {
	kv := store.NewMemoryKV()
	assert.Equal(t, store.MockTestKey, NewRepo(kv, "").Key())
	assert.Equal(t, "team_mocks", NewRepo(kv, "team_mocks").Key())
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score int
		want  Verdict
	}{
		{100, Pass},
		{70, Pass},
		{69, Avg},
		{50, Avg},
		{49, Fail},
		{0, Fail},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerdictFor(tt.score), "score %d", tt.score)
	}
}
