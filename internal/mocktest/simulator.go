package mocktest

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	MinScore       = 40
	scoreSpan      = 50
	TotalQuestions = 10
	MinMinutes     = 30
	minuteSpan     = 30
	picks          = 2
)

var strengthPool = []string{
	"Pattern recognition", "Time complexity analysis", "Edge case handling",
	"Code readability", "Optimal solution", "Hash map usage",
	"Two pointer technique", "Sliding window mastery",
}

var weaknessPool = []string{
	"Space optimization", "Recursive thinking", "State transition design",
	"Graph traversal efficiency", "Boundary conditions", "Time management",
	"DP state definition", "Backtracking pruning",
}

// Simulator produces random mock-test results. It is safe for concurrent
// use. Two simulators with the same seed and clock produce the same
// scores, times and picks.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSimulator creates a simulator. A zero seed is replaced with one
// derived from the clock. A nil now uses time.Now.
func NewSimulator(seed uint64, now func() time.Time) *Simulator {
	if now == nil {
		now = time.Now
	}
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}
	return &Simulator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

// Simulate runs test and returns its result.
func (s *Simulator) Simulate(test Test) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Result{
		ID:             uuid.NewString(),
		Type:           test.Type,
		Category:       test.Name,
		Score:          MinScore + s.rng.IntN(scoreSpan),
		TotalQuestions: TotalQuestions,
		TimeTaken:      MinMinutes + s.rng.IntN(minuteSpan),
		Date:           s.now().Format("2006-01-02"),
		Strengths:      s.pick(strengthPool, picks),
		Weaknesses:     s.pick(weaknessPool, picks),
	}
}

// pick draws n distinct items from pool.
func (s *Simulator) pick(pool []string, n int) []string {
	idx := s.rng.Perm(len(pool))
	out := make([]string, 0, n)
	for _, i := range idx[:min(n, len(pool))] {
		out = append(out, pool[i])
	}
	return out
}
