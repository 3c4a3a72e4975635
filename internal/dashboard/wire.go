package dashboard

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/mocktest"
	"github.com/abhisek/prepiq/internal/roadmap"
	"github.com/abhisek/prepiq/internal/store"
	"github.com/abhisek/prepiq/internal/tracker"
)

// Sources names the storage keys and clocks New wires into the services.
// Empty keys fall back to the store defaults.
type Sources struct {
	ProgressKey string
	ProblemsKey string
	MockTestKey string

	// Seed fixes the mock-test simulator; 0 seeds from the clock.
	Seed uint64
	// Now overrides time.Now for solve dates and mock-test dates.
	Now func() time.Time
}

// New builds every service on top of kv and returns the dashboard over
// them.
func New(kv store.KV, data *dataset.Dataset, src Sources, opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}

	rm := roadmap.NewService(store.NewProgressRepo(kv, src.ProgressKey), log)

	tr := tracker.NewService(tracker.NewRepo(kv, src.ProblemsKey), data.Problems, log)
	if src.Now != nil {
		tr.SetClock(src.Now)
	}

	mt := mocktest.NewService(
		mocktest.NewRepo(kv, src.MockTestKey),
		mocktest.NewSimulator(src.Seed, src.Now),
		mocktest.NewCatalog(data.Companies.Companies()),
		data.MockTests,
		log,
	)

	return NewService(data, rm, tr, mt, opts, log)
}
