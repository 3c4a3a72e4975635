package mocktest

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/store"
)

// ErrUnknownTest is returned for a category that is not in the catalog.
var ErrUnknownTest = errors.New("mocktest: unknown test")

// Service runs mock tests and persists their history, newest first.
type Service struct {
	repo    *Repo
	sim     *Simulator
	catalog *Catalog
	sample  []Result
	log     *zap.Logger
}

// Repo persists the mock-test history.
type Repo = store.ListRepo[Result]

// NewRepo returns the history under key. An empty key selects
// store.MockTestKey.
func NewRepo(kv store.KV, key string) *Repo {
	if key == "" {
		key = store.MockTestKey
	}
	return store.NewListRepo[Result](kv, key)
}

// NewService creates a mock-test service. sample is returned by History
// until the first run is saved.
func NewService(repo *Repo, sim *Simulator, catalog *Catalog, sample []Result, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		sim:     sim,
		catalog: catalog,
		sample:  sample,
		log:     log.Named("mocktest"),
	}
}

// Catalog returns the test catalog.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// History returns saved results, or a copy of the sample history.
func (s *Service) History(ctx context.Context) ([]Result, error) {
	history, ok, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mock history: %w", err)
	}
	if !ok {
		return slices.Clone(s.sample), nil
	}
	return history, nil
}

// Run simulates the named test and prepends the result to the history.
func (s *Service) Run(ctx context.Context, name string) (Result, error) {
	test, err := s.catalog.Find(name)
	if err != nil {
		return Result{}, err
	}

	history, err := s.History(ctx)
	if err != nil {
		return Result{}, err
	}

	res := s.sim.Simulate(test)
	next := append([]Result{res}, history...)
	if err := s.repo.Save(ctx, next); err != nil {
		return Result{}, fmt.Errorf("save mock history: %w", err)
	}

	s.log.Info("mock test finished",
		zap.String("category", res.Category),
		zap.String("type", string(res.Type)),
		zap.Int("score", res.Score),
	)
	return res, nil
}

// Reset drops the saved history.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset mock history: %w", err)
	}
	return nil
}
