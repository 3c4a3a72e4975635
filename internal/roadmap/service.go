package roadmap

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/store"
)

// ErrInvalidDay is returned when a day is outside 1..TotalDays.
var ErrInvalidDay = errors.New("roadmap: day out of range")

// Service persists completed days and builds roadmaps against them.
type Service struct {
	repo *store.ProgressRepo
	log  *zap.Logger
}

// NewService creates a roadmap service. A nil logger disables logging.
func NewService(repo *store.ProgressRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log.Named("roadmap")}
}

// Completed returns the persisted completed days in insertion order.
func (s *Service) Completed(ctx context.Context) ([]int, error) {
	days, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completed days: %w", err)
	}
	return days, nil
}

// Build generates the roadmap for weakTopics using the persisted state.
func (s *Service) Build(ctx context.Context, weakTopics []string) ([]Day, error) {
	completed, err := s.Completed(ctx)
	if err != nil {
		return nil, err
	}
	return Generate(weakTopics, completed), nil
}

// MarkDayComplete adds day to the completed set and writes it through.
// Marking a day twice is a no-op.
func (s *Service) MarkDayComplete(ctx context.Context, day int) ([]int, error) {
	if day < 1 || day > TotalDays {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}

	completed, err := s.Completed(ctx)
	if err != nil {
		return nil, err
	}
	if slices.Contains(completed, day) {
		return completed, nil
	}

	completed = append(completed, day)
	if err := s.repo.Save(ctx, completed); err != nil {
		return nil, fmt.Errorf("save completed days: %w", err)
	}
	s.log.Info("day completed", zap.Int("day", day), zap.Int("total", len(completed)))
	return completed, nil
}

// Reset clears the completed-day set.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset roadmap: %w", err)
	}
	s.log.Info("roadmap progress reset")
	return nil
}
