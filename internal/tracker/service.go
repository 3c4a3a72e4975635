package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/store"
)

// ErrProblemNotFound is returned when a problem id is not in the log.
var ErrProblemNotFound = errors.New("tracker: problem not found")

// DateLayout is the layout of SolvedAt dates.
const DateLayout = "2006-01-02"

// SolveInput is what the learner reports after solving a problem.
type SolveInput struct {
	TimeTaken  int    // minutes
	Attempts   int    // defaults to 1
	Confidence int    // 1..5
	Date       string // YYYY-MM-DD, defaults to today
}

func (in SolveInput) validate() error {
	if in.TimeTaken <= 0 {
		return fmt.Errorf("time taken must be positive, got %d", in.TimeTaken)
	}
	if in.Attempts < 1 {
		return fmt.Errorf("attempts must be at least 1, got %d", in.Attempts)
	}
	if in.Confidence < MinConfidence || in.Confidence > MaxConfidence {
		return fmt.Errorf("confidence must be in %d..%d, got %d", MinConfidence, MaxConfidence, in.Confidence)
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", in.Date, err)
	}
	return nil
}

// SolveResult is returned by RecordSolve.
type SolveResult struct {
	Problem  Problem  `json:"problem"`
	Feedback []string `json:"feedback"`
}

// MergeResult counts the outcome of Merge.
type MergeResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Service manages the persisted problem log.
type Service struct {
	repo *Repo
	bank []Problem
	now  func() time.Time
	log  *zap.Logger
}

// Repo persists the problem log.
type Repo = store.ListRepo[Problem]

// NewRepo returns the problem log under key. An empty key selects
// store.ProblemsKey.
func NewRepo(kv store.KV, key string) *Repo {
	if key == "" {
		key = store.ProblemsKey
	}
	return store.NewListRepo[Problem](kv, key)
}

// NewService creates a tracker. bank is returned by List until the first
// write. A nil logger disables logging.
func NewService(repo *Repo, bank []Problem, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo: repo,
		bank: bank,
		now:  time.Now,
		log:  log.Named("tracker"),
	}
}

// SetClock overrides the clock used for default solve dates.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// List returns the saved log, or a copy of the built-in bank when nothing
// has been saved.
func (s *Service) List(ctx context.Context) ([]Problem, error) {
	problems, ok, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load problems: %w", err)
	}
	if !ok {
		return slices.Clone(s.bank), nil
	}
	return problems, nil
}

// RecordSolve marks problem id as solved and writes the whole log through.
func (s *Service) RecordSolve(ctx context.Context, id string, in SolveInput) (SolveResult, error) {
	if in.Attempts == 0 {
		in.Attempts = 1
	}
	if in.Date == "" {
		in.Date = s.now().Format(DateLayout)
	}
	if err := in.validate(); err != nil {
		return SolveResult{}, err
	}

	problems, err := s.List(ctx)
	if err != nil {
		return SolveResult{}, err
	}

	idx := slices.IndexFunc(problems, func(p Problem) bool { return p.ID == id })
	if idx < 0 {
		return SolveResult{}, fmt.Errorf("%w: %s", ErrProblemNotFound, id)
	}

	before := problems[idx]
	feedback := Feedback(problems, before, in)

	updated := before
	updated.Solved = true
	updated.TimeTaken = intPtr(in.TimeTaken)
	updated.AttemptCount = intPtr(in.Attempts)
	updated.Confidence = intPtr(in.Confidence)
	updated.SolvedAt = stringPtr(in.Date)

	next := slices.Clone(problems)
	next[idx] = updated
	if err := s.repo.Save(ctx, next); err != nil {
		return SolveResult{}, fmt.Errorf("save problems: %w", err)
	}

	s.log.Info("problem solved",
		zap.String("id", id),
		zap.String("topic", updated.Topic),
		zap.Int("time", in.TimeTaken),
		zap.Int("attempts", in.Attempts),
	)
	return SolveResult{Problem: updated, Feedback: feedback}, nil
}

// Merge upserts problems by id after normalizing them. New problems are
// appended in input order; any invalid problem aborts the merge.
func (s *Service) Merge(ctx context.Context, incoming []Problem) (MergeResult, error) {
	var res MergeResult
	normalized := make([]Problem, 0, len(incoming))
	for _, p := range incoming {
		n, err := p.Normalize()
		if err != nil {
			return res, fmt.Errorf("problem %q: %w", p.ID, err)
		}
		normalized = append(normalized, n)
	}

	problems, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	index := make(map[string]int, len(problems))
	for i, p := range problems {
		index[p.ID] = i
	}
	for _, p := range normalized {
		if i, ok := index[p.ID]; ok {
			problems[i] = p
			res.Updated++
			continue
		}
		index[p.ID] = len(problems)
		problems = append(problems, p)
		res.Created++
	}

	if err := s.repo.Save(ctx, problems); err != nil {
		return res, fmt.Errorf("save problems: %w", err)
	}
	s.log.Info("problems merged", zap.Int("created", res.Created), zap.Int("updated", res.Updated))
	return res, nil
}

// Due returns the solved problems due for review today.
func (s *Service) Due(ctx context.Context) ([]Review, error) {
	problems, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return DueForReview(problems, s.now()), nil
}

// Streak returns the current run of consecutive solving days.
func (s *Service) Streak(ctx context.Context) (int, error) {
	problems, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return Streak(problems, s.now()), nil
}

// Reset drops the saved log so List falls back to the bank.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset problems: %w", err)
	}
	return nil
}
