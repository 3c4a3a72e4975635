package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Default keys, shared with the browser build of the dashboard so an
// exported localStorage dump can be loaded verbatim.
const (
	ProgressKey = "prepiq_completed_days"
	ProblemsKey = "prepiq_problems"
	MockTestKey = "prepiq_mock_history"
)

// AllKeys lists every key the application writes.
func AllKeys() []string {
	return []string{ProgressKey, ProblemsKey, MockTestKey}
}

// ListRepo persists a JSON-encoded list under a single key.
type ListRepo[T any] struct {
	kv  KV
	key string
}

// NewListRepo creates a repository for key on kv.
func NewListRepo[T any](kv KV, key string) *ListRepo[T] {
	return &ListRepo[T]{kv: kv, key: key}
}

// Key returns the key the repository reads and writes.
func (r *ListRepo[T]) Key() string {
	return r.key
}

// Load returns the stored list. The bool is false when nothing has been
// saved yet, in which case the list is nil.
func (r *ListRepo[T]) Load(ctx context.Context) ([]T, bool, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode %q: %w", r.key, err)
	}
	return items, true, nil
}

// Save replaces the stored list.
func (r *ListRepo[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", r.key, err)
	}
	return r.kv.Set(ctx, r.key, string(b))
}

// Clear removes the stored list.
func (r *ListRepo[T]) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, r.key)
}

// ProgressRepo stores the set of completed roadmap days.
type ProgressRepo = ListRepo[int]

// NewProgressRepo creates a ProgressRepo. An empty key selects ProgressKey.
func NewProgressRepo(kv KV, key string) *ProgressRepo {
	if key == "" {
		key = ProgressKey
	}
	return NewListRepo[int](kv, key)
}

// Reset deletes keys from kv, or every application key when none are
// given.
func Reset(ctx context.Context, kv KV, keys ...string) error {
	if len(keys) == 0 {
		keys = AllKeys()
	}
	for _, k := range keys {
		if err := kv.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
