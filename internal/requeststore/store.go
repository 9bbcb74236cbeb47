// Package requeststore keeps the canonical request lists served to the
// dashboard. Each key (a store id) holds one snapshot that is only ever
// replaced wholesale by a refresh from the backend of record, plus any
// optimistic overlays applied ahead of confirmation. The store never
// resolves write conflicts itself; after a conflicted mutation it degrades
// to trusting the next refresh.
package requeststore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader fetches the authoritative list for one key.
type Loader[T any] func(ctx context.Context, key string) ([]T, error)

type Store[T any] struct {
	idOf func(T) string
	load Loader[T]

	mu        sync.RWMutex
	snapshots map[string][]T
	loaded    map[string]bool
	overlays  map[string]map[int64]overlayEntry[T]
	nextID    int64

	group singleflight.Group
}

type overlayEntry[T any] struct {
	requestID string
	mutate    func(*T)
}

func New[T any](idOf func(T) string, load Loader[T]) *Store[T] {
	return &Store[T]{
		idOf:      idOf,
		load:      load,
		snapshots: make(map[string][]T),
		loaded:    make(map[string]bool),
		overlays:  make(map[string]map[int64]overlayEntry[T]),
	}
}

// Snapshot returns the current list for key, loading it on first use.
// Live overlays are merged into the returned copy; the underlying
// snapshot is never mutated in place.
func (s *Store[T]) Snapshot(ctx context.Context, key string) ([]T, error) {
	s.mu.RLock()
	ready := s.loaded[key]
	s.mu.RUnlock()

	if !ready {
		if err := s.Refresh(ctx, key); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	base := s.snapshots[key]
	out := make([]T, len(base))
	copy(out, base)

	for _, entry := range s.overlays[key] {
		for i := range out {
			if s.idOf(out[i]) == entry.requestID {
				entry.mutate(&out[i])
			}
		}
	}
	return out, nil
}

// Refresh replaces the snapshot for key with the loader's result.
// Concurrent refreshes of the same key are coalesced.
func (s *Store[T]) Refresh(ctx context.Context, key string) error {
	_, err, _ := s.group.Do(key, func() (any, error) {
		list, err := s.load(ctx, key)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snapshots[key] = list
		s.loaded[key] = true
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// Invalidate drops the snapshot for key so the next read reloads.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, key)
	delete(s.loaded, key)
}
