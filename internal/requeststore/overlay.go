package requeststore

// Overlay is a tentative local change applied before the backend of record
// confirms it. Confirm discards the overlay once an authoritative refresh
// supersedes it (including the already-processed conflict case, where the
// optimistic guess matched eventual reality); Rollback restores the prior
// value after a genuine failure.
type Overlay[T any] struct {
	store *Store[T]
	key   string
	entry int64
	done  bool
}

// ApplyOptimistic registers a tentative mutation for the request with the
// given id. The snapshot itself is untouched; reads merge the overlay
// until it is confirmed or rolled back.
func (s *Store[T]) ApplyOptimistic(key, requestID string, mutate func(*T)) *Overlay[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	if s.overlays[key] == nil {
		s.overlays[key] = make(map[int64]overlayEntry[T])
	}
	s.overlays[key][id] = overlayEntry[T]{requestID: requestID, mutate: mutate}

	return &Overlay[T]{store: s, key: key, entry: id}
}

// Confirm clears the overlay; the snapshot (post-refresh) is now the
// source of truth.
func (o *Overlay[T]) Confirm() {
	o.remove()
}

// Rollback clears the overlay so reads fall back to the prior value.
func (o *Overlay[T]) Rollback() {
	o.remove()
}

func (o *Overlay[T]) remove() {
	if o == nil || o.done {
		return
	}
	o.done = true

	o.store.mu.Lock()
	defer o.store.mu.Unlock()
	delete(o.store.overlays[o.key], o.entry)
}
