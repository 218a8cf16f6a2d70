package txlog

import "sync"

// Locked serializes access to a Log with a read/write mutex. Appends take the
// write lock; lookups share the read lock since they never touch links.
type Locked[V any] struct {
	mu  sync.RWMutex
	log *Log[V]
}

// NewLocked returns an empty log guarded by a mutex.
func NewLocked[V any](opts ...Option) *Locked[V] {
	return &Locked[V]{log: New[V](opts...)}
}

// Append adds an entry under the write lock. See Log.Append.
func (s *Locked[V]) Append(offset uint64, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Append(offset, value)
}

// AppendChecked adds an entry under the write lock. See Log.AppendChecked.
func (s *Locked[V]) AppendChecked(offset uint64, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.AppendChecked(offset, value)
}

// Find looks up offset under the read lock. See Log.Find.
func (s *Locked[V]) Find(offset uint64) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.Find(offset)
}

// Len returns the number of appended entries.
func (s *Locked[V]) Len() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.Len()
}

// Stats returns a snapshot of the log's counters.
func (s *Locked[V]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.Stats()
}
