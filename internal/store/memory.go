package store

import (
	"context"
	"sync"
)

// MemoryGenerationLogStore keeps the most recent entries in memory.
// Older entries are dropped once capacity is reached.
type MemoryGenerationLogStore struct {
	mu       sync.RWMutex
	entries  []*GenerationLog
	ids      map[string]struct{}
	capacity int
}

var _ GenerationLogStore = (*MemoryGenerationLogStore)(nil)

// NewMemoryGenerationLogStore creates a store holding at most capacity entries.
// A non-positive capacity means MaxListLimit.
func NewMemoryGenerationLogStore(capacity int) *MemoryGenerationLogStore {
	if capacity <= 0 {
		capacity = MaxListLimit
	}
	return &MemoryGenerationLogStore{
		entries:  make([]*GenerationLog, 0, capacity),
		ids:      make(map[string]struct{}, capacity),
		capacity: capacity,
	}
}

// Record implements GenerationLogStore.
func (s *MemoryGenerationLogStore) Record(ctx context.Context, entry *GenerationLog) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := entry.ID.String()
	if _, ok := s.ids[key]; ok {
		return NewStoreError("generation_log", "record", "duplicate id", ErrDuplicate)
	}

	if len(s.entries) == s.capacity {
		delete(s.ids, s.entries[0].ID.String())
		s.entries = s.entries[1:]
	}
	stored := *entry
	s.entries = append(s.entries, &stored)
	s.ids[key] = struct{}{}
	return nil
}

// ListRecent implements GenerationLogStore.
func (s *MemoryGenerationLogStore) ListRecent(ctx context.Context, limit int) ([]*GenerationLog, error) {
	limit = ClampLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(limit, len(s.entries))
	out := make([]*GenerationLog, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < n; i-- {
		entry := *s.entries[i]
		out = append(out, &entry)
	}
	return out, nil
}
