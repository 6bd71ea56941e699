package store

import (
	"context"
	"sync"
	"time"

	"github.com/credlock/argonpass"
)

type memoryEntry struct {
	record    *argonpass.Record
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is an in-process Store for tests and single-node embedding.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Save describes the save operation and its observable behavior.
func (s *MemoryStore) Save(_ context.Context, name string, record *argonpass.Record, ttl time.Duration) error {
	if _, err := record.Gob(); err != nil {
		// Same acceptance rules as the Redis store.
		return err
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[name] = memoryEntry{
		record:    cloneRecord(record),
		expiresAt: expiresAt,
	}

	return nil
}

// Load describes the load operation and its observable behavior.
func (s *MemoryStore) Load(_ context.Context, name string) (*argonpass.Record, error) {
	s.mu.RLock()
	entry, ok := s.entries[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrRecordNotFound
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, name)
		s.mu.Unlock()
		return nil, ErrRecordNotFound
	}

	return cloneRecord(entry.record), nil
}

// Delete describes the delete operation and its observable behavior.
func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, name)

	return nil
}
