package store

import (
	"context"
	"sort"
	"sync"

	"github.com/dangsayz/spreadpress/pkg/gallery"
)

// MemoryStore is an in-memory gallery store for development and testing.
// Galleries do not survive process restarts.
type MemoryStore struct {
	mu        sync.RWMutex
	galleries map[string]gallery.Gallery
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		galleries: make(map[string]gallery.Gallery),
	}
}

// Get retrieves a gallery by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (gallery.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.galleries[id]
	if !ok {
		return gallery.Gallery{}, ErrNotFound
	}
	return g, nil
}

// Put stores a gallery.
func (s *MemoryStore) Put(ctx context.Context, g gallery.Gallery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.galleries[g.ID] = g
	return nil
}

// Delete removes a gallery.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.galleries, id)
	return nil
}

// List returns all gallery IDs, sorted.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.galleries))
	for id := range s.galleries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close does nothing.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
