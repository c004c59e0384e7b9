package store

import (
	"context"
	"sort"
	"sync"

	"github.com/mlandau/wavetrace/pkg/errors"
)

// MemoryStore is an in-memory store for development and testing.
type MemoryStore struct {
	mu       sync.RWMutex
	diagrams map[string]*Diagram
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{diagrams: make(map[string]*Diagram)}
}

// Put inserts or replaces a diagram by ID.
func (s *MemoryStore) Put(ctx context.Context, d *Diagram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *d
	s.diagrams[d.ID] = &cp
	return nil
}

// Get retrieves a diagram by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.diagrams[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "diagram %q not found", id)
	}
	cp := *d
	return &cp, nil
}

// List returns all diagrams, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Diagram, 0, len(s.diagrams))
	for _, d := range s.diagrams {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a diagram by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.diagrams[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "diagram %q not found", id)
	}
	delete(s.diagrams, id)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
