package lineitem

import (
	"context"
	"sync"
)

// Store persists one line-item collection per client identity. A client
// that never saved anything loads an empty slice, not an error.
type Store interface {
	Load(ctx context.Context, clientID string) ([]Item, error)
	Save(ctx context.Context, clientID string, items []Item) error
	Ping(ctx context.Context) error
}

type MemStore struct {
	mu sync.RWMutex
	m  map[string][]Item
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]Item)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Load(ctx context.Context, clientID string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.m[clientID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemStore) Save(ctx context.Context, clientID string, items []Item) error {
	cp := make([]Item, len(items))
	copy(cp, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(cp) == 0 {
		delete(s.m, clientID)
		return nil
	}
	s.m[clientID] = cp
	return nil
}
