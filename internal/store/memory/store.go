// Package memory is a map-backed order store used when Postgres is not
// configured, and as a lightweight backend in tests.
package memory

import (
	"context"
	"sync"

	"github.com/nsridhar76/go-cancelsvc/internal/domain"
	"github.com/nsridhar76/go-cancelsvc/internal/store"
)

type Store struct {
	mu     sync.RWMutex
	orders map[int64]domain.Order
}

func New() *Store {
	return &Store{orders: make(map[int64]domain.Order)}
}

// Lookup returns a copy of the stored order, so callers can mutate the
// result without going through Save.
func (s *Store) Lookup(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &o, nil
}

func (s *Store) Save(_ context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.ID] = *o
	return nil
}
