// Package history keeps an in-memory, process-lifetime record of every
// order created since startup. Entries are append-only: they are never
// mutated, reordered, or pruned.
package history

import (
	"sync"

	"github.com/joao-fontenele/order-intake/internal/domain"
)

type Store struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewStore() *Store {
	return &Store{}
}

// Append records an order. The critical section covers only the slice
// append so concurrent writers queue briefly rather than serializing
// whole requests.
func (s *Store) Append(order domain.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()
}

// Snapshot returns a copy of the history in insertion order, reflecting
// state at the moment of the call. Later appends do not show up in a
// previously taken snapshot.
func (s *Store) Snapshot() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
