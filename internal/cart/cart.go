package cart

import (
	"errors"
	"sync"
)

// ErrInvalidQuantity is returned when an add requests zero or a negative
// quantity. The cart rejects these outright instead of accumulating them,
// so a line can never be driven below zero.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// Store holds one in-memory cart per session. Carts live only for the
// lifetime of the process; there is no persistence across restarts.
type Store struct {
	mu    sync.RWMutex
	carts map[string]map[int64]int // sessionID -> productID -> quantity
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		carts: make(map[string]map[int64]int),
	}
}

// Add accumulates the quantity for a product in the session's cart,
// creating the cart and the entry as needed.
func (s *Store) Add(sessionID string, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[sessionID]
	if !ok {
		items = make(map[int64]int)
		s.carts[sessionID] = items
	}
	items[productID] += quantity
	return nil
}

// Remove deletes a product's entry from the session's cart entirely.
func (s *Store) Remove(sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items, ok := s.carts[sessionID]; ok {
		delete(items, productID)
	}
}

// Get returns a copy of the session's cart. The copy is safe to hand to
// JSON encoders while other requests mutate the cart.
func (s *Store) Get(sessionID string) map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]int)
	for id, qty := range s.carts[sessionID] {
		out[id] = qty
	}
	return out
}

// Clear empties the session's cart.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
