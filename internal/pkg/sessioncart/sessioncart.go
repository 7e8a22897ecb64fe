// Package sessioncart keeps each admin's pending cart between requests.
// It stands in for an external session store: carts live only for the
// lifetime of the process and are opaque to other admins.
package sessioncart

import (
	"sync"

	"github.com/vietanh2810/storefront-api/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	carts map[uint]domain.Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[uint]domain.Cart),
	}
}

// Get returns the admin's cart, or an empty cart when none is held.
func (s *Store) Get(adminID uint) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.carts[adminID]
}

func (s *Store) Put(adminID uint, cart domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[adminID] = cart
}

// Clear drops the admin's cart, typically after a successful checkout.
func (s *Store) Clear(adminID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, adminID)
}
