package store

import (
	"sync"

	"bookery_back_end/internal/models"
)

// OrderStore maps generated order id to order snapshot.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*models.Order)}
}

func (s *OrderStore) Put(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

func (s *OrderStore) Get(id string) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
