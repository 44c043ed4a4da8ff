package order

import (
	"context"
	"sync"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemory returns an in-memory Repository pre-loaded with the given
// orders.
func NewMemory(seed ...domain.Order) Repository {
	return &memoryRepo{orders: append([]domain.Order(nil), seed...)}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Order(nil), r.orders...), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return nil, domain.ErrAlreadyExists
		}
	}
	r.orders = append(r.orders, o)
	return &o, nil
}

func (r *memoryRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}
