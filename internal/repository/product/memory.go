package product

import (
	"context"
	"sync"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

// memoryRepo keeps the catalog in a slice so listings preserve insertion
// order, the way the seed data is meant to be displayed.
type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int64
}

// NewMemory returns an in-memory Repository pre-loaded with the given
// products.
func NewMemory(seed ...domain.Product) Repository {
	r := &memoryRepo{nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products = append(r.products, p)
	}
	return r
}

func (r *memoryRepo) List(_ context.Context, f Filter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Product
	for _, p := range r.products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return &p, nil
		}
	}
	r.products = append(r.products, p)
	return &p, nil
}
