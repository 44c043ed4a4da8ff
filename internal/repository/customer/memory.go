package customer

import (
	"context"
	"strings"
	"sync"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

type memoryRepo struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Customer
	byID    map[string]domain.Customer
}

// NewMemory returns an in-memory Repository pre-loaded with the given
// accounts. Emails are matched case-insensitively.
func NewMemory(seed ...domain.Customer) Repository {
	r := &memoryRepo{
		byEmail: make(map[string]domain.Customer),
		byID:    make(map[string]domain.Customer),
	}
	for _, c := range seed {
		r.byEmail[normalize(c.Email)] = c
		r.byID[c.ID] = c
	}
	return r
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byEmail[normalize(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(c.Email)
	if _, exists := r.byEmail[key]; exists {
		return nil, domain.ErrAlreadyExists
	}
	r.byEmail[key] = c
	r.byID[c.ID] = c
	return &c, nil
}
