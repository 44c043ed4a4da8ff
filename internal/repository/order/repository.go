package order

import (
	"context"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

type Repository interface {
	// List returns every order in insertion order.
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// Create stores a new order; the id must not already exist.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	// Count returns the number of stored orders, used for id sequencing.
	Count(ctx context.Context) (int, error)
}
