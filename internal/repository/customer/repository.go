package customer

import (
	"context"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// Create stores a new account; the email must be unused.
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}
