package product

import (
	"context"
	"strings"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

// Filter narrows a catalog listing. Search is a case-insensitive substring
// match against the product name; Category is an exact category, with ""
// and domain.CategoryAll matching everything.
type Filter struct {
	Search   string
	Category string
}

// Matches reports whether p passes the filter.
func (f Filter) Matches(p domain.Product) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && f.Category != domain.CategoryAll && p.Category != f.Category {
		return false
	}
	return true
}

type Repository interface {
	// List returns matching products in catalog (insertion) order.
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// Upsert inserts the product, or replaces it when a product with the
	// same id exists. A zero id lets the store assign one.
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
