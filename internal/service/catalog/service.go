package catalog

import (
	"context"
	"math"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	productrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/product"
)

// Service exposes the product catalog with wholesale pricing helpers.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// DiscountPercent is the rounded wholesale discount shown on catalog badges.
// A free product has no meaningful discount, so a zero public price yields 0.
func DiscountPercent(p domain.Product) int {
	if p.PriceCents <= 0 {
		return 0
	}
	ratio := float64(p.PriceCents-p.WholesalePriceCents) / float64(p.PriceCents)
	return int(math.Round(ratio * 100))
}

// CategoryOption pairs a filter value with its translation key.
type CategoryOption struct {
	Value    string `json:"value"`
	LabelKey string `json:"labelKey"`
}

var categoryLabelKeys = map[string]string{
	domain.CategoryAll:         "catalog.allCategories",
	domain.CategorySmartphones: "catalog.smartphones",
	domain.CategoryAccessories: "catalog.accessories",
	domain.CategoryTablets:     "catalog.tablets",
}

// CategoryOptions returns the selectable categories in display order,
// starting with the wildcard.
func CategoryOptions() []CategoryOption {
	values := append([]string{domain.CategoryAll}, domain.Categories()...)
	out := make([]CategoryOption, 0, len(values))
	for _, v := range values {
		out = append(out, CategoryOption{Value: v, LabelKey: categoryLabelKeys[v]})
	}
	return out
}
