package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	orderrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/order"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/cart"
)

// recentLimit caps the "recent orders" tab.
const recentLimit = 5

// Service is the order ledger: searchable history plus order submission.
type Service struct {
	repo orderrepo.Repository
	now  func() time.Time
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Search returns orders whose id or tracking code contains term,
// case-insensitively. An empty term returns the full history. Orders without
// a tracking code never match a non-empty term on that field.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Order, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return all, nil
	}

	needle := strings.ToLower(term)
	var out []domain.Order
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.ID), needle) {
			out = append(out, o)
			continue
		}
		if o.TrackingCode != "" && strings.Contains(strings.ToLower(o.TrackingCode), needle) {
			out = append(out, o)
		}
	}
	return out, nil
}

// Recent returns the newest matching orders by placement date, capped at 5.
func (s *Service) Recent(ctx context.Context, term string) ([]domain.Order, error) {
	matched, err := s.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PlacedAt.After(matched[j].PlacedAt)
	})
	if len(matched) > recentLimit {
		matched = matched[:recentLimit]
	}
	return matched, nil
}

// Submit turns a checked-out cart into a pending order and stores it in the
// ledger. The returned order carries the assigned CMD id; tracking codes are
// assigned later, when the order ships.
func (s *Service) Submit(ctx context.Context, lines []cart.Line) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, cart.ErrEmptyCart
	}

	var total int64
	var units int
	for _, l := range lines {
		total += l.TotalCents()
		units += l.Quantity
	}

	seq, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	placed := s.now()
	// The sequence can race another submission; step past collisions.
	for attempt := 0; attempt < 10; attempt++ {
		seq++
		o := domain.Order{
			ID:         fmt.Sprintf("CMD-%d-%03d", placed.Year(), seq),
			PlacedAt:   placed,
			Status:     domain.StatusPending,
			TotalCents: total,
			Items:      units,
		}
		created, err := s.repo.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
	}
	return nil, errors.New("could not assign an order id")
}
