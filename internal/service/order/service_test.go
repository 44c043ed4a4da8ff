package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	orderrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/order"
	"github.com/muerroui/gsm-ma-achat-simple/internal/seed"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/cart"
)

func seededService() *Service {
	return New(orderrepo.NewMemory(seed.Orders()...))
}

func TestSearchByTrackingCode(t *testing.T) {
	svc := seededService()

	got, err := svc.Search(context.Background(), "FR123456789")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CMD-2024-001", got[0].ID)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := seededService()

	got, err := svc.Search(context.Background(), "cmd-2024-003")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CMD-2024-003", got[0].ID)
}

func TestSearchNoMatch(t *testing.T) {
	svc := seededService()

	got, err := svc.Search(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	svc := seededService()

	got, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestMissingTrackingCodeNeverMatches(t *testing.T) {
	// CMD-2024-003 and -004 have no tracking code; a tracking-looking term
	// must not surface them.
	svc := seededService()

	got, err := svc.Search(context.Background(), "FR")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CMD-2024-001", got[0].ID)
	assert.Equal(t, "CMD-2024-002", got[1].ID)
}

func TestRecentIsDateDescendingAndCapped(t *testing.T) {
	repo := orderrepo.NewMemory(seed.Orders()...)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), domain.Order{
			ID:       string(rune('A'+i)) + "-extra",
			PlacedAt: time.Date(2024, 2, 1+i, 0, 0, 0, 0, time.UTC),
			Status:   domain.StatusPending,
		})
		require.NoError(t, err)
	}
	svc := New(repo)

	got, err := svc.Recent(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].PlacedAt.After(got[i-1].PlacedAt), "orders must be newest first")
	}
	assert.Equal(t, "C-extra", got[0].ID)
}

func TestSubmitCreatesPendingOrder(t *testing.T) {
	svc := seededService()
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	products := seed.Products()
	lines := []cart.Line{
		{Product: products[0], Quantity: 5},  // 5 × 1150.00
		{Product: products[3], Quantity: 10}, // 10 × 22.00
	}

	created, err := svc.Submit(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, "CMD-2024-005", created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, int64(5*115000+10*2200), created.TotalCents)
	assert.Equal(t, 15, created.Items)
	assert.Empty(t, created.TrackingCode)

	stored, err := svc.Search(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitEmptyCart(t *testing.T) {
	svc := seededService()

	_, err := svc.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestSubmitStepsPastIDCollision(t *testing.T) {
	repo := orderrepo.NewMemory(domain.Order{ID: "CMD-2024-002", PlacedAt: time.Now()})
	svc := New(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	created, err := svc.Submit(context.Background(), []cart.Line{{Product: seed.Products()[2], Quantity: 10}})
	require.NoError(t, err)
	assert.Equal(t, "CMD-2024-003", created.ID)
}
