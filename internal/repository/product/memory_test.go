package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

func TestMemoryUpsertAssignsAndReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	created, err := repo.Upsert(ctx, domain.Product{Name: "Coque", Category: domain.CategoryAccessories, PriceCents: 2500, WholesalePriceCents: 1500})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	created.Stock = 99
	updated, err := repo.Upsert(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, got.Stock)

	all, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(
		domain.Product{ID: 7, Name: "Chargeur", Category: domain.CategoryAccessories},
		domain.Product{ID: 2, Name: "Coque", Category: domain.CategoryAccessories},
	)

	// Explicit ids bump the sequence past them.
	created, err := repo.Upsert(ctx, domain.Product{Name: "Cable", Category: domain.CategoryAccessories})
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	all, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{7, 2, 8}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	repo := NewMemory()
	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "iphone", escapeLike("iphone"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `usb\_c`, escapeLike("usb_c"))
	assert.Equal(t, `\\\%\_`, escapeLike(`\%_`))
	assert.Equal(t, "", escapeLike(""))
}

func TestFilterMatches(t *testing.T) {
	p := domain.Product{Name: "iPhone 15 Pro Max", Category: domain.CategorySmartphones}

	assert.True(t, Filter{}.Matches(p))
	assert.True(t, Filter{Search: "IPHONE"}.Matches(p))
	assert.True(t, Filter{Category: domain.CategoryAll}.Matches(p))
	assert.True(t, Filter{Search: "pro max", Category: domain.CategorySmartphones}.Matches(p))
	assert.False(t, Filter{Search: "samsung"}.Matches(p))
	assert.False(t, Filter{Category: domain.CategoryAccessories}.Matches(p))
}
