package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/seed"
)

func phone() domain.Product {
	return seed.Products()[0] // iPhone 15 Pro Max, 1150.00 wholesale / 1299.00 public
}

func charger() domain.Product {
	return seed.Products()[3] // Chargeur USB-C 65W, 22.00 wholesale / 35.00 public
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	e := NewEngine(Policy{})
	p := phone()

	for i := 0; i < 3; i++ {
		require.NoError(t, e.AddItem(p))
	}
	require.NoError(t, e.AddItem(charger()))

	lines := e.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, p.ID, lines[0].Product.ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 2, e.LineCount())
	assert.Equal(t, 4, e.TotalUnits())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	e := NewEngine(Policy{})
	require.NoError(t, e.AddItem(phone()))
	require.NoError(t, e.AddItem(charger()))

	require.NoError(t, e.SetQuantity(phone().ID, 0))

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, charger().ID, lines[0].Product.ID)

	// Negative quantities remove as well.
	require.NoError(t, e.SetQuantity(charger().ID, -2))
	assert.True(t, e.IsEmpty())
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	e := NewEngine(Policy{})
	assert.ErrorIs(t, e.SetQuantity(99, 2), domain.ErrNotFound)
}

func TestSubtotalAndDiscount(t *testing.T) {
	e := NewEngine(Policy{})
	require.NoError(t, e.AddItem(phone()))
	require.NoError(t, e.AddItem(phone()))
	require.NoError(t, e.AddItem(charger()))
	require.NoError(t, e.SetQuantity(charger().ID, 5))

	// 2 × 1150.00 + 5 × 22.00
	assert.Equal(t, int64(2*115000+5*2200), e.SubtotalCents())
	// 2 × (1299.00 − 1150.00) + 5 × (35.00 − 22.00)
	assert.Equal(t, int64(2*14900+5*1300), e.TotalDiscountCents())
	assert.GreaterOrEqual(t, e.TotalDiscountCents(), int64(0))
}

func TestStockPolicy(t *testing.T) {
	e := NewEngine(Policy{EnforceStock: true})
	soldOut := domain.Product{ID: 7, Name: "Écouteurs", Stock: 0, MinQuantity: 1}
	assert.ErrorIs(t, e.AddItem(soldOut), ErrOutOfStock)

	scarce := domain.Product{ID: 8, Name: "Câble", WholesalePriceCents: 500, PriceCents: 900, Stock: 2, MinQuantity: 1}
	require.NoError(t, e.AddItem(scarce))
	require.NoError(t, e.AddItem(scarce))
	assert.ErrorIs(t, e.AddItem(scarce), ErrOutOfStock)
	assert.ErrorIs(t, e.SetQuantity(scarce.ID, 3), ErrOutOfStock)
	require.NoError(t, e.SetQuantity(scarce.ID, 1))
}

func TestBelowMinimumIsAdvisoryByDefault(t *testing.T) {
	e := NewEngine(Policy{})
	require.NoError(t, e.AddItem(phone())) // quantity 1 < minQuantity 5

	lines, err := e.BeginCheckout()
	require.NoError(t, err)
	assert.True(t, lines[0].BelowMinimum())
	e.EndCheckout()
}

func TestCheckoutGuards(t *testing.T) {
	e := NewEngine(Policy{EnforceMinQuantity: true})

	_, err := e.BeginCheckout()
	assert.ErrorIs(t, err, ErrEmptyCart)

	require.NoError(t, e.AddItem(phone()))
	_, err = e.BeginCheckout()
	assert.ErrorIs(t, err, ErrBelowMinimum)

	require.NoError(t, e.SetQuantity(phone().ID, 5))
	lines, err := e.BeginCheckout()
	require.NoError(t, err)
	require.Len(t, lines, 1)

	_, err = e.BeginCheckout()
	assert.ErrorIs(t, err, ErrCheckoutPending)

	e.EndCheckout()
	_, err = e.BeginCheckout()
	require.NoError(t, err)
	e.EndCheckout()
}
