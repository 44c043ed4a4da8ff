package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muerroui/gsm-ma-achat-simple/internal/repository/product"
)

func TestRunImportsRows(t *testing.T) {
	csvData := strings.Join([]string{
		"id,name,description,price,wholesale_price,category,stock,min_quantity",
		"1,iPhone 15 Pro Max,Le dernier iPhone,1299.00,1150.00,smartphones,50,5",
		",Chargeur USB-C 65W,Charge rapide,35,22,accessoires,150,",
	}, "\n")

	repo := product.NewMemory()
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ctx := context.Background()
	phone, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro Max", phone.Name)
	assert.Equal(t, int64(129900), phone.PriceCents)
	assert.Equal(t, int64(115000), phone.WholesalePriceCents)
	assert.Equal(t, 5, phone.MinQuantity)

	products, err := repo.List(ctx, product.Filter{Search: "chargeur"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(3500), products[0].PriceCents)
	assert.Equal(t, 1, products[0].MinQuantity)
}

func TestRunShuffledHeaders(t *testing.T) {
	csvData := strings.Join([]string{
		"category,name,stock,wholesale_price,price",
		"tablettes,iPad Air,12,520.50,649.99",
	}, "\n")

	repo := product.NewMemory()
	count, err := NewCSVImporter(strings.NewReader(csvData), repo).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	products, err := repo.List(context.Background(), product.Filter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(64999), products[0].PriceCents)
	assert.Equal(t, int64(52050), products[0].WholesalePriceCents)
}

func TestRunRejectsBadRows(t *testing.T) {
	header := "name,price,wholesale_price,category,stock,min_quantity"
	cases := []struct {
		name string
		row  string
	}{
		{"missing name", ",10,5,smartphones,1,1"},
		{"wholesale above public", "Coque,10,15,accessoires,1,1"},
		{"unknown category", "Coque,10,5,gadgets,1,1"},
		{"negative stock", "Coque,10,5,accessoires,-1,1"},
		{"zero min quantity", "Coque,10,5,accessoires,1,0"},
		{"garbled price", "Coque,dix,5,accessoires,1,1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := product.NewMemory()
			imp := NewCSVImporter(strings.NewReader(header+"\n"+tc.row), repo)

			count, err := imp.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 2")
			assert.Zero(t, count)
		})
	}
}
