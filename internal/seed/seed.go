// Package seed holds the demo storefront data and loads it into either
// store backend. The data mirrors what the marketplace launched with, so the
// memory backend behaves like the production catalog on day one.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

func day(d string) time.Time {
	t, _ := time.Parse("2006-01-02", d)
	return t
}

// Products returns the demo catalog in display order.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:                  1,
			Name:                "iPhone 15 Pro Max",
			Description:         "Smartphone Apple dernière génération",
			PriceCents:          129900,
			WholesalePriceCents: 115000,
			Category:            domain.CategorySmartphones,
			Stock:               50,
			MinQuantity:         5,
			CreatedAt:           day("2024-01-02"),
		},
		{
			ID:                  2,
			Name:                "Samsung Galaxy S24 Ultra",
			Description:         "Smartphone Samsung haut de gamme",
			PriceCents:          119900,
			WholesalePriceCents: 105000,
			Category:            domain.CategorySmartphones,
			Stock:               30,
			MinQuantity:         3,
			CreatedAt:           day("2024-01-03"),
		},
		{
			ID:                  3,
			Name:                "Coque iPhone 15 Pro",
			Description:         "Protection transparente renforcée",
			PriceCents:          2500,
			WholesalePriceCents: 1500,
			Category:            domain.CategoryAccessories,
			Stock:               200,
			MinQuantity:         10,
			CreatedAt:           day("2024-01-04"),
		},
		{
			ID:                  4,
			Name:                "Chargeur USB-C 65W",
			Description:         "Chargeur rapide universel",
			PriceCents:          3500,
			WholesalePriceCents: 2200,
			Category:            domain.CategoryAccessories,
			Stock:               150,
			MinQuantity:         5,
			CreatedAt:           day("2024-01-05"),
		},
	}
}

// Orders returns the demo order history in the order it was recorded.
func Orders() []domain.Order {
	return []domain.Order{
		{
			ID:           "CMD-2024-001",
			PlacedAt:     day("2024-01-15"),
			Status:       domain.StatusShipped,
			TotalCents:   234050,
			Items:        15,
			TrackingCode: "FR123456789",
		},
		{
			ID:           "CMD-2024-002",
			PlacedAt:     day("2024-01-12"),
			Status:       domain.StatusDelivered,
			TotalCents:   89000,
			Items:        8,
			TrackingCode: "FR987654321",
		},
		{
			ID:         "CMD-2024-003",
			PlacedAt:   day("2024-01-10"),
			Status:     domain.StatusPrepared,
			TotalCents: 156075,
			Items:      12,
		},
		{
			ID:         "CMD-2024-004",
			PlacedAt:   day("2024-01-08"),
			Status:     domain.StatusConfirmed,
			TotalCents: 44520,
			Items:      6,
		},
	}
}

// DemoCustomerEmail and DemoCustomerPassword are the credentials of the
// pre-approved demo wholesale account.
const (
	DemoCustomerEmail    = "contact@gsm.ma"
	DemoCustomerPassword = "Grossiste2024"
)

// Customers returns the demo wholesale accounts. The password hash is
// computed here rather than stored, so the plaintext stays next to the data
// it unlocks.
func Customers() []domain.Customer {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoCustomerPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return []domain.Customer{
		{
			ID:           "cust-demo-1",
			Email:        DemoCustomerEmail,
			PasswordHash: string(hash),
			Company:      "GSM.ma Demo Grossiste",
			Approved:     true,
			CreatedAt:    day("2024-01-01"),
		},
	}
}
