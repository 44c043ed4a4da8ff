package domain

import "time"

// Category values are a fixed label set; CategoryAll is the wildcard used by
// catalog filters, it is never stored on a product.
const (
	CategoryAll         = "all"
	CategorySmartphones = "smartphones"
	CategoryAccessories = "accessoires"
	CategoryTablets     = "tablettes"
)

// Categories lists the storable product categories in display order.
func Categories() []string {
	return []string{CategorySmartphones, CategoryAccessories, CategoryTablets}
}

// Product is a wholesale catalog entry. Prices are integer euro cents;
// WholesalePriceCents is always less than or equal to PriceCents.
type Product struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	PriceCents          int64     `json:"priceCents"`
	WholesalePriceCents int64     `json:"wholesalePriceCents"`
	Category            string    `json:"category"`
	Stock               int       `json:"stock"`
	MinQuantity         int       `json:"minQuantity"`
	CreatedAt           time.Time `json:"createdAt"`
}

// InStock reports whether the product can still be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}
