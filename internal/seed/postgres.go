package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

// Apply inserts the demo catalog and order history into postgres. It is
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range Products() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	for _, o := range Orders() {
		if err := upsertOrder(ctx, pool, o); err != nil {
			return fmt.Errorf("upsert order %s: %w", o.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, description, price_cents, wholesale_price_cents, category, stock, min_quantity, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    wholesale_price_cents = EXCLUDED.wholesale_price_cents,
    category = EXCLUDED.category,
    stock = EXCLUDED.stock,
    min_quantity = EXCLUDED.min_quantity
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Description, p.PriceCents, p.WholesalePriceCents, p.Category, p.Stock, p.MinQuantity, p.CreatedAt)
	return err
}

func upsertOrder(ctx context.Context, pool *pgxpool.Pool, o domain.Order) error {
	const q = `
INSERT INTO orders (id, placed_at, status, total_cents, items, tracking_code)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
ON CONFLICT (id) DO UPDATE
SET placed_at = EXCLUDED.placed_at,
    status = EXCLUDED.status,
    total_cents = EXCLUDED.total_cents,
    items = EXCLUDED.items,
    tracking_code = EXCLUDED.tracking_code
`
	_, err := pool.Exec(ctx, q, o.ID, o.PlacedAt, string(o.Status), o.TotalCents, o.Items, o.TrackingCode)
	return err
}
