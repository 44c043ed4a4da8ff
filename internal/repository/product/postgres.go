package product

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/logger"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// NewPostgres returns a Repository backed by the products table.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool, log: logger.L()}
}

const productColumns = `id, name, COALESCE(description, ''), price_cents, wholesale_price_cents, category, stock, min_quantity, created_at`

// escapeLike neutralizes LIKE metacharacters so a search term always
// matches literally, like the memory backend's substring match.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' ESCAPE '\')
  AND ($2 = '' OR $2 = 'all' OR category = $2)
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q, escapeLike(f.Search), f.Category)
	if err != nil {
		r.log.Error("product list query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.WholesalePriceCents, &p.Category, &p.Stock, &p.MinQuantity, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.WholesalePriceCents, &p.Category, &p.Stock, &p.MinQuantity, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == 0 {
		const q = `
INSERT INTO products (name, description, price_cents, wholesale_price_cents, category, stock, min_quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + productColumns + `
`
		return r.scanOne(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.WholesalePriceCents, p.Category, p.Stock, p.MinQuantity))
	}

	const q = `
INSERT INTO products (id, name, description, price_cents, wholesale_price_cents, category, stock, min_quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    wholesale_price_cents = EXCLUDED.wholesale_price_cents,
    category = EXCLUDED.category,
    stock = EXCLUDED.stock,
    min_quantity = EXCLUDED.min_quantity
RETURNING ` + productColumns + `
`
	return r.scanOne(r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Description, p.PriceCents, p.WholesalePriceCents, p.Category, p.Stock, p.MinQuantity))
}

func (r *postgresRepo) scanOne(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.WholesalePriceCents, &p.Category, &p.Stock, &p.MinQuantity, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
