package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/logger"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// NewPostgres returns a Repository backed by the orders table.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool, log: logger.L()}
}

const orderColumns = `id, placed_at, status, total_cents, items, COALESCE(tracking_code, '')`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.log.Error("order list query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(&o.ID, &o.PlacedAt, &status, &o.TotalCents, &o.Items, &o.TrackingCode); err != nil {
			return nil, err
		}
		o.Status = domain.OrderStatus(status)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	var o domain.Order
	var status string
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.PlacedAt, &status, &o.TotalCents, &o.Items, &o.TrackingCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (id, placed_at, status, total_cents, items, tracking_code)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
`
	_, err := r.pool.Exec(ctx, q, o.ID, o.PlacedAt, string(o.Status), o.TotalCents, o.Items, o.TrackingCode)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
