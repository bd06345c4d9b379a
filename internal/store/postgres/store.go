// Package postgres persists orders in a Postgres table via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nsridhar76/go-cancelsvc/internal/domain"
	"github.com/nsridhar76/go-cancelsvc/internal/store"
)

type Store struct {
	pool *pgxpool.Pool
}

// New wraps an existing pool. The caller owns the pool's lifecycle.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Lookup(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
		SELECT id, customer_id, total, quantity, currency, canceled
		FROM orders
		WHERE id = $1
	`

	var o domain.Order
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.Total,
		&o.Quantity,
		&o.Currency,
		&o.Canceled,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup order %d: %w", id, err)
	}

	return &o, nil
}

func (s *Store) Save(ctx context.Context, o *domain.Order) error {
	const query = `
		UPDATE orders
		SET customer_id = $2, total = $3, quantity = $4, currency = $5, canceled = $6
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		o.ID,
		o.CustomerID,
		o.Total,
		o.Quantity,
		o.Currency,
		o.Canceled,
	)
	if err != nil {
		return fmt.Errorf("save order %d: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
