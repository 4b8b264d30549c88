package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// maxListOrders bounds GetAll so the admin listing can never produce an
// unbounded result set.
const maxListOrders = 1000

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert persists the order as a single row; cart and shipping are stored as
// JSONB documents. Returns ErrStorageFailure when the insert confirms zero
// rows.
func (r *repository) Insert(ctx context.Context, o *Order) error {
	cartDoc, err := json.Marshal(o.Cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	shippingDoc, err := json.Marshal(o.Shipping)
	if err != nil {
		return fmt.Errorf("failed to encode shipping info: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, cart, shipping,
			payment_method, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		o.ID,
		cartDoc,
		shippingDoc,
		o.PaymentMethod,
		o.Status,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStorageFailure
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, cart, shipping, payment_method, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cart, shipping, payment_method, status, created_at, updated_at
		FROM orders
		LIMIT $1
	`, maxListOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus sets the new status and refreshes updated_at. Returns
// ErrStorageFailure when the write reports zero modified rows; existence is
// the service's concern.
func (r *repository) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
	`, status, updatedAt, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStorageFailure
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var (
		o           Order
		cartDoc     []byte
		shippingDoc []byte
	)

	err := row.Scan(
		&o.ID,
		&cartDoc,
		&shippingDoc,
		&o.PaymentMethod,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(cartDoc, &o.Cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	if err := json.Unmarshal(shippingDoc, &o.Shipping); err != nil {
		return nil, fmt.Errorf("failed to decode shipping info: %w", err)
	}

	return &o, nil
}
