package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS customer_orders (
	id TEXT PRIMARY KEY,
	order_number TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	customer_email TEXT NOT NULL,
	total NUMERIC(12,2) NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	refund_status TEXT NOT NULL DEFAULT 'None',
	refund_reason TEXT NOT NULL DEFAULT '',
	order_date TEXT NOT NULL,
	items INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const orderColumns = `id, order_number, customer_name, customer_email, total, status, refund_status, refund_reason, order_date, items`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the orders table when it is missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// Seed inserts the given orders unless they already exist. Creation time is
// taken from each order's date so seeded rows sort behind live ones.
func (r *PostgresRepository) Seed(ctx context.Context, seed []Order) error {
	for _, o := range seed {
		created, err := time.Parse(DateLayout, o.Date)
		if err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, `INSERT INTO customer_orders (`+orderColumns+`, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			ON CONFLICT (id) DO NOTHING`,
			o.ID, o.OrderNumber, o.CustomerName, o.CustomerEmail, o.Total, o.Status, o.RefundStatus, o.RefundReason, o.Date, o.Items, created); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, ord Order) (Order, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO customer_orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		ord.ID, ord.OrderNumber, ord.CustomerName, ord.CustomerEmail, ord.Total, ord.Status, ord.RefundStatus, ord.RefundReason, ord.Date, ord.Items)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM customer_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string, statuses ...Status) ([]Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(statuses) == 0 {
		rows, err = r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM customer_orders
			WHERE customer_email = $1
			ORDER BY created_at DESC`, email)
	} else {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, string(s))
		}
		rows, err = r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM customer_orders
			WHERE customer_email = $1 AND status = ANY($2)
			ORDER BY created_at DESC`, email, pq.Array(names))
	}
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]Order, error) {
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM customer_orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresRepository) Update(ctx context.Context, ord Order) (Order, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE customer_orders
		SET status = $2, refund_status = $3, refund_reason = $4
		WHERE id = $1`, ord.ID, ord.Status, ord.RefundStatus, ord.RefundReason)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *PostgresRepository) TransitionRefund(ctx context.Context, id string, from, to RefundStatus, reason string) (Order, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE customer_orders
		SET refund_status = $3, refund_reason = COALESCE(NULLIF($4, ''), refund_reason)
		WHERE id = $1 AND refund_status = $2
		RETURNING `+orderColumns, id, from, to, reason)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := r.GetByID(ctx, id); err != nil {
			return Order{}, err
		}
		return Order{}, ErrRefundStateChanged
	}
	return o, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (Order, error) {
	var o Order
	err := s.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.Total, &o.Status, &o.RefundStatus, &o.RefundReason, &o.Date, &o.Items)
	return o, err
}
