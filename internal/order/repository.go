package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

var ErrOrderNotFound = errors.New("order not found")

type Repository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, status string) ([]Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status Status, at time.Time) (*Order, error)
}

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &postgresRepository{db: db}
}

const orderColumns = `id, user_id, items, total, payment_method, status, eta_minutes, COALESCE(qr_code, ''), created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var (
		o        Order
		rawItems []byte
		status   string
	)
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&rawItems,
		&o.Total,
		&o.PaymentMethod,
		&status,
		&o.ETAMinutes,
		&o.QRCode,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Items = make([]OrderItem, 0)
	if len(rawItems) > 0 {
		if err := json.Unmarshal(rawItems, &o.Items); err != nil {
			return nil, fmt.Errorf("repository: failed to decode items of order %s: %w", o.ID, err)
		}
	}
	o.Status = Status(status)
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()

	return &o, nil
}

func (r *postgresRepository) CreateOrder(ctx context.Context, order *Order) error {
	items := order.Items
	if items == nil {
		items = []OrderItem{}
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("repository: failed to encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, items, total, payment_method, status, eta_minutes, qr_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		rawItems,
		order.Total,
		order.PaymentMethod,
		string(order.Status),
		order.ETAMinutes,
		order.QRCode,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert order: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order by id %s: %w", id, err)
	}

	return o, nil
}

// ListOrders returns all orders, or only those whose status equals status when it is non-empty.
func (r *postgresRepository) ListOrders(ctx context.Context, status string) ([]Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, status)
}

func (r *postgresRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, userID)
}

// UpdateOrderStatus sets status and updated_at in a single statement and returns the row.
// Concurrent writers are not detected; the last one wins.
func (r *postgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status Status, at time.Time) (*Order, error) {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + orderColumns

	o, err := scanOrder(r.db.QueryRow(ctx, query, string(status), at, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn().Stringer("order_id", id).Stringer("new_status", status).Msg("repository: order not found for status update")
			return nil, ErrOrderNotFound
		}
		log.Error().Err(err).Stringer("order_id", id).Stringer("new_status", status).Msg("repository: failed to update order status")
		return nil, fmt.Errorf("repository: failed to update order status %s: %w", id, err)
	}

	return o, nil
}

func (r *postgresRepository) queryOrders(ctx context.Context, query string, arg any) ([]Order, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed iterating orders: %w", err)
	}

	return orders, nil
}
