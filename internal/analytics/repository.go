package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	SalesSince(ctx context.Context, since time.Time) (DailyTotals, error)
	TopItems(ctx context.Context, limit int) ([]ItemCount, error)
}

// DB is the subset of *pgxpool.Pool used for aggregate queries.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) SalesSince(ctx context.Context, since time.Time) (DailyTotals, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)::double precision, COUNT(*)
		FROM orders
		WHERE created_at >= $1
	`

	var totals DailyTotals
	if err := r.db.QueryRow(ctx, query, since).Scan(&totals.TotalSales, &totals.Orders); err != nil {
		return DailyTotals{}, fmt.Errorf("repository: failed to aggregate sales since %s: %w", since.Format(time.RFC3339), err)
	}

	return totals, nil
}

// TopItems groups every order line ever placed by title and ranks by summed quantity.
// Ties are ordered by title.
func (r *postgresRepository) TopItems(ctx context.Context, limit int) ([]ItemCount, error) {
	query := `
		SELECT item->>'title' AS title, SUM((item->>'qty')::bigint) AS count
		FROM orders, jsonb_array_elements(orders.items) AS item
		GROUP BY item->>'title'
		ORDER BY count DESC, title ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query top items: %w", err)
	}
	defer rows.Close()

	items := make([]ItemCount, 0, limit)
	for rows.Next() {
		var ic ItemCount
		if err := rows.Scan(&ic.ID, &ic.Count); err != nil {
			return nil, fmt.Errorf("repository: failed to scan top item: %w", err)
		}
		items = append(items, ic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed iterating top items: %w", err)
	}

	return items, nil
}
