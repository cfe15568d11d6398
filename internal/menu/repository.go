package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrItemNotFound = errors.New("menu item not found")

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectItem = `
	SELECT id, title, description, price, image_url, available, created_at, updated_at
	FROM menu_items
`

func (r *repository) List(ctx context.Context) ([]Item, error) {
	items := make([]Item, 0)
	if err := r.db.SelectContext(ctx, &items, selectItem+" ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("repository: failed to list menu items: %w", err)
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	var item Item
	if err := r.db.GetContext(ctx, &item, selectItem+" WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("repository: failed to select menu item %s: %w", id, err)
	}
	return &item, nil
}

func (r *repository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO menu_items (id, title, description, price, image_url, available, created_at, updated_at)
		VALUES (:id, :title, :description, :price, :image_url, :available, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("repository: failed to insert menu item: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, item *Item) error {
	query := `
		UPDATE menu_items
		SET title = :title, description = :description, price = :price,
		    image_url = :image_url, available = :available, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("repository: failed to update menu item %s: %w", item.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete menu item %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
