package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

var ErrInvalidPrice = errors.New("price cannot be negative")

type Service interface {
	ListItems(ctx context.Context) ([]Item, error)
	CreateItem(ctx context.Context, input ItemInput) (*Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input ItemInput) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListItems(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list menu items")
		return nil, fmt.Errorf("service: failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *service) CreateItem(ctx context.Context, input ItemInput) (*Item, error) {
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate menu item id: %w", err)
	}

	now := s.now().UTC()
	item := &Item{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Available:   input.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		log.Error().Err(err).Msg("service: failed to create menu item")
		return nil, fmt.Errorf("service: failed to create menu item: %w", err)
	}

	log.Info().Stringer("item_id", item.ID).Str("title", item.Title).Msg("service: menu item created")
	return item, nil
}

// UpdateItem replaces all editable fields and returns the stored row.
func (s *service) UpdateItem(ctx context.Context, id uuid.UUID, input ItemInput) (*Item, error) {
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}

	item := &Item{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Available:   input.Available,
		UpdatedAt:   s.now().UTC(),
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			log.Warn().Stringer("item_id", id).Msg("service: menu item not found for update")
			return nil, ErrItemNotFound
		}
		log.Error().Err(err).Stringer("item_id", id).Msg("service: failed to update menu item")
		return nil, fmt.Errorf("service: failed to update menu item: %w", err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("service: failed to reload menu item: %w", err)
	}

	return updated, nil
}

func (s *service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			log.Warn().Stringer("item_id", id).Msg("service: menu item not found for delete")
			return ErrItemNotFound
		}
		log.Error().Err(err).Stringer("item_id", id).Msg("service: failed to delete menu item")
		return fmt.Errorf("service: failed to delete menu item: %w", err)
	}

	log.Info().Stringer("item_id", id).Msg("service: menu item deleted")
	return nil
}
