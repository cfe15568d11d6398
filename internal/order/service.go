package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

const (
	AckStatus = "ACK"
	AckEffect = "Order moved to Preparing"
)

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, status string) ([]Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatus string) (*Order, error)
	AcknowledgeOptical(ctx context.Context, id uuid.UUID, payload map[string]any) (*Acknowledgement, error)
}

type service struct {
	orderRepo Repository
	now       func() time.Time
}

func NewService(orderRepo Repository) Service {
	return NewServiceWithClock(orderRepo, time.Now)
}

// NewServiceWithClock is NewService with an injectable clock.
func NewServiceWithClock(orderRepo Repository, now func() time.Time) Service {
	return &service{orderRepo: orderRepo, now: now}
}

// timestamps are kept at the precision postgres stores
func (s *service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate order id: %w", err)
	}

	order, err := BuildOrder(id, input, s.timestamp())
	if err != nil {
		log.Warn().Err(err).Str("user_id", input.UserID).Msg("service: rejected order")
		return nil, err
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		log.Error().Err(err).Msg("service: failed to create order in repository")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().
		Stringer("order_id", order.ID).
		Str("user_id", order.UserID).
		Float64("total", order.Total).
		Int("eta_minutes", order.ETAMinutes).
		Msg("service: order created successfully")

	return order, nil
}

func (s *service) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Warn().Stringer("order_id", id).Msg("service: order not found by id")
			return nil, ErrOrderNotFound
		}
		log.Error().Err(err).Stringer("order_id", id).Msg("service: failed to fetch order by id")
		return nil, fmt.Errorf("service: failed to fetch order by id: %w", err)
	}

	return order, nil
}

func (s *service) ListOrders(ctx context.Context, status string) ([]Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, status)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("service: failed to list orders")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *service) GetOrdersByUserID(ctx context.Context, userID string) ([]Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("service: failed to fetch user orders")
		return nil, fmt.Errorf("service: failed to fetch user orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus sets any recognized status regardless of the current one.
func (s *service) UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatus string) (*Order, error) {
	status, err := ParseStatus(newStatus)
	if err != nil {
		log.Warn().Stringer("order_id", id).Str("new_status", newStatus).Msg("service: invalid status value")
		return nil, err
	}

	return s.setStatus(ctx, id, status)
}

// AcknowledgeOptical simulates receipt of order data over an optical link. The payload
// is accepted as is; the only effect is forcing the order into Preparing.
func (s *service) AcknowledgeOptical(ctx context.Context, id uuid.UUID, payload map[string]any) (*Acknowledgement, error) {
	log.Debug().Stringer("order_id", id).Int("payload_fields", len(payload)).Msg("service: optical payload received")

	if _, err := s.setStatus(ctx, id, StatusPreparing); err != nil {
		return nil, err
	}

	return &Acknowledgement{
		Status:   AckStatus,
		Received: true,
		OrderID:  id.String(),
		Effect:   AckEffect,
	}, nil
}

func (s *service) setStatus(ctx context.Context, id uuid.UUID, status Status) (*Order, error) {
	updated, err := s.orderRepo.UpdateOrderStatus(ctx, id, status, s.timestamp())
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Warn().Stringer("order_id", id).Stringer("new_status", status).Msg("service: order not found, cannot update status")
			return nil, ErrOrderNotFound
		}
		log.Error().Err(err).Stringer("order_id", id).Stringer("new_status", status).Msg("service: failed to update order status")
		return nil, fmt.Errorf("service: failed to update order status: %w", err)
	}

	log.Info().Stringer("order_id", id).Stringer("status", status).Msg("service: order status updated successfully")
	return updated, nil
}
