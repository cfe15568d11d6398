package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/canteen-service/internal/order"
)

type OrderItemRequest struct {
	ItemID string   `json:"item_id" validate:"required"`
	Title  string   `json:"title" validate:"required"`
	Qty    int      `json:"qty" validate:"min=1"`
	Price  *float64 `json:"price" validate:"required,gte=0"`
}

type CreateOrderRequest struct {
	UserID        string             `json:"user_id" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,dive"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  order.Service
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/orders", h.handleCreateOrder)
	router.Get("/api/orders", h.handleListOrders)
	router.Get("/api/orders/user/{id}", h.handleGetOrdersByUser)
	router.Get("/api/orders/{id}", h.handleGetOrderByID)
	router.Put("/api/orders/{id}/status", h.handleUpdateStatus)
}

// handleCreateOrder is the entry point of the order builder.
func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateOrderRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode order request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !validateRequest(w, h.validate, requestPayload) {
		return
	}

	items := make([]order.OrderItem, 0, len(requestPayload.Items))
	for _, it := range requestPayload.Items {
		items = append(items, order.OrderItem{
			ItemID: it.ItemID,
			Title:  it.Title,
			Qty:    it.Qty,
			Price:  *it.Price,
		})
	}

	created, err := h.service.CreateOrder(r.Context(), order.CreateOrderInput{
		UserID:        requestPayload.UserID,
		Items:         items,
		PaymentMethod: requestPayload.PaymentMethod,
	})
	if err != nil {
		respondWithServiceError(w, err, "Failed to create order")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondWithServiceError(w, err, "Failed to list orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleGetOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "User id cannot be empty")
		return
	}

	orders, err := h.service.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get user orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleGetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithServiceError(w, err, "Invalid id parameter")
		return
	}

	found, err := h.service.GetOrderByID(r.Context(), orderID)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get order")
		return
	}

	respondWithJSON(w, http.StatusOK, found)
}

func (h *OrderHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithServiceError(w, err, "Invalid id parameter")
		return
	}

	var requestPayload UpdateStatusRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode status request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := h.service.UpdateOrderStatus(r.Context(), orderID, requestPayload.Status)
	if err != nil {
		respondWithServiceError(w, err, "Failed to update order status")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}
