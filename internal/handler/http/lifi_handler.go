package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/canteen-service/internal/order"
)

type LiFiSendRequest struct {
	OrderID string         `json:"order_id" validate:"required"`
	Payload map[string]any `json:"payload" validate:"required"`
}

// LiFiHandler exposes the simulated optical receiver.
type LiFiHandler struct {
	service  order.Service
	validate *validator.Validate
}

func NewLiFiHandler(service order.Service) *LiFiHandler {
	return &LiFiHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *LiFiHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/lifi/send", h.handleSend)
}

func (h *LiFiHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	var requestPayload LiFiSendRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode li-fi request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !validateRequest(w, h.validate, requestPayload) {
		return
	}

	orderID, err := uuid.FromString(requestPayload.OrderID)
	if err != nil {
		log.Warn().Err(err).Str("order_id", requestPayload.OrderID).Msg("Failed to parse order_id")
		respondWithError(w, http.StatusBadRequest, "Invalid order_id")
		return
	}

	ack, err := h.service.AcknowledgeOptical(r.Context(), orderID, requestPayload.Payload)
	if err != nil {
		respondWithServiceError(w, err, "Failed to acknowledge order")
		return
	}

	respondWithJSON(w, http.StatusOK, ack)
}
