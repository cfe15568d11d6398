package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vasiliy-maslov/canteen-service/internal/analytics"
)

type AnalyticsHandler struct {
	service analytics.Service
}

func NewAnalyticsHandler(service analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/analytics/daily", h.handleDaily)
}

func (h *AnalyticsHandler) handleDaily(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Daily(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "Failed to compute analytics")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
