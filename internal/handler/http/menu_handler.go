package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/canteen-service/internal/menu"
)

type MenuItemRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    *string  `json:"image_url"`
	Available   *bool    `json:"available"`
}

func (req MenuItemRequest) toInput() menu.ItemInput {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return menu.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Available:   available,
	}
}

type MenuHandler struct {
	service  menu.Service
	validate *validator.Validate
}

func NewMenuHandler(service menu.Service) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *MenuHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/menu", h.handleListItems)
	router.Post("/api/menu", h.handleCreateItem)
	router.Put("/api/menu/{id}", h.handleUpdateItem)
	router.Delete("/api/menu/{id}", h.handleDeleteItem)
}

func (h *MenuHandler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "Failed to list menu items")
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var requestPayload MenuItemRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode menu item")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !validateRequest(w, h.validate, requestPayload) {
		return
	}

	created, err := h.service.CreateItem(r.Context(), requestPayload.toInput())
	if err != nil {
		respondWithServiceError(w, err, "Failed to create menu item")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *MenuHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithServiceError(w, err, "Invalid id parameter")
		return
	}

	var requestPayload MenuItemRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode menu item")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !validateRequest(w, h.validate, requestPayload) {
		return
	}

	updated, err := h.service.UpdateItem(r.Context(), itemID, requestPayload.toInput())
	if err != nil {
		respondWithServiceError(w, err, "Failed to update menu item")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *MenuHandler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithServiceError(w, err, "Invalid id parameter")
		return
	}

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		respondWithServiceError(w, err, "Failed to delete menu item")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
