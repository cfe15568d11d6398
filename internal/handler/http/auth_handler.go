package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/canteen-service/internal/user"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	service  user.Service
	validate *validator.Validate
}

func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *AuthHandler) RegisterRoutes(router chi.Router) {
	router.Post("/api/auth/signup", h.handleSignup)
	router.Post("/api/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var requestPayload SignupRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode signup request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !validateRequest(w, h.validate, requestPayload) {
		return
	}

	created, err := h.service.Signup(r.Context(), user.SignupInput{
		Name:     requestPayload.Name,
		Email:    requestPayload.Email,
		Password: requestPayload.Password,
		IsAdmin:  requestPayload.IsAdmin,
	})
	if err != nil {
		respondWithServiceError(w, err, "Failed to create user")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var requestPayload LoginRequest
	if err := decodeJSON(r, &requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode login request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !validateRequest(w, h.validate, requestPayload) {
		return
	}

	session, err := h.service.Login(r.Context(), requestPayload.Email, requestPayload.Password)
	if err != nil {
		respondWithServiceError(w, err, "Failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}
