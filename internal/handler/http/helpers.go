package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/canteen-service/internal/menu"
	"github.com/vasiliy-maslov/canteen-service/internal/order"
	"github.com/vasiliy-maslov/canteen-service/internal/user"
)

var errInvalidID = errors.New("invalid id parameter")

// respondWithError отправляет JSON ошибку
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON отправляет JSON ответ
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, order.ErrValidation),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, menu.ErrInvalidPrice),
		errors.Is(err, errInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns a message safe to show to API callers; unknown errors get fallback.
func clientMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, order.ErrValidation), errors.Is(err, menu.ErrInvalidPrice):
		return err.Error()
	case errors.Is(err, order.ErrInvalidStatus):
		return "Invalid status"
	case errors.Is(err, order.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, menu.ErrItemNotFound):
		return "Item not found"
	case errors.Is(err, user.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, user.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, errInvalidID):
		return "Invalid id parameter"
	default:
		return fallback
	}
}

func respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	status := mapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(fallback)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(fallback)
	}
	respondWithError(w, status, clientMessage(err, fallback))
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.FromString(raw)
	if err != nil {
		log.Warn().Err(err).Str(name, raw).Msg("Failed to parse id parameter from URL")
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
