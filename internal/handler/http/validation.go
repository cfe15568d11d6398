package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func formatValidationErrors(errs validator.ValidationErrors) []string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("Field '%s' is required", field)
		case "email":
			msg = fmt.Sprintf("Field '%s' must be a valid email address", field)
		case "min":
			msg = fmt.Sprintf("Field '%s' must be at least %s", field, fe.Param())
		case "gte":
			msg = fmt.Sprintf("Field '%s' must be greater than or equal to %s", field, fe.Param())
		default:
			msg = fmt.Sprintf("Field '%s' failed on the '%s' rule", field, fe.Tag())
		}
		details = append(details, msg)
	}
	return details
}

// validateRequest runs struct validation and writes a 400 response when it fails.
// It returns false if the request must not be processed further.
func validateRequest(w http.ResponseWriter, validate *validator.Validate, payload interface{}) bool {
	err := validate.Struct(payload)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := formatValidationErrors(validationErrors)
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed: " + strings.Join(details, "; "),
			Details: details,
		})
		return false
	}

	log.Error().Err(err).Type("validation_error_type", err).Msg("Unexpected error type during validation")
	respondWithError(w, http.StatusInternalServerError, "Internal validation error")
	return false
}
