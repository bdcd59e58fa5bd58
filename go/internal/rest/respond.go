// Package rest holds the JSON plumbing shared by the API handlers:
// response writing, error-to-status mapping and request validation.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
)

// ErrorBody is the error response shape. Clients read Message; Fields is
// populated only for validation failures.
type ErrorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// Error maps an error to a status code by its apierror kind and writes the
// standard error body.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := ErrorBody{Message: "internal server error"}

	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		body.Message = apiErr.Detail
		switch apiErr.Kind {
		case apierror.KindNotFound:
			status = http.StatusNotFound
		case apierror.KindValidation:
			status = http.StatusBadRequest
		case apierror.KindUnauthorized:
			status = http.StatusUnauthorized
		default:
			status = http.StatusInternalServerError
		}
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	JSON(w, status, body)
}

// ValidationError writes a 400 with per-field messages.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		Message: "validation failed",
		Fields:  fields,
	})
}

// Decode parses a JSON request body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierror.Wrap(apierror.KindValidation, "invalid request body", err)
	}
	return nil
}
