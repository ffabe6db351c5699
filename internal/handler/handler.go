package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already on the wire; an encode failure here cannot
	// be reported to the client.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service-layer error onto an HTTP response.
// Domain errors keep their code and message; everything else is an opaque
// internal error.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound, model.ErrCodeOfferNotFound:
			status = http.StatusNotFound
		case model.ErrCodeUnauthorised:
			status = http.StatusUnauthorized
		}
		logger.Warn().Str("code", domainErr.Code).Str("error", domainErr.Message).Msg("domain error")
		writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}

// decodeJSON decodes the request body into dst, rejecting malformed payloads.
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
