package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace-catalog/internal/middleware"
	"marketplace-catalog/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes the error envelope with the request's correlation ID.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps service errors onto HTTP responses. Unknown errors
// become 500 without leaking their text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var filterErr *model.InvalidFilterError
	if errors.As(err, &filterErr) {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, filterErr.Error(), logger)
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProductNotFound, model.ErrCodeSellerNotFound, model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidFilter, model.ErrCodeInvalidID, model.ErrCodeInvalidProduct:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
