package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"regrelay/internal/domain"
)

// ErrorResponse is the JSON error body every entry point returns on failure.
// Details carries provider-reported error arrays verbatim when present.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes an ErrorResponse with the given message and optional
// details.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string, details any) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Details: details})
}

// WriteDomainError performs the single uniform mapping from the error
// taxonomy to HTTP statuses: validation 400, not found 404, everything else
// (config, transport, provider) 500. No error is swallowed: provider detail
// is serialized verbatim and 500s are logged.
func WriteDomainError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error) {
	var (
		vErr *domain.ValidationError
		cErr *domain.ConfigError
		pErr *domain.ProviderError
	)
	switch {
	case errors.As(err, &vErr):
		var details any
		if len(vErr.Fields) > 0 {
			details = vErr.Fields
		}
		WriteJSONError(w, http.StatusBadRequest, vErr.Message, details)
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Event not found", nil)
	case errors.As(err, &cErr):
		logger.ErrorContext(r.Context(), "configuration error", "path", r.URL.Path, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, cErr.Message, nil)
	case errors.As(err, &pErr):
		logger.ErrorContext(r.Context(), "provider error", "path", r.URL.Path, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, "provider returned errors", pErr.Errors)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}
