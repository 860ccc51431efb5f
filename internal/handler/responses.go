package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fibulaproject/fibulopedia/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse wraps a collection payload with its length
type ListResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}

// User-facing error messages
const (
	ErrMsgNotFound          = "Record not found"
	ErrMsgInvalidEntityType = "Unknown entity type"
	ErrMsgUnknownError      = "An unexpected error occurred"
	ErrMsgMissingQueryParam = "Missing required query parameter: %s"
)

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so logging is all that is left
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondList sends a collection payload with its count
func respondList(w http.ResponseWriter, count int, payload interface{}) {
	respondJSON(w, http.StatusOK, ListResponse{Count: count, Data: payload})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFound
	case errors.Is(err, domain.ErrInvalidEntityType):
		return http.StatusBadRequest, ErrMsgInvalidEntityType
	default:
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
}
