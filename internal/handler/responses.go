package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseforge/caseforge/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; log and give up
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

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: status code plus a message users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPlayerExists):
		return http.StatusConflict, ErrMsgPlayerExistsError
	case errors.Is(err, domain.ErrNoCases):
		return http.StatusBadRequest, ErrMsgNoCasesError
	case errors.Is(err, domain.ErrInsufficientScore):
		return http.StatusBadRequest, ErrMsgInsufficientScoreError
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusBadRequest, ErrMsgUnknownUpgradeError
	case errors.Is(err, domain.ErrUpgradeMaxed):
		return http.StatusBadRequest, ErrMsgUpgradeMaxedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidPercentage):
		return http.StatusBadRequest, ErrMsgInvalidPercent
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
