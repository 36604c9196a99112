package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// writes a standardized error response on failure.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter, writing an error
// response and returning ok=false when it is missing
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// GetPlayerIDParam reads and parses the player id query parameter
func GetPlayerIDParam(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	raw, ok := GetQueryParam(r, w, "id")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, ErrMsgInvalidPlayerID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Service call failed", "op", opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
