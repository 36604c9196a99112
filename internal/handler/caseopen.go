package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/game"
)

// OpenCasesRequest is the body of the open endpoint
type OpenCasesRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Count    int       `json:"count" validate:"omitempty,min=1,max=100"`
}

// HandleOpenCases opens one or more cases for a player
func HandleOpenCases(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenCasesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open cases"); err != nil {
			return
		}
		if req.Count == 0 {
			req.Count = 1
		}

		result, err := svc.OpenCases(r.Context(), req.PlayerID, req.Count)
		if err != nil {
			respondServiceError(w, r, "Open cases", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
