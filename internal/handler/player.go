package handler

import (
	"net/http"

	"github.com/caseforge/caseforge/internal/game"
)

// RegisterPlayerRequest is the body of the register endpoint
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,excludesall= "`
}

// HandleRegisterPlayer creates a new player
func HandleRegisterPlayer(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		player, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register player", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgPlayerRegisteredSuccess,
			Data:    player,
		})
	}
}

// HandleGetPlayer returns a player's persisted state
func HandleGetPlayer(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPlayerIDParam(r, w)
		if !ok {
			return
		}

		player, err := svc.GetPlayer(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get player", err)
			return
		}

		respondJSON(w, http.StatusOK, player)
	}
}
