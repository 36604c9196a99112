package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/game"
)

// BuyUpgradeRequest is the body of the upgrade purchase endpoint
type BuyUpgradeRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Kind     string    `json:"kind" validate:"required,upgradekind"`
}

// HandleBuyUpgrade purchases the next level of an upgrade track
func HandleBuyUpgrade(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyUpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy upgrade"); err != nil {
			return
		}

		player, err := svc.BuyUpgrade(r.Context(), req.PlayerID, domain.UpgradeKind(req.Kind))
		if err != nil {
			respondServiceError(w, r, "Buy upgrade", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgUpgradePurchasedSuccess,
			Data:    player,
		})
	}
}

// HandleGetUpgrades returns the upgrade catalogue resolved for a player
func HandleGetUpgrades(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPlayerIDParam(r, w)
		if !ok {
			return
		}

		statuses, err := svc.Upgrades(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get upgrades", err)
			return
		}

		respondJSON(w, http.StatusOK, statuses)
	}
}
