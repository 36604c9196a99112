package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/game"
)

// ClaimOfflineRequest is the body of the offline claim endpoint
type ClaimOfflineRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// OfflineClaimResponse summarizes an offline claim. The full draw list can
// run to hundreds of thousands of entries for a capped window, so the API
// returns per-collectible counts instead of every single draw.
type OfflineClaimResponse struct {
	ElapsedSeconds int64            `json:"elapsed_seconds"`
	DrawsPerformed int              `json:"draws_performed"`
	WasCapped      bool             `json:"was_capped"`
	CasesProduced  int64            `json:"cases_produced"`
	ScoreCredited  float64          `json:"score_credited"`
	DrawnCounts    map[string]int64 `json:"drawn_counts"`
	Score          float64          `json:"score"`
	CasesLeft      int64            `json:"cases_left"`
}

// HandleClaimOffline settles a player's offline progression window
func HandleClaimOffline(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimOfflineRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim offline"); err != nil {
			return
		}

		result, err := svc.ClaimOffline(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Claim offline", err)
			return
		}

		resp := OfflineClaimResponse{
			ScoreCredited: result.ScoreCredited,
			Score:         result.Score,
			CasesLeft:     result.CasesLeft,
			DrawnCounts:   map[string]int64{},
		}
		if result.Report != nil {
			resp.ElapsedSeconds = result.Report.ElapsedSeconds
			resp.DrawsPerformed = result.Report.DrawsPerformed
			resp.WasCapped = result.Report.WasCapped
			resp.CasesProduced = result.Report.CasesProduced
			for _, d := range result.Report.Draws {
				resp.DrawnCounts[d.Collectible.Name]++
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
