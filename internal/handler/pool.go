package handler

import (
	"net/http"
	"strconv"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/draw"
	"github.com/caseforge/caseforge/internal/game"
)

// PoolEntry is one collectible with its effective drop chance
type PoolEntry struct {
	Name   string      `json:"name"`
	Tier   domain.Tier `json:"tier"`
	Value  float64     `json:"value"`
	Weight float64     `json:"weight"`
	Chance float64     `json:"chance"`
}

// PoolResponse describes the active pool
type PoolResponse struct {
	TotalWeight   float64     `json:"total_weight"`
	RarityPercent float64     `json:"rarity_percent,omitempty"`
	Items         []PoolEntry `json:"items"`
}

// HandleGetPool returns the active pool's contents and drop chances.
// An optional rarity_percent query parameter previews the odds under a
// rarity boost that has not been purchased.
func HandleGetPool(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := svc.Pool()

		var percent float64
		if raw := r.URL.Query().Get("rarity_percent"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				http.Error(w, ErrMsgInvalidPercent, http.StatusBadRequest)
				return
			}
			reshaped, err := draw.ApplyRarityBoost(p, parsed)
			if err != nil {
				respondServiceError(w, r, "Get pool", err)
				return
			}
			p = reshaped
			percent = parsed
		}

		resp := PoolResponse{
			TotalWeight:   p.TotalWeight(),
			RarityPercent: percent,
			Items:         make([]PoolEntry, 0, p.Len()),
		}
		for i, item := range p.Items() {
			resp.Items = append(resp.Items, PoolEntry{
				Name:   item.Name,
				Tier:   item.Tier,
				Value:  item.Value,
				Weight: item.Weight,
				Chance: p.Chance(i),
			})
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
