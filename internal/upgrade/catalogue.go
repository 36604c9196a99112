package upgrade

import (
	"math"

	"github.com/caseforge/caseforge/internal/domain"
)

// Spec describes one upgrade track: what it costs and how far it goes.
// Each level costs BaseCost * CostGrowth^level, the usual incremental-game
// geometric curve.
type Spec struct {
	Kind        domain.UpgradeKind `json:"kind"`
	DisplayName string             `json:"display_name"`
	Description string             `json:"description"`
	MaxLevel    int                `json:"max_level"`
	BaseCost    float64            `json:"base_cost"`
	CostGrowth  float64            `json:"cost_growth"`
}

var catalogue = map[domain.UpgradeKind]Spec{
	domain.UpgradeRarityBoost: {
		Kind:        domain.UpgradeRarityBoost,
		DisplayName: "Rarity Boost",
		Description: "Skews drop odds toward higher-value collectibles (+10% per level)",
		MaxLevel:    10,
		BaseCost:    100,
		CostGrowth:  1.5,
	},
	domain.UpgradeLuckBoost: {
		Kind:        domain.UpgradeLuckBoost,
		DisplayName: "Luck",
		Description: "Rolls extra draws per case and keeps the best (+1 roll per level)",
		MaxLevel:    5,
		BaseCost:    250,
		CostGrowth:  1.6,
	},
	domain.UpgradeAutoOpen: {
		Kind:        domain.UpgradeAutoOpen,
		DisplayName: "Auto Opener",
		Description: "Opens cases automatically, even while away",
		MaxLevel:    10,
		BaseCost:    500,
		CostGrowth:  1.7,
	},
	domain.UpgradeCaseRate: {
		Kind:        domain.UpgradeCaseRate,
		DisplayName: "Case Production",
		Description: "Produces cases over time",
		MaxLevel:    20,
		BaseCost:    150,
		CostGrowth:  1.5,
	},
	domain.UpgradeScoreBoost: {
		Kind:        domain.UpgradeScoreBoost,
		DisplayName: "Score Boost",
		Description: "Multiplies score earned per draw (+10% per level)",
		MaxLevel:    25,
		BaseCost:    200,
		CostGrowth:  1.5,
	},
}

// Get returns the spec for a kind
func Get(kind domain.UpgradeKind) (Spec, error) {
	spec, ok := catalogue[kind]
	if !ok {
		return Spec{}, domain.ErrUnknownUpgrade
	}
	return spec, nil
}

// Catalogue returns all upgrade specs in domain.AllUpgradeKinds order
func Catalogue() []Spec {
	specs := make([]Spec, 0, len(catalogue))
	for _, kind := range domain.AllUpgradeKinds {
		specs = append(specs, catalogue[kind])
	}
	return specs
}

// Cost returns the score price of buying the next level when the current
// level is currentLevel. Returns domain.ErrUpgradeMaxed when the track is
// already complete.
func Cost(kind domain.UpgradeKind, currentLevel int) (float64, error) {
	spec, err := Get(kind)
	if err != nil {
		return 0, err
	}
	if currentLevel >= spec.MaxLevel {
		return 0, domain.ErrUpgradeMaxed
	}
	if currentLevel < 0 {
		currentLevel = 0
	}
	return math.Floor(spec.BaseCost * math.Pow(spec.CostGrowth, float64(currentLevel))), nil
}
