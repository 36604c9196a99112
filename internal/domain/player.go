package domain

import (
	"time"

	"github.com/google/uuid"
)

// UpgradeKind identifies one purchasable upgrade track. The set is closed;
// every switch over it must handle all five kinds.
type UpgradeKind string

const (
	UpgradeRarityBoost UpgradeKind = "rarity_boost"
	UpgradeLuckBoost   UpgradeKind = "luck_boost"
	UpgradeAutoOpen    UpgradeKind = "auto_open"
	UpgradeCaseRate    UpgradeKind = "case_rate"
	UpgradeScoreBoost  UpgradeKind = "score_boost"
)

// AllUpgradeKinds lists every kind in catalogue order
var AllUpgradeKinds = []UpgradeKind{
	UpgradeRarityBoost,
	UpgradeLuckBoost,
	UpgradeAutoOpen,
	UpgradeCaseRate,
	UpgradeScoreBoost,
}

// UpgradeLevels maps each purchased upgrade to its current level.
// A missing key means level 0, which is always a no-op.
type UpgradeLevels map[UpgradeKind]int

// Level returns the level for a kind, treating absence as zero
func (u UpgradeLevels) Level(kind UpgradeKind) int {
	if u == nil {
		return 0
	}
	return u[kind]
}

// Collection tracks how many times each collectible has been drawn,
// keyed by collectible name.
type Collection map[string]int64

// Player is the persisted state of one player
type Player struct {
	ID         uuid.UUID     `json:"id"`
	Username   string        `json:"username"`
	Score      float64       `json:"score"`
	Cases      int64         `json:"cases"`
	Upgrades   UpgradeLevels `json:"upgrades"`
	Collection Collection    `json:"collection"`
	// AnchorAt is the last timestamp progression was settled up to.
	// Offline simulation replays the window between it and now.
	AnchorAt  time.Time `json:"anchor_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
