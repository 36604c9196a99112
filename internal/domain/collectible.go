package domain

// Tier is a cosmetic rarity label. It has no effect on sampling; drop
// likelihood comes entirely from Collectible.Weight.
type Tier string

const (
	TierCommon    Tier = "common"
	TierUncommon  Tier = "uncommon"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
)

// ValidTiers defines the closed set of accepted tier labels
var ValidTiers = map[Tier]bool{
	TierCommon:    true,
	TierUncommon:  true,
	TierRare:      true,
	TierEpic:      true,
	TierLegendary: true,
}

// Collectible is a drawable item. Values are immutable once constructed;
// weight reshaping produces a new Collectible rather than mutating one.
type Collectible struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Value  float64 `json:"value"`
	Tier   Tier    `json:"tier"`
}

// DrawResult is the outcome of a single case opening
type DrawResult struct {
	Collectible     Collectible `json:"collectible"`
	TimestampMillis int64       `json:"timestamp_millis"`
	ScoreDelta      float64     `json:"score_delta"`
}

// OfflineReport aggregates everything that happened during an offline window
type OfflineReport struct {
	ElapsedSeconds int64        `json:"elapsed_seconds"`
	DrawsPerformed int          `json:"draws_performed"`
	Draws          []DrawResult `json:"draws"`
	ScoreDelta     float64      `json:"score_delta"`
	CasesProduced  int64        `json:"cases_produced"`
	WasCapped      bool         `json:"was_capped"`
}
