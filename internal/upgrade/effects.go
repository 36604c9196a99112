package upgrade

import (
	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/draw"
)

// Per-level effect constants. Rates are per second.
const (
	AutoOpenPerSecondPerLevel = 0.2
	CasesPerSecondPerLevel    = 0.25
	ScoreBoostPerLevel        = 0.1
)

// DrawModifiers resolves a player's upgrade levels into the modifiers the
// draw engine consumes
func DrawModifiers(levels domain.UpgradeLevels) draw.Modifiers {
	return draw.Modifiers{
		RarityLevel: levels.Level(domain.UpgradeRarityBoost),
		LuckLevel:   levels.Level(domain.UpgradeLuckBoost),
	}
}

// AutoOpenRate returns automated draws per second for an auto_open level
func AutoOpenRate(level int) float64 {
	if level <= 0 {
		return 0
	}
	return float64(level) * AutoOpenPerSecondPerLevel
}

// CaseProductionRate returns cases produced per second for a case_rate level
func CaseProductionRate(level int) float64 {
	if level <= 0 {
		return 0
	}
	return float64(level) * CasesPerSecondPerLevel
}

// ScoreMultiplier returns the multiplicative score factor for a score_boost
// level. Level 0 is exactly 1.
func ScoreMultiplier(level int) float64 {
	if level <= 0 {
		return 1
	}
	return 1 + float64(level)*ScoreBoostPerLevel
}

// Effect describes one kind's resolved effect at a given level, for the
// catalogue endpoint. The switch is exhaustive over the closed kind set.
func Effect(kind domain.UpgradeKind, level int) float64 {
	switch kind {
	case domain.UpgradeRarityBoost:
		return float64(level) * draw.RarityPercentPerLevel
	case domain.UpgradeLuckBoost:
		return float64(level)
	case domain.UpgradeAutoOpen:
		return AutoOpenRate(level)
	case domain.UpgradeCaseRate:
		return CaseProductionRate(level)
	case domain.UpgradeScoreBoost:
		return ScoreMultiplier(level)
	}
	return 0
}
