package upgrade

import (
	"math"
	"testing"

	"github.com/caseforge/caseforge/internal/domain"
)

func TestDrawModifiers(t *testing.T) {
	levels := domain.UpgradeLevels{
		domain.UpgradeRarityBoost: 3,
		domain.UpgradeLuckBoost:   2,
		domain.UpgradeScoreBoost:  5,
	}

	mods := DrawModifiers(levels)
	if mods.RarityLevel != 3 {
		t.Errorf("RarityLevel = %d, want 3", mods.RarityLevel)
	}
	if mods.LuckLevel != 2 {
		t.Errorf("LuckLevel = %d, want 2", mods.LuckLevel)
	}
	if mods.RarityOverride != nil {
		t.Error("RarityOverride should not be set from upgrade levels")
	}

	zero := DrawModifiers(nil)
	if zero.RarityLevel != 0 || zero.LuckLevel != 0 {
		t.Errorf("nil levels should resolve to zero modifiers, got %+v", zero)
	}
}

func TestRates(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(int) float64
		level int
		want  float64
	}{
		{"auto open level 0", AutoOpenRate, 0, 0},
		{"auto open negative", AutoOpenRate, -1, 0},
		{"auto open level 1", AutoOpenRate, 1, 0.2},
		{"auto open level 5", AutoOpenRate, 5, 1.0},
		{"case rate level 0", CaseProductionRate, 0, 0},
		{"case rate level 4", CaseProductionRate, 4, 1.0},
		{"score level 0", ScoreMultiplier, 0, 1},
		{"score negative", ScoreMultiplier, -2, 1},
		{"score level 1", ScoreMultiplier, 1, 1.1},
		{"score level 10", ScoreMultiplier, 10, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.level); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffect(t *testing.T) {
	tests := []struct {
		kind  domain.UpgradeKind
		level int
		want  float64
	}{
		{domain.UpgradeRarityBoost, 3, 30},
		{domain.UpgradeLuckBoost, 2, 2},
		{domain.UpgradeAutoOpen, 5, 1.0},
		{domain.UpgradeCaseRate, 4, 1.0},
		{domain.UpgradeScoreBoost, 10, 2.0},
		{"time_travel", 1, 0},
	}

	for _, tt := range tests {
		if got := Effect(tt.kind, tt.level); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Effect(%s, %d) = %v, want %v", tt.kind, tt.level, got, tt.want)
		}
	}
}
