package draw

import (
	"errors"
	"math"
	"testing"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pool"
)

func mustPool(t *testing.T, items []domain.Collectible) *pool.Pool {
	t.Helper()
	p, err := pool.New(items)
	if err != nil {
		t.Fatalf("pool.New() error = %v", err)
	}
	return p
}

func TestApplyRarityBoostInvalidPercentage(t *testing.T) {
	p := mustPool(t, []domain.Collectible{{Name: "a", Weight: 1, Value: 1}})

	for _, percentage := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := ApplyRarityBoost(p, percentage)
		if !errors.Is(err, domain.ErrInvalidPercentage) {
			t.Errorf("ApplyRarityBoost(%v) error = %v, want ErrInvalidPercentage", percentage, err)
		}
	}
}

func TestApplyRarityBoostIdentity(t *testing.T) {
	t.Run("non-positive percentage returns the same pool", func(t *testing.T) {
		p := mustPool(t, []domain.Collectible{
			{Name: "a", Weight: 10, Value: 1},
			{Name: "b", Weight: 1, Value: 10},
		})

		for _, percentage := range []float64{0, -5} {
			got, err := ApplyRarityBoost(p, percentage)
			if err != nil {
				t.Fatalf("ApplyRarityBoost(%v) error = %v", percentage, err)
			}
			if got != p {
				t.Errorf("ApplyRarityBoost(%v) should return the input pool unchanged", percentage)
			}
		}
	})

	t.Run("flat-value pool returns the same pool", func(t *testing.T) {
		p := mustPool(t, []domain.Collectible{
			{Name: "a", Weight: 10, Value: 5},
			{Name: "b", Weight: 1, Value: 5},
		})

		got, err := ApplyRarityBoost(p, 50)
		if err != nil {
			t.Fatalf("ApplyRarityBoost() error = %v", err)
		}
		if got != p {
			t.Error("A pool where every value is equal has nothing to skew toward")
		}
	})
}

// At 100%: the lowest-value item's multiplier is 0 so its weight hits the
// floor of 1; the highest-value item's weight doubles.
func TestApplyRarityBoostFullBoost(t *testing.T) {
	p := mustPool(t, []domain.Collectible{
		{Name: "a", Weight: 100, Value: 1, Tier: domain.TierCommon},
		{Name: "b", Weight: 1, Value: 100, Tier: domain.TierLegendary},
	})

	reshaped, err := ApplyRarityBoost(p, 100)
	if err != nil {
		t.Fatalf("ApplyRarityBoost() error = %v", err)
	}

	if got := reshaped.Item(0).Weight; got != 1 {
		t.Errorf("low-value weight = %v, want floor of 1", got)
	}
	if got := reshaped.Item(1).Weight; got != 2 {
		t.Errorf("high-value weight = %v, want 2", got)
	}

	// Names, values, tiers and ordering survive reshaping
	if reshaped.Item(0).Name != "a" || reshaped.Item(1).Name != "b" {
		t.Error("reshaping must preserve item order")
	}
	if reshaped.Item(1).Tier != domain.TierLegendary {
		t.Error("reshaping must preserve tiers")
	}
}

func TestApplyRarityBoostInterpolation(t *testing.T) {
	p := mustPool(t, []domain.Collectible{
		{Name: "low", Weight: 100, Value: 0},
		{Name: "mid", Weight: 100, Value: 50},
		{Name: "high", Weight: 100, Value: 100},
	})

	reshaped, err := ApplyRarityBoost(p, 50)
	if err != nil {
		t.Fatalf("ApplyRarityBoost() error = %v", err)
	}

	// Multipliers at 50%: 0.5, 1.0, 1.5
	wants := []float64{50, 100, 150}
	for i, want := range wants {
		if got := reshaped.Item(i).Weight; math.Abs(got-want) > 1e-9 {
			t.Errorf("Item(%d).Weight = %v, want %v", i, got, want)
		}
	}
}

func TestApplyRarityBoostWeightFloor(t *testing.T) {
	p := mustPool(t, []domain.Collectible{
		{Name: "low", Weight: 2, Value: 1},
		{Name: "high", Weight: 2, Value: 100},
	})

	// 200% puts the low multiplier at -1; the floor keeps the weight valid
	reshaped, err := ApplyRarityBoost(p, 200)
	if err != nil {
		t.Fatalf("ApplyRarityBoost() error = %v", err)
	}
	if got := reshaped.Item(0).Weight; got != 1 {
		t.Errorf("Item(0).Weight = %v, want floor of 1", got)
	}
	if got := reshaped.Item(1).Weight; got != 6 {
		t.Errorf("Item(1).Weight = %v, want 6", got)
	}
}

// Higher percentages monotonically raise the draw chance of the most
// valuable item.
func TestApplyRarityBoostMonotonic(t *testing.T) {
	p := mustPool(t, []domain.Collectible{
		{Name: "common", Weight: 90, Value: 1},
		{Name: "rare", Weight: 10, Value: 100},
	})

	prev := -1.0
	for _, percentage := range []float64{10, 25, 50, 75, 100} {
		reshaped, err := ApplyRarityBoost(p, percentage)
		if err != nil {
			t.Fatalf("ApplyRarityBoost(%v) error = %v", percentage, err)
		}
		chance := reshaped.Chance(1)
		if chance <= prev {
			t.Errorf("rare chance at %v%% = %v, not greater than %v", percentage, chance, prev)
		}
		prev = chance
	}
}
