package draw

import (
	"math"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pool"
)

// ApplyRarityBoost returns a pool whose weights are skewed toward
// higher-value collectibles. The skew is a linear interpolation: the
// lowest-value item's weight is multiplied by 1 - percentage/100 and the
// highest-value item's by 1 + percentage/100, with everything in between
// scaled by its normalized value. Every reshaped weight is floored at 1, so
// percentages above 100 (where the low multiplier goes negative) cannot
// collapse an item to zero.
//
// A percentage <= 0 and a pool where all values are equal both return the
// input pool unchanged. A non-finite percentage is rejected with
// domain.ErrInvalidPercentage.
func ApplyRarityBoost(p *pool.Pool, percentage float64) (*pool.Pool, error) {
	if math.IsInf(percentage, 0) || math.IsNaN(percentage) {
		return nil, domain.ErrInvalidPercentage
	}
	if percentage <= 0 {
		return p, nil
	}

	items := p.Items()

	minValue, maxValue := items[0].Value, items[0].Value
	for _, item := range items[1:] {
		if item.Value < minValue {
			minValue = item.Value
		}
		if item.Value > maxValue {
			maxValue = item.Value
		}
	}
	if maxValue == minValue {
		// Flat-value pool: nothing to skew toward
		return p, nil
	}

	maxMultiplier := 1 + percentage/100
	minMultiplier := 1 - percentage/100

	reshaped := make([]domain.Collectible, len(items))
	for i, item := range items {
		normalized := (item.Value - minValue) / (maxValue - minValue)
		multiplier := minMultiplier + normalized*(maxMultiplier-minMultiplier)
		newWeight := math.Max(reshapedWeightFloor, item.Weight*multiplier)

		reshaped[i] = domain.Collectible{
			Name:   item.Name,
			Weight: newWeight,
			Value:  item.Value,
			Tier:   item.Tier,
		}
	}

	return pool.New(reshaped)
}
