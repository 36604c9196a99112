package pool

import (
	"math"
	"sort"

	"github.com/caseforge/caseforge/internal/domain"
)

// Pool is an immutable weighted table of collectibles with precomputed
// cumulative weights. Safe for concurrent readers; reshaping builds a
// fresh Pool instead of mutating one.
type Pool struct {
	items      []domain.Collectible
	cumulative []float64
	total      float64
}

// New builds a Pool from a list of collectibles.
// Returns domain.ErrEmptyPool for an empty list and domain.ErrInvalidWeight
// if any weight is non-positive or non-finite.
func New(items []domain.Collectible) (*Pool, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyPool
	}

	p := &Pool{
		items:      make([]domain.Collectible, len(items)),
		cumulative: make([]float64, len(items)),
	}
	copy(p.items, items)

	running := 0.0
	for i, item := range p.items {
		if item.Weight <= 0 || math.IsInf(item.Weight, 0) || math.IsNaN(item.Weight) {
			return nil, domain.ErrInvalidWeight
		}
		running += item.Weight
		p.cumulative[i] = running
	}
	p.total = running

	return p, nil
}

// Len returns the number of collectibles in the pool
func (p *Pool) Len() int {
	return len(p.items)
}

// TotalWeight returns the sum of all item weights
func (p *Pool) TotalWeight() float64 {
	return p.total
}

// Items returns a copy of the pool's collectibles in order
func (p *Pool) Items() []domain.Collectible {
	out := make([]domain.Collectible, len(p.items))
	copy(out, p.items)
	return out
}

// Item returns the collectible at index i
func (p *Pool) Item(i int) domain.Collectible {
	return p.items[i]
}

// Chance returns the draw probability of the item at index i
func (p *Pool) Chance(i int) float64 {
	return p.items[i].Weight / p.total
}

// Sample maps a uniform value in [0, 1) to a collectible proportionally to
// weight. The first item whose cumulative weight strictly exceeds
// uniform*total wins; the strict comparison keeps exact boundary values from
// counting twice. Rounding can push the target to or past the total, in
// which case the last item is returned rather than failing.
func (p *Pool) Sample(uniform float64) domain.Collectible {
	target := uniform * p.total
	if target >= p.total {
		return p.items[len(p.items)-1]
	}

	var idx int
	if len(p.items) >= binarySearchThreshold {
		idx = sort.Search(len(p.cumulative), func(i int) bool {
			return p.cumulative[i] > target
		})
	} else {
		idx = len(p.items) - 1
		for i, cum := range p.cumulative {
			if cum > target {
				idx = i
				break
			}
		}
	}

	if idx >= len(p.items) {
		idx = len(p.items) - 1
	}
	return p.items[idx]
}
