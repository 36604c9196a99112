package draw

import (
	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pool"
)

// DrawWithLuck performs 1+extraRolls independent samples from the same pool
// and keeps the most valuable result. Luck does not reshape weights; it only
// resamples.
//
// Ties resolve to the first-drawn item: a later roll replaces the current
// best only when its value is strictly greater. That makes the outcome a
// deterministic function of roll order, which offline replay relies on.
func DrawWithLuck(p *pool.Pool, extraRolls int, next UniformSource) domain.Collectible {
	best := p.Sample(next())
	for i := 0; i < extraRolls; i++ {
		candidate := p.Sample(next())
		if candidate.Value > best.Value {
			best = candidate
		}
	}
	return best
}
