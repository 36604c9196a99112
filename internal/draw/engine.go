package draw

import (
	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/pool"
)

// UniformSource yields the next uniform random value in [0, 1). The engine
// never touches a global random source; randomness is always injected so a
// seeded stream can replay a draw sequence exactly.
type UniformSource func() float64

// Modifiers are the upgrade effects relevant to a single draw.
// A zero level is always a no-op. RarityOverride, when set, replaces the
// level-derived percentage; it exists so callers can preview a boost that
// has not been purchased, and it routes through the same reshaping path.
type Modifiers struct {
	RarityLevel    int
	RarityOverride *float64
	LuckLevel      int
}

// rarityPercent resolves the effective reshaping percentage
func (m Modifiers) rarityPercent() float64 {
	if m.RarityOverride != nil {
		return *m.RarityOverride
	}
	return float64(m.RarityLevel) * RarityPercentPerLevel
}

// Engine composes rarity reshaping and best-of-N luck over a weighted pool.
// It is stateless apart from the reshape cache and safe for concurrent use
// as long as each caller brings its own UniformSource.
type Engine struct {
	cache *reshapeCache
}

// NewEngine creates a draw engine
func NewEngine() *Engine {
	return &Engine{cache: newReshapeCache()}
}

// DrawOne draws a single collectible: rarity reshaping first (if any), then
// luck resampling (if any), otherwise one plain sample. Uniform values are
// consumed strictly in roll order.
func (e *Engine) DrawOne(p *pool.Pool, mods Modifiers, next UniformSource) (domain.Collectible, error) {
	effective := p
	if percent := mods.rarityPercent(); percent > 0 || mods.RarityOverride != nil {
		reshaped, err := e.cache.get(p, percent)
		if err != nil {
			return domain.Collectible{}, err
		}
		effective = reshaped
	}

	if mods.LuckLevel > 0 {
		return DrawWithLuck(effective, mods.LuckLevel, next), nil
	}
	return effective.Sample(next()), nil
}

// DrawMany performs DrawOne exactly count times in order. There is no
// batching: each draw consumes however many uniforms its own logic needs,
// so the consumed random sequence is identical to count separate DrawOne
// calls. Offline replay depends on that.
func (e *Engine) DrawMany(count int, p *pool.Pool, mods Modifiers, next UniformSource) ([]domain.Collectible, error) {
	if count <= 0 {
		return nil, nil
	}
	results := make([]domain.Collectible, 0, count)
	for i := 0; i < count; i++ {
		c, err := e.DrawOne(p, mods, next)
		if err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, nil
}
