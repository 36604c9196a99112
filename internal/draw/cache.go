package draw

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/caseforge/caseforge/internal/pool"
)

// reshapeKey identifies a reshaped derivative of a base pool. Base pools are
// built once at startup, so identity comparison on the pointer is stable.
type reshapeKey struct {
	base    *pool.Pool
	percent float64
}

// reshapeCache memoizes ApplyRarityBoost results. Reshaping is pure, so a
// cached derivative for unchanged parameters is always valid; this is an
// optimization only, never a correctness requirement.
type reshapeCache struct {
	entries *lru.Cache[reshapeKey, *pool.Pool]
}

func newReshapeCache() *reshapeCache {
	entries, err := lru.New[reshapeKey, *pool.Pool](reshapeCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &reshapeCache{entries: entries}
}

// get returns the reshaped pool for (base, percent), computing and caching
// it on a miss
func (c *reshapeCache) get(base *pool.Pool, percent float64) (*pool.Pool, error) {
	key := reshapeKey{base: base, percent: percent}
	if reshaped, ok := c.entries.Get(key); ok {
		return reshaped, nil
	}

	reshaped, err := ApplyRarityBoost(base, percent)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, reshaped)
	return reshaped, nil
}
