package pool

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/caseforge/caseforge/internal/domain"
)

// Loading of named pool definitions from a JSON config file.
// The file maps pool name -> list of collectible definitions:
//
//	{
//	  "standard": [
//	    {"name": "Rusty Knife", "weight": 100, "value": 1, "tier": "common"},
//	    ...
//	  ]
//	}

// Load reads pool definitions from path and builds a Pool per entry
func Load(path string) (map[string]*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool definitions: %w", err)
	}

	var defs map[string][]domain.Collectible
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse pool definitions: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("pool definitions: %w", domain.ErrEmptyPool)
	}

	pools := make(map[string]*Pool, len(defs))
	for name, items := range defs {
		if err := validateItems(items); err != nil {
			return nil, fmt.Errorf("pool %q: %w", name, err)
		}
		p, err := New(items)
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", name, err)
		}
		pools[name] = p
	}
	return pools, nil
}

// validateItems checks the definition-level invariants New does not cover:
// unique names, known tiers, and sane values
func validateItems(items []domain.Collectible) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Name == "" {
			return fmt.Errorf("%w: collectible with empty name", domain.ErrInvalidInput)
		}
		if seen[item.Name] {
			return fmt.Errorf("%w: duplicate collectible %q", domain.ErrInvalidInput, item.Name)
		}
		seen[item.Name] = true

		if item.Value < 0 || math.IsInf(item.Value, 0) || math.IsNaN(item.Value) {
			return fmt.Errorf("%w: collectible %q has invalid value", domain.ErrInvalidInput, item.Name)
		}
		if !domain.ValidTiers[item.Tier] {
			return fmt.Errorf("%w: collectible %q has unknown tier %q", domain.ErrInvalidInput, item.Name, item.Tier)
		}
	}
	return nil
}
