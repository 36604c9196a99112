package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Pool construction errors
	ErrMsgEmptyPool     = "pool has no items"
	ErrMsgInvalidWeight = "item weight must be positive and finite"

	// Reshaping errors
	ErrMsgInvalidPercentage = "rarity percentage must be finite"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgPlayerExists   = "player already exists"

	// Economy errors
	ErrMsgInsufficientScore = "insufficient score"
	ErrMsgNoCases           = "no cases available"

	// Upgrade errors
	ErrMsgUnknownUpgrade = "unknown upgrade kind"
	ErrMsgUpgradeMaxed   = "upgrade is at max level"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Pool construction errors
	ErrEmptyPool     = errors.New(ErrMsgEmptyPool)
	ErrInvalidWeight = errors.New(ErrMsgInvalidWeight)

	// Reshaping errors
	ErrInvalidPercentage = errors.New(ErrMsgInvalidPercentage)

	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerExists   = errors.New(ErrMsgPlayerExists)

	// Economy errors
	ErrInsufficientScore = errors.New(ErrMsgInsufficientScore)
	ErrNoCases           = errors.New(ErrMsgNoCases)

	// Upgrade errors
	ErrUnknownUpgrade = errors.New(ErrMsgUnknownUpgrade)
	ErrUpgradeMaxed   = errors.New(ErrMsgUpgradeMaxed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
