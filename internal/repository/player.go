package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/domain"
)

// Player defines the interface for player state persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	// UpdatePlayer persists score, cases, upgrades, collection and anchor in
	// a single statement so a settle is atomic.
	UpdatePlayer(ctx context.Context, player *domain.Player) error
}
