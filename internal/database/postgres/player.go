package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseforge/caseforge/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player record
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	upgrades, collection, err := marshalState(player)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO players (id, username, score, cases, upgrades, collection, anchor_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		player.ID, player.Username, player.Score, player.Cases, upgrades, collection, player.AnchorAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrPlayerExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreatePlayer, err)
	}
	return nil
}

// GetPlayer retrieves a player by ID
func (r *PlayerRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, score, cases, upgrades, collection, anchor_at, created_at, updated_at
		FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

// GetPlayerByUsername retrieves a player by username
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, score, cases, upgrades, collection, anchor_at, created_at, updated_at
		FROM players WHERE username = $1`, username)
	return scanPlayer(row)
}

// UpdatePlayer persists the mutable player state in one statement
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	upgrades, collection, err := marshalState(player)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE players
		SET score = $2, cases = $3, upgrades = $4, collection = $5, anchor_at = $6, updated_at = now()
		WHERE id = $1`,
		player.ID, player.Score, player.Cases, upgrades, collection, player.AnchorAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func marshalState(player *domain.Player) ([]byte, []byte, error) {
	upgrades, err := json.Marshal(player.Upgrades)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal upgrades: %w", err)
	}
	collection, err := json.Marshal(player.Collection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal collection: %w", err)
	}
	return upgrades, collection, nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		player     domain.Player
		upgrades   []byte
		collection []byte
	)
	err := row.Scan(
		&player.ID, &player.Username, &player.Score, &player.Cases,
		&upgrades, &collection, &player.AnchorAt, &player.CreatedAt, &player.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPlayer, err)
	}

	if err := json.Unmarshal(upgrades, &player.Upgrades); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrades: %w", err)
	}
	if err := json.Unmarshal(collection, &player.Collection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}
	if player.Upgrades == nil {
		player.Upgrades = domain.UpgradeLevels{}
	}
	if player.Collection == nil {
		player.Collection = domain.Collection{}
	}
	return &player, nil
}
