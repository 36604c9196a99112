package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/caseforge/caseforge/internal/database"
	"github.com/caseforge/caseforge/internal/domain"
)

func TestPlayerRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start Postgres container
	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate(connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(ctx, connStr, 4, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := NewPlayerRepository(pool)
	anchor := time.Now().UTC().Truncate(time.Millisecond)

	newPlayer := func(username string) *domain.Player {
		return &domain.Player{
			ID:         uuid.New(),
			Username:   username,
			Score:      0,
			Cases:      10,
			Upgrades:   domain.UpgradeLevels{},
			Collection: domain.Collection{},
			AnchorAt:   anchor,
		}
	}

	t.Run("CreateAndGetPlayer", func(t *testing.T) {
		player := newPlayer("alice")
		if err := repo.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}

		got, err := repo.GetPlayer(ctx, player.ID)
		if err != nil {
			t.Fatalf("GetPlayer failed: %v", err)
		}
		if got.Username != "alice" {
			t.Errorf("expected username alice, got %s", got.Username)
		}
		if got.Cases != 10 {
			t.Errorf("expected 10 cases, got %d", got.Cases)
		}
		if got.Upgrades == nil || got.Collection == nil {
			t.Error("expected non-nil upgrade and collection maps")
		}
		if !got.AnchorAt.Equal(anchor) {
			t.Errorf("expected anchor %v, got %v", anchor, got.AnchorAt)
		}

		byName, err := repo.GetPlayerByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetPlayerByUsername failed: %v", err)
		}
		if byName.ID != player.ID {
			t.Errorf("expected ID %s, got %s", player.ID, byName.ID)
		}
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		if err := repo.CreatePlayer(ctx, newPlayer("bob")); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		err := repo.CreatePlayer(ctx, newPlayer("bob"))
		if err != domain.ErrPlayerExists {
			t.Errorf("expected ErrPlayerExists, got %v", err)
		}
	})

	t.Run("UpdatePlayer", func(t *testing.T) {
		player := newPlayer("carol")
		if err := repo.CreatePlayer(ctx, player); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}

		player.Score = 1234.5
		player.Cases = 3
		player.Upgrades[domain.UpgradeRarityBoost] = 2
		player.Collection["Rusty Knife"] = 40
		player.AnchorAt = anchor.Add(time.Hour)

		if err := repo.UpdatePlayer(ctx, player); err != nil {
			t.Fatalf("UpdatePlayer failed: %v", err)
		}

		got, err := repo.GetPlayer(ctx, player.ID)
		if err != nil {
			t.Fatalf("GetPlayer failed: %v", err)
		}
		if got.Score != 1234.5 {
			t.Errorf("expected score 1234.5, got %v", got.Score)
		}
		if got.Cases != 3 {
			t.Errorf("expected 3 cases, got %d", got.Cases)
		}
		if got.Upgrades.Level(domain.UpgradeRarityBoost) != 2 {
			t.Errorf("expected rarity level 2, got %d", got.Upgrades.Level(domain.UpgradeRarityBoost))
		}
		if got.Collection["Rusty Knife"] != 40 {
			t.Errorf("expected 40 Rusty Knives, got %d", got.Collection["Rusty Knife"])
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, err := repo.GetPlayer(ctx, uuid.New()); err != domain.ErrPlayerNotFound {
			t.Errorf("GetPlayer: expected ErrPlayerNotFound, got %v", err)
		}
		if _, err := repo.GetPlayerByUsername(ctx, "nobody"); err != domain.ErrPlayerNotFound {
			t.Errorf("GetPlayerByUsername: expected ErrPlayerNotFound, got %v", err)
		}

		ghost := newPlayer("ghost")
		if err := repo.UpdatePlayer(ctx, ghost); err != domain.ErrPlayerNotFound {
			t.Errorf("UpdatePlayer: expected ErrPlayerNotFound, got %v", err)
		}
	})
}
