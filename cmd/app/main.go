package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caseforge/caseforge/internal/config"
	"github.com/caseforge/caseforge/internal/database"
	"github.com/caseforge/caseforge/internal/database/postgres"
	"github.com/caseforge/caseforge/internal/draw"
	"github.com/caseforge/caseforge/internal/game"
	"github.com/caseforge/caseforge/internal/offline"
	"github.com/caseforge/caseforge/internal/pool"
	"github.com/caseforge/caseforge/internal/server"
)

const (
	dbMaxConnections  = 10
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "caseforge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	initLogger(cfg)
	slog.Info("Configuration loaded", "environment", cfg.Environment, "port", cfg.Port)

	if cfg.Environment == "production" || cfg.Environment == "prod" {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			return fmt.Errorf("validate environment: %w", err)
		}
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbPool, err := database.NewPool(ctx, connString, dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
	cancel()
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer dbPool.Close()

	pools, err := pool.Load(cfg.PoolsPath)
	if err != nil {
		return fmt.Errorf("load pools: %w", err)
	}
	basePool, ok := pools[cfg.PoolName]
	if !ok {
		return fmt.Errorf("pool %q not found in %s", cfg.PoolName, cfg.PoolsPath)
	}
	slog.Info("Collectible pool loaded", "pool", cfg.PoolName, "items", basePool.Len())

	playerRepo := postgres.NewPlayerRepository(dbPool)
	engine := draw.NewEngine()
	calc := offline.NewCalculator(engine)
	gameService := game.NewService(playerRepo, engine, calc, basePool)

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, gameService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
