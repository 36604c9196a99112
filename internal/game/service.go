package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/draw"
	"github.com/caseforge/caseforge/internal/logger"
	"github.com/caseforge/caseforge/internal/metrics"
	"github.com/caseforge/caseforge/internal/offline"
	"github.com/caseforge/caseforge/internal/pool"
	"github.com/caseforge/caseforge/internal/repository"
	"github.com/caseforge/caseforge/internal/upgrade"
)

// OpenResult is the outcome of an interactive open-cases call
type OpenResult struct {
	Draws      []domain.DrawResult `json:"draws"`
	ScoreDelta float64             `json:"score_delta"`
	Score      float64             `json:"score"`
	CasesLeft  int64               `json:"cases_left"`
}

// ClaimResult wraps an offline report with what was actually credited.
// The report's ScoreDelta is the raw sum of draw values; ScoreCredited has
// the player's score boost applied on top.
type ClaimResult struct {
	Report        *domain.OfflineReport `json:"report"`
	ScoreCredited float64               `json:"score_credited"`
	Score         float64               `json:"score"`
	CasesLeft     int64                 `json:"cases_left"`
}

// UpgradeStatus is one catalogue entry resolved against a player's levels
type UpgradeStatus struct {
	Spec     upgrade.Spec `json:"spec"`
	Level    int          `json:"level"`
	Effect   float64      `json:"effect"`
	NextCost *float64     `json:"next_cost,omitempty"` // nil when maxed
}

// Service defines the interface for game operations
type Service interface {
	Register(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	OpenCases(ctx context.Context, id uuid.UUID, count int) (*OpenResult, error)
	ClaimOffline(ctx context.Context, id uuid.UUID) (*ClaimResult, error)
	BuyUpgrade(ctx context.Context, id uuid.UUID, kind domain.UpgradeKind) (*domain.Player, error)
	Upgrades(ctx context.Context, id uuid.UUID) ([]UpgradeStatus, error)
	Pool() *pool.Pool
}

type service struct {
	repo    repository.Player
	engine  *draw.Engine
	calc    *offline.Calculator
	pool    *pool.Pool
	now     func() time.Time    // Injectable for testing
	uniform func() func() float64 // Per-call uniform source factory, injectable for testing
}

// NewService creates a new game service over the given base pool
func NewService(repo repository.Player, engine *draw.Engine, calc *offline.Calculator, basePool *pool.Pool, opts ...Option) Service {
	s := &service{
		repo:   repo,
		engine: engine,
		calc:   calc,
		pool:   basePool,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option customizes a Service, mainly for tests
type Option func(*service)

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithUniformSource overrides the per-call uniform source factory
func WithUniformSource(factory func() func() float64) Option {
	return func(s *service) { s.uniform = factory }
}

// Register creates a new player with the starting case allowance
func (s *service) Register(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	// Early duplicate check; the unique constraint still backstops races
	if _, err := s.repo.GetPlayerByUsername(ctx, username); err == nil {
		return nil, domain.ErrPlayerExists
	} else if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, err
	}

	player := &domain.Player{
		ID:         uuid.New(),
		Username:   username,
		Cases:      StartingCases,
		Upgrades:   domain.UpgradeLevels{},
		Collection: domain.Collection{},
		AnchorAt:   s.now(),
	}
	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	log.Info("Player registered", "player_id", player.ID, "username", username)
	return player, nil
}

// GetPlayer returns a player's persisted state
func (s *service) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return s.repo.GetPlayer(ctx, id)
}

// Pool returns the base collectible pool
func (s *service) Pool() *pool.Pool {
	return s.pool
}

// OpenCases opens up to count cases for the player: settle case production
// since the anchor, consume cases, run the draw engine with the player's
// modifiers, credit boosted score, persist.
func (s *service) OpenCases(ctx context.Context, id uuid.UUID, count int) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", domain.ErrInvalidInput)
	}
	if count > MaxOpenPerCall {
		return nil, fmt.Errorf("%w: at most %d cases per call", domain.ErrInvalidInput, MaxOpenPerCall)
	}

	player, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	s.settleProduction(player, now)

	if player.Cases < int64(count) {
		return nil, fmt.Errorf("%w: have %d, want %d", domain.ErrNoCases, player.Cases, count)
	}

	mods := upgrade.DrawModifiers(player.Upgrades)
	next := s.uniformSource()

	drawn, err := s.engine.DrawMany(count, s.pool, mods, next)
	if err != nil {
		return nil, fmt.Errorf("draw failed: %w", err)
	}

	nowMillis := now.UnixMilli()
	result := &OpenResult{Draws: make([]domain.DrawResult, len(drawn))}
	var rawScore float64
	for i, c := range drawn {
		result.Draws[i] = domain.DrawResult{
			Collectible:     c,
			TimestampMillis: nowMillis,
			ScoreDelta:      c.Value,
		}
		rawScore += c.Value
		player.Collection[c.Name]++
	}

	multiplier := upgrade.ScoreMultiplier(player.Upgrades.Level(domain.UpgradeScoreBoost))
	result.ScoreDelta = rawScore * multiplier

	player.Cases -= int64(count)
	player.Score += result.ScoreDelta
	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}

	result.Score = player.Score
	result.CasesLeft = player.Cases

	metrics.CasesOpened.Add(float64(count))
	metrics.ScoreEarned.Add(result.ScoreDelta)
	log.Debug("Cases opened", "player_id", id, "count", count, "score_delta", result.ScoreDelta)
	return result, nil
}

// ClaimOffline replays the window since the player's anchor and applies the
// result atomically: score, cases produced minus cases consumed, collection
// counts, new anchor.
func (s *service) ClaimOffline(ctx context.Context, id uuid.UUID) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	params := offline.Params{
		AnchorAt:       player.AnchorAt,
		Now:            now,
		AvailableCases: player.Cases,
		AutoDrawRate:   upgrade.AutoOpenRate(player.Upgrades.Level(domain.UpgradeAutoOpen)),
		ProductionRate: upgrade.CaseProductionRate(player.Upgrades.Level(domain.UpgradeCaseRate)),
		Modifiers:      upgrade.DrawModifiers(player.Upgrades),
	}

	report, err := s.calc.Calculate(params, s.pool)
	if err != nil {
		return nil, fmt.Errorf("offline calculation failed: %w", err)
	}
	if report == nil {
		// Nothing to replay; settle plain case production instead
		s.settleProduction(player, now)
		if err := s.repo.UpdatePlayer(ctx, player); err != nil {
			return nil, err
		}
		return &ClaimResult{Score: player.Score, CasesLeft: player.Cases}, nil
	}

	multiplier := upgrade.ScoreMultiplier(player.Upgrades.Level(domain.UpgradeScoreBoost))
	credited := report.ScoreDelta * multiplier

	player.Score += credited
	player.Cases += report.CasesProduced - int64(report.DrawsPerformed)
	if player.Cases < 0 {
		player.Cases = 0
	}
	for _, d := range report.Draws {
		player.Collection[d.Collectible.Name]++
	}
	player.AnchorAt = now

	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}

	metrics.OfflineClaims.Inc()
	metrics.OfflineDraws.Add(float64(report.DrawsPerformed))
	metrics.ScoreEarned.Add(credited)
	log.Info("Offline progress claimed",
		"player_id", id,
		"elapsed_seconds", report.ElapsedSeconds,
		"draws", report.DrawsPerformed,
		"capped", report.WasCapped)

	return &ClaimResult{
		Report:        report,
		ScoreCredited: credited,
		Score:         player.Score,
		CasesLeft:     player.Cases,
	}, nil
}

// BuyUpgrade purchases the next level of an upgrade track
func (s *service) BuyUpgrade(ctx context.Context, id uuid.UUID, kind domain.UpgradeKind) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	level := player.Upgrades.Level(kind)
	cost, err := upgrade.Cost(kind, level)
	if err != nil {
		return nil, err
	}
	if player.Score < cost {
		return nil, fmt.Errorf("%w: need %.0f, have %.0f", domain.ErrInsufficientScore, cost, player.Score)
	}

	player.Score -= cost
	player.Upgrades[kind] = level + 1
	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}

	metrics.UpgradesBought.WithLabelValues(string(kind)).Inc()
	log.Info("Upgrade purchased", "player_id", id, "kind", kind, "level", level+1, "cost", cost)
	return player, nil
}

// Upgrades returns the catalogue resolved against the player's levels
func (s *service) Upgrades(ctx context.Context, id uuid.UUID) ([]UpgradeStatus, error) {
	player, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	specs := upgrade.Catalogue()
	statuses := make([]UpgradeStatus, 0, len(specs))
	for _, spec := range specs {
		level := player.Upgrades.Level(spec.Kind)
		status := UpgradeStatus{
			Spec:   spec,
			Level:  level,
			Effect: upgrade.Effect(spec.Kind, level),
		}
		if cost, err := upgrade.Cost(spec.Kind, level); err == nil {
			status.NextCost = &cost
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// settleProduction credits cases produced since the anchor and advances it.
// Whole seconds only; the fractional remainder is forfeited, which keeps the
// anchor and the offline calculator's flooring consistent.
func (s *service) settleProduction(player *domain.Player, now time.Time) {
	rate := upgrade.CaseProductionRate(player.Upgrades.Level(domain.UpgradeCaseRate))
	elapsed := now.Unix() - player.AnchorAt.Unix()
	if rate > 0 && elapsed > 0 {
		if elapsed > offline.MaxOfflineSeconds {
			elapsed = offline.MaxOfflineSeconds
		}
		player.Cases += int64(float64(elapsed) * rate)
	}
	// Never rewind the anchor on a backward clock; doing so would reopen a
	// window that was already settled.
	if now.After(player.AnchorAt) {
		player.AnchorAt = now
	}
}

// uniformSource returns a fresh uniform source for one interactive call
func (s *service) uniformSource() func() float64 {
	if s.uniform != nil {
		return s.uniform()
	}
	return defaultUniformSource()
}
