package mining

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SkillForge_Go/internal/concurrency"
	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/ore"
	"github.com/osse101/SkillForge_Go/internal/repository"
	"github.com/osse101/SkillForge_Go/internal/skill"
	"github.com/osse101/SkillForge_Go/internal/utils"
)

// Service defines the mining skill business logic
type Service interface {
	// Gameplay
	HandleBlockBroken(ctx context.Context, evt domain.BlockBrokenEvent) (*domain.BreakOutcome, error)

	// Player session lifecycle
	LoadPlayer(ctx context.Context, playerID string) (*domain.SkillStatus, error)
	UnloadPlayer(ctx context.Context, playerID string) error
	RemovePlayer(ctx context.Context, playerID string) error

	// Administration
	GetStatus(ctx context.Context, playerID string) (*domain.SkillStatus, error)
	AddLevels(ctx context.Context, playerID string, levels int) (*domain.SkillStatus, error)
	SetXP(ctx context.Context, playerID string, xp int64) (*domain.SkillStatus, error)
	Reset(ctx context.Context, playerID string) (*domain.SkillStatus, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// Reference data
	Skill() string
	Catalog() []ore.Entry
	CurveTable(levels int) []domain.CurveRow
	Drops() DropConfig
	CacheStats() CacheStats

	Shutdown(ctx context.Context) error
}

// Config holds the tunables of the mining service
type Config struct {
	Catalog *ore.Catalog
	Drops   DropConfig
	Curve   skill.Curve
	Cache   CacheConfig

	// Rand supplies bonus drop rolls in [0, 1). Nil uses the global source.
	Rand func() float64
}

// DefaultConfig returns the built-in mining catalog, drop table and curve
func DefaultConfig() Config {
	return Config{
		Catalog: ore.NewCatalog(domain.SkillMining, ore.DefaultMiningEntries()),
		Drops:   DefaultDropConfig(),
		Curve:   skill.DefaultCurve,
		Cache:   DefaultCacheConfig(),
	}
}

type service struct {
	repo      repository.SkillProgress
	handler   *OreBreakHandler
	curve     skill.Curve
	skillKey  string
	cache     *progressCache
	locks     *concurrency.LockManager
	publisher *event.ResilientPublisher
	rnd       func() float64 // For bonus drop rolls
	now       func() time.Time
}

// NewService creates a new mining service
func NewService(repo repository.SkillProgress, publisher *event.ResilientPublisher, cfg Config) Service {
	if cfg.Catalog == nil {
		cfg.Catalog = ore.NewCatalog(domain.SkillMining, ore.DefaultMiningEntries())
	}
	if cfg.Rand == nil {
		cfg.Rand = utils.RandomFloat
	}
	return &service{
		repo:      repo,
		handler:   NewOreBreakHandler(cfg.Catalog, cfg.Drops),
		curve:     cfg.Curve,
		skillKey:  cfg.Catalog.Skill(),
		cache:     newProgressCache(cfg.Cache),
		locks:     concurrency.NewLockManager(),
		publisher: publisher,
		rnd:       cfg.Rand,
		now:       time.Now,
	}
}

// HandleBlockBroken applies a block break to the player's skill. Blocks that are
// not ore return an outcome with IsOre false and touch nothing.
func (s *service) HandleBlockBroken(ctx context.Context, evt domain.BlockBrokenEvent) (*domain.BreakOutcome, error) {
	if evt.PlayerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	outcome := &domain.BreakOutcome{
		PlayerID: evt.PlayerID,
		Skill:    s.skillKey,
		BlockID:  evt.BlockID,
	}
	if !s.handler.Catalog().IsOre(evt.BlockID) {
		return outcome, nil
	}

	log := logger.FromContext(ctx)
	var result BreakResult
	var working *skill.Progress

	err := s.locks.WithLock(cacheKey(evt.PlayerID, s.skillKey), func() error {
		current, _, err := s.loadProgress(ctx, evt.PlayerID)
		if err != nil {
			return err
		}

		working = skill.NewProgressWithXP(s.curve, current.XP())
		result = s.handler.OnOreBroken(evt.BlockID, working, s.rnd)

		if working.XP() != current.XP() {
			return s.save(ctx, evt.PlayerID, working)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome.IsOre = true
	outcome.XPGranted = result.XPGranted
	outcome.TotalXP = working.XP()
	outcome.Level = result.NewLevel
	outcome.LeveledUpTo = result.LeveledUpTo
	if result.BonusAmount > 0 {
		outcome.BonusDrop = &domain.BonusDrop{
			ItemID:   s.handler.Drops().ItemID,
			Amount:   result.BonusAmount,
			Position: evt.Position,
		}
	}

	log.Debug("Ore broken",
		"player_id", evt.PlayerID,
		"block_id", evt.BlockID,
		"xp_granted", result.XPGranted,
		"total_xp", outcome.TotalXP,
		"level", outcome.Level)

	s.publishBreak(ctx, outcome, result.OldLevel)
	return outcome, nil
}

func (s *service) publishBreak(ctx context.Context, outcome *domain.BreakOutcome, oldLevel int) {
	s.publish(ctx, event.NewSkillXPGainedEvent(outcome.PlayerID, s.skillKey, outcome.BlockID, outcome.XPGranted, outcome.TotalXP))

	if outcome.LeveledUpTo > 0 {
		logger.FromContext(ctx).Info("Skill level up",
			"player_id", outcome.PlayerID,
			"skill", s.skillKey,
			"old_level", oldLevel,
			"new_level", outcome.LeveledUpTo)
		s.publish(ctx, event.NewSkillLevelUpEvent(outcome.PlayerID, s.skillKey, oldLevel, outcome.LeveledUpTo))
	}

	if outcome.BonusDrop != nil {
		s.publish(ctx, event.NewSkillBonusDropEvent(outcome.PlayerID, s.skillKey, outcome.Level, *outcome.BonusDrop))
	}
}

// LoadPlayer makes sure the player has stored progress, warms the cache and
// announces the loaded level.
func (s *service) LoadPlayer(ctx context.Context, playerID string) (*domain.SkillStatus, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	var progress *skill.Progress
	err := s.locks.WithLock(cacheKey(playerID, s.skillKey), func() error {
		p, found, err := s.loadProgress(ctx, playerID)
		if err != nil {
			return err
		}
		if !found {
			if err := s.save(ctx, playerID, p); err != nil {
				return err
			}
		}
		progress = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	status := s.statusFor(playerID, progress)
	logger.FromContext(ctx).Info("Player skill loaded", "player_id", playerID, "skill", s.skillKey, "level", status.Level)
	s.publish(ctx, event.NewSkillLoadedEvent(playerID, s.skillKey, status.Level, status.TotalXP))
	return status, nil
}

// UnloadPlayer evicts the player's cached progress. Writes are already persisted.
func (s *service) UnloadPlayer(ctx context.Context, playerID string) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	return s.locks.WithLock(cacheKey(playerID, s.skillKey), func() error {
		s.cache.Invalidate(playerID, s.skillKey)
		return nil
	})
}

// RemovePlayer deletes the player's stored progress
func (s *service) RemovePlayer(ctx context.Context, playerID string) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	return s.locks.WithLock(cacheKey(playerID, s.skillKey), func() error {
		if err := s.repo.DeletePlayerSkill(ctx, playerID, s.skillKey); err != nil {
			return fmt.Errorf("%w: failed to delete player skill: %w", domain.ErrStorageUnavailable, err)
		}
		s.cache.Invalidate(playerID, s.skillKey)
		logger.FromContext(ctx).Info("Player skill removed", "player_id", playerID, "skill", s.skillKey)
		return nil
	})
}

// loadProgress returns the player's progress from cache or store. A player
// with nothing stored gets fresh progress and found=false. Call with the player's lock held.
func (s *service) loadProgress(ctx context.Context, playerID string) (*skill.Progress, bool, error) {
	if p, ok := s.cache.Get(playerID, s.skillKey); ok {
		return p, true, nil
	}

	stored, err := s.repo.GetPlayerSkill(ctx, playerID, s.skillKey)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to get player skill: %w", domain.ErrStorageUnavailable, err)
	}
	if stored == nil {
		return skill.NewProgressWithXP(s.curve, 0), false, nil
	}

	p := skill.NewProgressWithXP(s.curve, stored.XP)
	s.cache.Set(playerID, s.skillKey, p)
	return p, true, nil
}

// save persists progress and then refreshes the cache. Call with the player's lock held.
func (s *service) save(ctx context.Context, playerID string, p *skill.Progress) error {
	err := s.repo.UpsertPlayerSkill(ctx, &domain.PlayerSkill{
		PlayerID:  playerID,
		Skill:     s.skillKey,
		XP:        p.XP(),
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		s.cache.Invalidate(playerID, s.skillKey)
		return fmt.Errorf("%w: failed to save player skill: %w", domain.ErrStorageUnavailable, err)
	}
	s.cache.Set(playerID, s.skillKey, p)
	return nil
}

func (s *service) statusFor(playerID string, p *skill.Progress) *domain.SkillStatus {
	level := p.Level()
	return &domain.SkillStatus{
		PlayerID:      playerID,
		Skill:         s.skillKey,
		Level:         level,
		TotalXP:       p.XP(),
		XPIntoLevel:   p.XPIntoLevel(),
		XPForLevel:    s.curve.XPForLevel(level + 1),
		XPToNextLevel: p.XPToNextLevel(),
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// Skill returns the skill key this service progresses
func (s *service) Skill() string {
	return s.skillKey
}

// Catalog returns the ore table in match order
func (s *service) Catalog() []ore.Entry {
	return s.handler.Catalog().Entries()
}

// Drops returns the bonus drop table
func (s *service) Drops() DropConfig {
	return s.handler.Drops()
}

// CurveTable returns the requirements of levels 1 through levels
func (s *service) CurveTable(levels int) []domain.CurveRow {
	if levels <= 0 {
		levels = DefaultCurveRows
	}
	if levels > MaxCurveRows {
		levels = MaxCurveRows
	}

	rows := make([]domain.CurveRow, 0, levels)
	total := int64(0)
	for level := skill.MinLevel; level <= levels; level++ {
		step := s.curve.XPForLevel(level)
		total += step
		rows = append(rows, domain.CurveRow{Level: level, XPForLevel: step, TotalXP: total})
	}
	return rows
}

// CacheStats reports progress cache usage
func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}

// Shutdown flushes pending events
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Mining service shutting down...")

	if s.publisher != nil {
		if err := s.publisher.Shutdown(ctx); err != nil {
			log.Error("Failed to shut down mining publisher", "error", err)
			return err
		}
	}

	log.Info("Mining service shutdown complete")
	return nil
}
