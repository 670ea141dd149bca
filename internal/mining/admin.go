package mining

import (
	"context"
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/skill"
)

// GetStatus returns the player's level and XP breakdown
func (s *service) GetStatus(ctx context.Context, playerID string) (*domain.SkillStatus, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	var status *domain.SkillStatus
	err := s.locks.WithLock(cacheKey(playerID, s.skillKey), func() error {
		p, found, err := s.loadProgress(ctx, playerID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		status = s.statusFor(playerID, p)
		return nil
	})
	return status, err
}

// AddLevels moves the player levels up (or down when negative). The XP change is
// the cumulative requirement difference between the two levels, so progress
// inside the current level is kept.
func (s *service) AddLevels(ctx context.Context, playerID string, levels int) (*domain.SkillStatus, error) {
	if levels == 0 {
		return nil, fmt.Errorf("%w: levels must be non-zero", domain.ErrInvalidInput)
	}
	return s.adjust(ctx, playerID, domain.AdjustAddLevels, func(p *skill.Progress) {
		p.SetXP(xpAfterLevelShift(s.curve, p.XP(), levels))
	})
}

// SetXP overwrites the player's XP. Negative values clamp to 0 and values past
// the start of MaxAdminLevel are rejected.
func (s *service) SetXP(ctx context.Context, playerID string, xp int64) (*domain.SkillStatus, error) {
	if ceiling := adminXPCeiling(s.curve); xp > ceiling {
		return nil, fmt.Errorf("%w: xp must be at most %d", domain.ErrInvalidInput, ceiling)
	}
	return s.adjust(ctx, playerID, domain.AdjustSetXP, func(p *skill.Progress) {
		p.SetXP(xp)
	})
}

// Reset returns the player to level 1
func (s *service) Reset(ctx context.Context, playerID string) (*domain.SkillStatus, error) {
	return s.adjust(ctx, playerID, domain.AdjustReset, func(p *skill.Progress) {
		p.Reset()
	})
}

func (s *service) adjust(ctx context.Context, playerID, operation string, apply func(p *skill.Progress)) (*domain.SkillStatus, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	var before, after *skill.Progress
	err := s.locks.WithLock(cacheKey(playerID, s.skillKey), func() error {
		current, found, err := s.loadProgress(ctx, playerID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}

		before = current
		after = skill.NewProgressWithXP(s.curve, current.XP())
		apply(after)
		return s.save(ctx, playerID, after)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Skill adjusted",
		"player_id", playerID,
		"skill", s.skillKey,
		"operation", operation,
		"old_xp", before.XP(),
		"new_xp", after.XP())

	s.publish(ctx, event.NewSkillAdjustedEvent(playerID, s.skillKey, operation, before.XP(), after.XP(), before.Level(), after.Level()))
	return s.statusFor(playerID, after), nil
}

// adminXPCeiling is the XP at the start of MaxAdminLevel on curve
func adminXPCeiling(curve skill.Curve) int64 {
	return curve.TotalXPForLevel(MaxAdminLevel)
}

// xpAfterLevelShift returns the XP that puts a skill levels away from its
// current level, never below level 1 and never raised past MaxAdminLevel.
// Moving up adds totalXP(target) - totalXP(current). Moving down keeps as much
// of the in-level progress as still fits below the next level.
func xpAfterLevelShift(curve skill.Curve, xp int64, levels int) int64 {
	if levels > 0 && xp >= adminXPCeiling(curve) {
		return xp
	}

	current := curve.LevelForXP(xp)
	var target int
	switch {
	case levels > 0 && levels > MaxAdminLevel-current:
		target = MaxAdminLevel
	case levels < 0 && levels < skill.MinLevel-current:
		target = skill.MinLevel
	default:
		target = current + levels
	}

	if target >= current {
		p := skill.NewProgressWithXP(curve, xp)
		p.AddXP(curve.LevelDelta(current, target))
		return p.XP()
	}

	into := curve.XPIntoCurrentLevel(xp)
	if limit := curve.XPForLevel(target+1) - 1; into > limit {
		into = limit
	}
	return curve.TotalXPForLevel(target) + into
}

// Leaderboard returns the top players by XP
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	rows, err := s.repo.ListTopPlayers(ctx, s.skillKey, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list top players: %w", domain.ErrStorageUnavailable, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: row.PlayerID,
			Level:    s.curve.LevelForXP(row.XP),
			XP:       row.XP,
		})
	}
	return entries, nil
}
