package repository

import (
	"context"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// SkillProgress defines the data access interface for per-player skill XP
type SkillProgress interface {
	// GetPlayerSkill returns nil, nil when the player has no stored progress
	GetPlayerSkill(ctx context.Context, playerID, skill string) (*domain.PlayerSkill, error)
	UpsertPlayerSkill(ctx context.Context, ps *domain.PlayerSkill) error
	// DeletePlayerSkill removes stored progress; deleting missing progress is not an error
	DeletePlayerSkill(ctx context.Context, playerID, skill string) error
	// ListTopPlayers returns up to limit players ordered by XP, highest first
	ListTopPlayers(ctx context.Context, skill string, limit int) ([]domain.PlayerSkill, error)
}

// Store is a SkillProgress backed by a connection that can be checked and released
type Store interface {
	SkillProgress
	Ping(ctx context.Context) error
	Close() error
}
