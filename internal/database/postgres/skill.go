// Package postgres persists skill progress in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// SkillRepository implements repository.Store for PostgreSQL
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// GetPlayerSkill retrieves a player's stored progress, or nil if there is none
func (r *SkillRepository) GetPlayerSkill(ctx context.Context, playerID, skill string) (*domain.PlayerSkill, error) {
	query := `
		SELECT player_id, skill, xp, updated_at
		FROM player_skills
		WHERE player_id = $1 AND skill = $2
	`

	var ps domain.PlayerSkill
	err := r.db.QueryRow(ctx, query, playerID, skill).Scan(&ps.PlayerID, &ps.Skill, &ps.XP, &ps.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player skill: %w", err)
	}
	return &ps, nil
}

// UpsertPlayerSkill inserts or overwrites a player's progress
func (r *SkillRepository) UpsertPlayerSkill(ctx context.Context, ps *domain.PlayerSkill) error {
	query := `
		INSERT INTO player_skills (player_id, skill, xp, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, skill)
		DO UPDATE SET xp = EXCLUDED.xp, updated_at = EXCLUDED.updated_at
	`

	updatedAt := ps.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	if _, err := r.db.Exec(ctx, query, ps.PlayerID, ps.Skill, ps.XP, updatedAt); err != nil {
		return fmt.Errorf("failed to upsert player skill: %w", err)
	}
	return nil
}

// DeletePlayerSkill removes a player's progress
func (r *SkillRepository) DeletePlayerSkill(ctx context.Context, playerID, skill string) error {
	query := `DELETE FROM player_skills WHERE player_id = $1 AND skill = $2`
	if _, err := r.db.Exec(ctx, query, playerID, skill); err != nil {
		return fmt.Errorf("failed to delete player skill: %w", err)
	}
	return nil
}

// ListTopPlayers returns the highest-XP players of a skill
func (r *SkillRepository) ListTopPlayers(ctx context.Context, skill string, limit int) ([]domain.PlayerSkill, error) {
	query := `
		SELECT player_id, skill, xp, updated_at
		FROM player_skills
		WHERE skill = $1
		ORDER BY xp DESC, player_id ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skill, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	var out []domain.PlayerSkill
	for rows.Next() {
		var ps domain.PlayerSkill
		if err := rows.Scan(&ps.PlayerID, &ps.Skill, &ps.XP, &ps.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan top player: %w", err)
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top players: %w", err)
	}
	return out, nil
}

// Ping checks the database connection
func (r *SkillRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the pool
func (r *SkillRepository) Close() error {
	if r.db != nil {
		r.db.Close()
	}
	return nil
}
