// Package sqlite persists skill progress in an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SkillForge_Go/internal/database"
	"github.com/osse101/SkillForge_Go/internal/domain"
)

// Store implements repository.Store on SQLite
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and applies migrations
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{sqlDB: db}, nil
}

// GetPlayerSkill retrieves a player's stored progress, or nil if there is none
func (s *Store) GetPlayerSkill(ctx context.Context, playerID, skill string) (*domain.PlayerSkill, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT player_id, skill, xp, updated_at FROM player_skills WHERE player_id = ? AND skill = ?`,
		playerID, skill)

	ps, err := scanPlayerSkill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player skill: %w", err)
	}
	return ps, nil
}

// UpsertPlayerSkill inserts or overwrites a player's progress
func (s *Store) UpsertPlayerSkill(ctx context.Context, ps *domain.PlayerSkill) error {
	updatedAt := ps.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO player_skills (player_id, skill, xp, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (player_id, skill)
		DO UPDATE SET xp = excluded.xp, updated_at = excluded.updated_at`,
		ps.PlayerID, ps.Skill, ps.XP, toMillis(updatedAt))
	if err != nil {
		return fmt.Errorf("failed to upsert player skill: %w", err)
	}
	return nil
}

// DeletePlayerSkill removes a player's progress
func (s *Store) DeletePlayerSkill(ctx context.Context, playerID, skill string) error {
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM player_skills WHERE player_id = ? AND skill = ?`, playerID, skill); err != nil {
		return fmt.Errorf("failed to delete player skill: %w", err)
	}
	return nil
}

// ListTopPlayers returns the highest-XP players of a skill
func (s *Store) ListTopPlayers(ctx context.Context, skill string, limit int) ([]domain.PlayerSkill, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT player_id, skill, xp, updated_at
		FROM player_skills
		WHERE skill = ?
		ORDER BY xp DESC, player_id ASC
		LIMIT ?`, skill, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	var out []domain.PlayerSkill
	for rows.Next() {
		ps, err := scanPlayerSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top player: %w", err)
		}
		out = append(out, *ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top players: %w", err)
	}
	return out, nil
}

// Ping checks the database file is usable
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// Close closes the database
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayerSkill(row rowScanner) (*domain.PlayerSkill, error) {
	var ps domain.PlayerSkill
	var updatedAt int64
	if err := row.Scan(&ps.PlayerID, &ps.Skill, &ps.XP, &updatedAt); err != nil {
		return nil, err
	}
	ps.UpdatedAt = fromMillis(updatedAt)
	return &ps, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
