// Package memory keeps skill progress in process memory. Data is lost on
// restart; it backs tests and single-process development runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

type key struct {
	playerID string
	skill    string
}

// Store implements repository.Store in memory
type Store struct {
	mu      sync.RWMutex
	records map[key]domain.PlayerSkill
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{records: make(map[key]domain.PlayerSkill)}
}

// GetPlayerSkill returns a copy of the stored progress, or nil
func (s *Store) GetPlayerSkill(_ context.Context, playerID, skill string) (*domain.PlayerSkill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ps, ok := s.records[key{playerID, skill}]
	if !ok {
		return nil, nil
	}
	return &ps, nil
}

// UpsertPlayerSkill stores a copy of ps
func (s *Store) UpsertPlayerSkill(_ context.Context, ps *domain.PlayerSkill) error {
	if ps.XP < 0 {
		return fmt.Errorf("%w: xp must not be negative", domain.ErrInvalidInput)
	}

	rec := *ps
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.records[key{ps.PlayerID, ps.Skill}] = rec
	s.mu.Unlock()
	return nil
}

// DeletePlayerSkill removes stored progress
func (s *Store) DeletePlayerSkill(_ context.Context, playerID, skill string) error {
	s.mu.Lock()
	delete(s.records, key{playerID, skill})
	s.mu.Unlock()
	return nil
}

// ListTopPlayers returns the highest-XP players, ties broken by player id
func (s *Store) ListTopPlayers(_ context.Context, skill string, limit int) ([]domain.PlayerSkill, error) {
	s.mu.RLock()
	out := make([]domain.PlayerSkill, 0, len(s.records))
	for k, ps := range s.records {
		if k.skill == skill {
			out = append(out, ps)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op
func (s *Store) Close() error { return nil }
