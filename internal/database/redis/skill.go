package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// Config for the Redis store
type Config struct {
	Client Client
}

// Validate checks the store configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if c.Client == nil {
		return errors.New("client cannot be nil")
	}
	return nil
}

// Store implements repository.Store on Redis
type Store struct {
	client Client
}

// NewStore creates a Redis-backed store
func NewStore(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{client: cfg.Client}, nil
}

func playerKey(skill, playerID string) string {
	return fmt.Sprintf("skill:%s:player:%s", skill, playerID)
}

func leaderboardKey(skill string) string {
	return fmt.Sprintf("skill:%s:leaderboard", skill)
}

// GetPlayerSkill retrieves a player's stored progress, or nil if there is none
func (s *Store) GetPlayerSkill(ctx context.Context, playerID, skill string) (*domain.PlayerSkill, error) {
	data, err := s.client.Get(ctx, playerKey(skill, playerID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player skill: %w", err)
	}

	ps, err := domain.DecodeRecord(playerID, skill, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode player skill: %w", err)
	}
	return ps, nil
}

// UpsertPlayerSkill writes the record and leaderboard score in one transaction
func (s *Store) UpsertPlayerSkill(ctx context.Context, ps *domain.PlayerSkill) error {
	if ps.XP < 0 {
		return fmt.Errorf("%w: xp must not be negative", domain.ErrInvalidInput)
	}

	rec := *ps
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	data, err := domain.EncodeRecord(&rec)
	if err != nil {
		return fmt.Errorf("failed to encode player skill: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, playerKey(ps.Skill, ps.PlayerID), data, 0)
		pipe.ZAdd(ctx, leaderboardKey(ps.Skill), goredis.Z{Score: float64(ps.XP), Member: ps.PlayerID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert player skill: %w", err)
	}
	return nil
}

// DeletePlayerSkill removes the record and leaderboard entry
func (s *Store) DeletePlayerSkill(ctx context.Context, playerID, skill string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, playerKey(skill, playerID))
		pipe.ZRem(ctx, leaderboardKey(skill), playerID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete player skill: %w", err)
	}
	return nil
}

// ListTopPlayers reads the leaderboard set for candidates, then takes XP
// from the player records. Scores are float64 and lose precision past 2^53,
// so they only pick the candidates. Redis orders equal scores by member
// descending, so players tied at the cut-off score are fetched in full and
// re-sorted by exact XP and player id.
func (s *Store) ListTopPlayers(ctx context.Context, skill string, limit int) ([]domain.PlayerSkill, error) {
	if limit <= 0 {
		return nil, nil
	}
	key := leaderboardKey(skill)

	top, err := s.client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	if len(top) == 0 {
		return nil, nil
	}

	members := make([]string, 0, len(top))
	scores := make(map[string]float64, len(top))
	for _, z := range top {
		member := z.Member.(string)
		members = append(members, member)
		scores[member] = z.Score
	}

	if len(top) == limit {
		cutoff := top[len(top)-1].Score
		tied, err := s.client.ZRangeByScore(ctx, key, &goredis.ZRangeBy{
			Min: strconv.FormatFloat(cutoff, 'f', -1, 64),
			Max: strconv.FormatFloat(cutoff, 'f', -1, 64),
		}).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to query tied players: %w", err)
		}
		for _, member := range tied {
			if _, ok := scores[member]; !ok {
				members = append(members, member)
				scores[member] = cutoff
			}
		}
	}

	keys := make([]string, len(members))
	for i, member := range members {
		keys[i] = playerKey(skill, member)
	}
	records, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load top player records: %w", err)
	}

	out := make([]domain.PlayerSkill, 0, len(members))
	for i, member := range members {
		raw, ok := records[i].(string)
		if !ok {
			// Record gone but the score is still there
			out = append(out, domain.PlayerSkill{PlayerID: member, Skill: skill, XP: int64(scores[member])})
			continue
		}
		ps, err := domain.DecodeRecord(member, skill, []byte(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode player skill %s: %w", member, err)
		}
		out = append(out, *ps)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Ping checks the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client
func (s *Store) Close() error {
	return s.client.Close()
}
