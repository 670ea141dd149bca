// Package redis persists skill progress in Redis, one JSON record per
// player and a sorted set per skill for the leaderboard.
package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so tests can swap in miniredis or a mock
type Client interface {
	goredis.UniversalClient
}

// Options configures the Redis connection
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
}

// NewClient creates a client for a single Redis instance. Redis connects lazily.
func NewClient(addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	return goredis.NewClient(&goredis.Options{
		Addr:            addr,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}), nil
}
