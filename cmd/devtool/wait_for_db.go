package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SkillForge_Go/internal/bootstrap"
	"github.com/osse101/SkillForge_Go/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the configured store to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	PrintHeader(fmt.Sprintf("Waiting for %s store...", cfg.StorageDriver))
	return waitForStore(context.Background(), cfg, waitMaxRetries, waitRetryInterval)
}

// waitForStore opens the configured store until it answers a ping.
// Opening a postgres or sqlite store also applies pending migrations.
func waitForStore(ctx context.Context, cfg *config.Config, maxRetries int, interval time.Duration) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		store, err := bootstrap.InitializeRepository(ctx, cfg)
		if err == nil {
			err = store.Ping(ctx)
			_ = store.Close()
			if err == nil {
				PrintSuccess("Store is ready")
				return nil
			}
		}
		lastErr = err

		fmt.Fprintf(uiOut, "Store not ready (%d/%d): %v\n", i+1, maxRetries, err)
		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("store failed to become ready after %d attempts: %w", maxRetries, lastErr)
}
