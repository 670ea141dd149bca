package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/database"
	"github.com/osse101/SkillForge_Go/internal/database/memory"
	"github.com/osse101/SkillForge_Go/internal/database/postgres"
	"github.com/osse101/SkillForge_Go/internal/database/redis"
	"github.com/osse101/SkillForge_Go/internal/database/sqlite"
	"github.com/osse101/SkillForge_Go/internal/repository"
)

// InitializeRepository opens the skill store selected by STORAGE_DRIVER.
// SQL stores are migrated before they are returned. The caller closes the store.
func InitializeRepository(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	var (
		store repository.Store
		err   error
	)

	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		store, err = openPostgres(ctx, cfg)
	case config.StorageDriverSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
	case config.StorageDriverRedis:
		store, err = openRedis(cfg)
	case config.StorageDriverMemory:
		store = memory.NewStore()
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", ErrMsgFailedOpenStore, cfg.StorageDriver, err)
	}

	slog.Info(LogMsgStoreInitialized, "driver", cfg.StorageDriver)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateStore, err)
	}
	return postgres.NewSkillRepository(pool), nil
}

func openRedis(cfg *config.Config) (repository.Store, error) {
	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return nil, err
	}
	store, err := redis.NewStore(&redis.Config{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return store, nil
}
