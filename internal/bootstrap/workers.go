package bootstrap

import (
	"log/slog"

	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/scheduler"
	"github.com/osse101/SkillForge_Go/internal/worker"
)

// workerQueueSize bounds pending background jobs
const workerQueueSize = 16

// InitializeWorkers starts the worker pool and schedules the periodic jobs.
// Both are returned so GracefulShutdown can stop them.
func InitializeWorkers(cfg *config.Config, cacheSource worker.CacheStatsSource) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.CacheStatsInterval > 0 && cacheSource != nil {
		sched.Schedule("cache_stats", cfg.CacheStatsInterval, worker.NewCacheStatsJob(cacheSource))
		slog.Info(LogMsgJobScheduled, "job", "cache_stats", "interval", cfg.CacheStatsInterval)
	}

	return pool, sched
}
