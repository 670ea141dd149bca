package worker

import (
	"context"

	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/metrics"
	"github.com/osse101/SkillForge_Go/internal/mining"
)

// CacheStatsSource is the part of the mining service the job reads
type CacheStatsSource interface {
	Skill() string
	CacheStats() mining.CacheStats
}

// CacheStatsJob copies the progress cache counters into prometheus gauges
type CacheStatsJob struct {
	Source CacheStatsSource
}

// NewCacheStatsJob creates a job reporting the given service's cache
func NewCacheStatsJob(source CacheStatsSource) *CacheStatsJob {
	return &CacheStatsJob{Source: source}
}

// Process implements Job
func (j *CacheStatsJob) Process(ctx context.Context) error {
	stats := j.Source.CacheStats()
	skill := j.Source.Skill()

	metrics.SkillCacheEntries.WithLabelValues(skill).Set(float64(stats.Size))
	metrics.SkillCacheHits.WithLabelValues(skill).Set(float64(stats.Hits))
	metrics.SkillCacheMisses.WithLabelValues(skill).Set(float64(stats.Misses))

	logger.FromContext(ctx).Debug(LogMsgCacheStatsFetch,
		"skill", skill, "size", stats.Size, "hits", stats.Hits, "misses", stats.Misses)
	return nil
}
