package worker

import "time"

// DefaultWorkers is used when a pool is created with no workers
const DefaultWorkers = 1

// DefaultCacheStatsInterval is how often cache gauges are refreshed
const DefaultCacheStatsInterval = 30 * time.Second

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgCacheStatsFetch = "Cache stats refreshed"
)
