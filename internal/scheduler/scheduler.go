// Package scheduler runs jobs at fixed intervals on a worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/worker"
)

// LogMsgJobSkipped is logged when a tick finds the worker queue full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// queue full is skipped rather than blocking the next one.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It does not stop the worker pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
