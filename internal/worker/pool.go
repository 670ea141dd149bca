package worker

import (
	"context"
	"sync"

	"github.com/osse101/SkillForge_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			// A failing job is logged and the worker keeps going
			if err := job.Process(p.ctx); err != nil {
				logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Enqueue adds a job to the queue, blocking while it is full.
// Returns false once the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// TryEnqueue adds a job without blocking. Returns false if the queue is full
// or the pool is stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}
