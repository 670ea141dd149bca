package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SkillForge_Go/internal/logger"
)

// retryEntry is an event waiting for another publish attempt.
// attempt counts the publish attempts already made.
type retryEntry struct {
	event     Event
	attempt   int
	lastErr   error
	nextRetry time.Time
}

// ResilientPublisher wraps a Bus with retries and a dead-letter file.
// The first attempt runs on the caller's goroutine; failures are retried in the
// background with exponential backoff and dead-lettered once retries run out.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes the event, queuing it for retry on failure.
// It never blocks on the retry path and never returns an error.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", evt.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:     evt,
		attempt:   1,
		lastErr:   err,
		nextRetry: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
	})
}

// Publish lets the publisher stand in for a Bus
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-p.shutdown:
		logger.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case entry := <-p.retryQueue:
			if wait := time.Until(entry.nextRetry); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-p.shutdown:
					timer.Stop()
				}
			}
			p.attempt(entry)
		}
	}
}

func (p *ResilientPublisher) attempt(entry retryEntry) {
	err := p.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempt)
		return
	}

	entry.lastErr = err
	if entry.attempt >= p.maxRetries {
		entry.attempt++
		logger.Error(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempt)
		p.writeDeadLetter(entry)
		return
	}

	entry.attempt++
	entry.nextRetry = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempt))
	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempt,
		"error", err)

	select {
	case <-p.shutdown:
		p.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

// drain gives every queued event one final attempt during shutdown
func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				entry.attempt++
				entry.lastErr = err
				p.writeDeadLetter(entry)
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if err := p.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after one final attempt at every queued event.
// Events still queued when ctx expires are left to the dead-letter writer.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
