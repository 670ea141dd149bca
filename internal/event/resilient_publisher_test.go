package event

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu           sync.Mutex
	calls        []Event
	failCount    int32
	shouldFail   func(attempt int) bool
	publishDelay time.Duration
}

func (m *mockBus) Publish(ctx context.Context, evt Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, evt)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.publishDelay > 0 {
		time.Sleep(m.publishDelay)
	}

	if m.shouldFail != nil && m.shouldFail(callCount) {
		atomic.AddInt32(&m.failCount, 1)
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) GetCalls() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event{}, m.calls...)
}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		var entry DeadLetterEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, 3, 100*time.Millisecond, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	evt := NewSkillXPGainedEvent("p1", domain.SkillMining, "Ore_Copper_1", 50, 50)
	rp.PublishWithRetry(context.Background(), evt)

	// first attempt is synchronous
	assert.Equal(t, 1, bus.CallCount())
	assert.Equal(t, SkillXPGained, bus.GetCalls()[0].Type)
	assert.Empty(t, readDeadLetters(t, tmpFile))
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return attempt == 1 },
	}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewSkillLevelUpEvent("p1", domain.SkillMining, 1, 2))

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, bus.CallCount(), "no further attempts after a success")
	assert.Empty(t, readDeadLetters(t, tmpFile))
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return true },
	}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, tmpFile)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), Event{
		Type:    Type("test_event"),
		Payload: map[string]interface{}{"id": "456"},
	})

	// initial + 3 retries at 20ms, 40ms, 80ms
	assert.Eventually(t, func() bool { return bus.CallCount() == 4 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, tmpFile)
	require.Len(t, entries, 1)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, Type("test_event"), entries[0].Event.Type)
	assert.Equal(t, 4, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
}

func TestResilientPublisher_QueueOverflow(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return true },
	}

	// no worker: the queue only fills
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		shutdown:   make(chan struct{}),
	}
	dl, err := NewDeadLetterWriter(tmpFile)
	require.NoError(t, err)
	rp.deadLetter = dl

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), Event{
			Type:    Type("overflow_event"),
			Payload: map[string]interface{}{"id": i},
		})
	}

	assert.Len(t, readDeadLetters(t, tmpFile), 3)
	assert.Len(t, rp.retryQueue, 2)
	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_GracefulShutdown(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	var failures int32
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			return atomic.AddInt32(&failures, 1) <= 2
		},
	}

	// long delay keeps both failed events queued until shutdown drains them
	rp, err := NewResilientPublisher(bus, 5, time.Hour, tmpFile)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), Event{
			Type:    Type("shutdown_test"),
			Payload: map[string]interface{}{"id": i},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rp.Shutdown(ctx))
	assert.Equal(t, 5, bus.CallCount(), "3 initial attempts plus a final attempt for each queued event")
	assert.Empty(t, readDeadLetters(t, tmpFile))
}

func TestResilientPublisher_ShutdownIsIdempotent(t *testing.T) {
	rp, err := NewResilientPublisher(&mockBus{}, 1, time.Millisecond, t.TempDir()+"/dl.jsonl")
	require.NoError(t, err)

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.NotPanics(t, func() { _ = rp.Shutdown(context.Background()) })
}

func TestResilientPublisher_ExponentialBackoff(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	var attemptMu sync.Mutex
	attempts := make([]time.Time, 0, 5)
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			attemptMu.Lock()
			attempts = append(attempts, time.Now())
			attemptMu.Unlock()
			return attempt < 4
		},
	}

	baseDelay := 100 * time.Millisecond
	rp, err := NewResilientPublisher(bus, 5, baseDelay, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), Event{Type: Type("backoff_test")})

	assert.Eventually(t, func() bool { return bus.CallCount() == 4 }, 2*time.Second, 10*time.Millisecond)

	attemptMu.Lock()
	defer attemptMu.Unlock()
	require.Len(t, attempts, 4)

	delay1 := attempts[1].Sub(attempts[0])
	delay2 := attempts[2].Sub(attempts[1])
	delay3 := attempts[3].Sub(attempts[2])

	assert.InDelta(t, baseDelay.Milliseconds(), delay1.Milliseconds(), 60)
	assert.InDelta(t, (2 * baseDelay).Milliseconds(), delay2.Milliseconds(), 60)
	assert.InDelta(t, (4 * baseDelay).Milliseconds(), delay3.Milliseconds(), 60)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	bus := &mockBus{}
	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	const numGoroutines = 10
	const eventsPerGoroutine = 5

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				rp.PublishWithRetry(context.Background(), Event{
					Type:    Type("concurrent_test"),
					Payload: map[string]interface{}{"goroutine": id, "event": j},
				})
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*eventsPerGoroutine, bus.CallCount())
}

func TestResilientPublisher_NoGoroutineLeak(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	rp, err := NewResilientPublisher(&mockBus{}, 3, 10*time.Millisecond, t.TempDir()+"/dl.jsonl")
	require.NoError(t, err)
	rp.PublishWithRetry(context.Background(), Event{Type: Type("leak_test")})
	require.NoError(t, rp.Shutdown(context.Background()))

	checker.Check(0)
}
