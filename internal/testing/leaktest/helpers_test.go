package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures so the checker itself can be tested
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() { defer wg.Done() }()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	go func() { <-stop }()

	checker.Check(0)
	close(stop)

	assert.True(t, rec.failed)
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	checker.Check(1)
	assert.False(t, rec.failed)
}

func TestWaitForGoroutines(t *testing.T) {
	baseline := runtime.NumGoroutine()

	done := make(chan struct{})
	go func() {
		time.Sleep(30 * time.Millisecond)
		close(done)
	}()

	WaitForGoroutines(t, baseline, time.Second)
	<-done
}
