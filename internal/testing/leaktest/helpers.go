// Package leaktest checks that tests do not leave goroutines running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settlePoll    = 10 * time.Millisecond
	settleTimeout = 500 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline and compares against it later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settlePoll)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Baseline returns the goroutine count recorded at creation
func (g *GoroutineChecker) Baseline() int {
	return g.before
}

// Check fails the test if more than tolerance goroutines are still running
// once the count has had time to settle.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if n := settle(target, timeout); n > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", n, target)
	}
}

// settle polls until the goroutine count is at most target or timeout passes,
// and returns the last count seen.
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(settlePoll)
	}
}
