package utils

import (
	"math/rand"
	"sync"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededFloat returns a goroutine-safe [0.0, 1.0) source with a fixed seed.
// Useful for reproducing bonus-drop sequences in development.
func SeededFloat(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	var mu sync.Mutex
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}
