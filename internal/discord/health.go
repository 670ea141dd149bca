package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandMu   sync.RWMutex
	lastCommandTime time.Time
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandMu.Lock()
	lastCommandTime = time.Now()
	lastCommandMu.Unlock()
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		apiReachable = h.bot.Client.Healthz(ctx) == nil
		cancel()
	}

	lastCommandMu.RLock()
	last := lastCommandTime
	lastCommandMu.RUnlock()

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  last,
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	// Headers are already sent; nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(health)
}
