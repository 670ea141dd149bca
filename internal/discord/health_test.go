package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth_DegradedWhenDisconnected(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]string{"status": "ok"})
	})

	bot := &Bot{Session: ctx.Session, Client: ctx.APIClient}
	srv := NewHTTPServer("0", bot)

	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// The test session never opens a gateway connection
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "degraded", status.Status)
	assert.True(t, status.APIReachable)
	assert.False(t, status.Connected)
}

func TestHandleHealth_APIDown(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.APIClient.MaxRetries = 0
	ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	bot := &Bot{Session: ctx.Session, Client: ctx.APIClient}
	rec := httptest.NewRecorder()
	NewHTTPServer("0", bot).HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.False(t, status.APIReachable)
}

func TestHandleAnnounce_NoChannel(t *testing.T) {
	ctx := SetupTestContext(t)
	srv := NewHTTPServer("0", &Bot{Session: ctx.Session})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/announce", jsonBody(t, AnnounceRequest{Title: "Hi"}))
	srv.handleAnnounce(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleAnnounce_MethodNotAllowed(t *testing.T) {
	srv := NewHTTPServer("0", &Bot{})
	rec := httptest.NewRecorder()
	srv.handleAnnounce(rec, httptest.NewRequest(http.MethodGet, "/admin/announce", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
