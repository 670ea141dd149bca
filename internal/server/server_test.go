package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/database/memory"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/sse"
)

const testAPIKey = "test-key"

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	svc := mining.NewService(memory.NewStore(), nil, mining.DefaultConfig())
	return NewRouter(Options{APIKey: testAPIKey, ServiceName: "skillforge"}, memory.NewStore(), svc, hub)
}

func call(router http.Handler, method, path, body string, withKey bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_MiningFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := call(router, http.MethodPost, "/api/v1/mining/players/steve/load", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"level":1`)

	rec = call(router, http.MethodPost, "/api/v1/mining/break", `{"player_id":"steve","block_id":"Ore_Copper_3"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"xp_granted":50`)

	rec = call(router, http.MethodPost, "/api/v1/admin/mining/add-levels", `{"player_id":"steve","levels":2}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"level":3`)

	rec = call(router, http.MethodGet, "/api/v1/mining/players/steve", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_xp":433`)

	rec = call(router, http.MethodGet, "/api/v1/mining/leaderboard", "", true)
	assert.Contains(t, rec.Body.String(), `"player_id":"steve"`)

	rec = call(router, http.MethodDelete, "/api/v1/mining/players/steve", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(router, http.MethodGet, "/api/v1/mining/players/steve", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router := newTestRouter(t)

	rec := call(router, http.MethodGet, "/api/v1/mining/catalog", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(router, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(router, http.MethodGet, "/readyz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequestID(t *testing.T) {
	router := newTestRouter(t)

	rec := call(router, http.MethodGet, "/api/v1/mining/curve?levels=2", "", true)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mining/catalog", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set(HeaderRequestID, "host-42")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "host-42", rec.Header().Get(HeaderRequestID))
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)
	call(router, http.MethodGet, "/api/v1/mining/players/nobody", "", true)

	rec := call(router, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `path="/api/v1/mining/players/{playerID}`)
	assert.NotContains(t, rec.Body.String(), "nobody")
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}

func TestServer_StartStop(t *testing.T) {
	srv := NewServer(Options{Port: 0, APIKey: testAPIKey}, memory.NewStore(), mining.NewService(memory.NewStore(), nil, mining.DefaultConfig()), sse.NewHub())

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	require.NoError(t, srv.Stop(context.Background()))
	assert.ErrorIs(t, <-done, http.ErrServerClosed)
}

func TestRouter_EventWebSocket(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/events/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	header := http.Header{}
	header.Set(HeaderAPIKey, testAPIKey)
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	resp.Body.Close()
	defer conn.Close()

	var evt sse.Event
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, sse.EventTypeConnected, evt.Type)
}
