package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
)

// StreamEvent is one message from the API's event stream. The payload is
// left raw so each handler decodes the shape it expects.
type StreamEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	PlayerID  string          `json:"player_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// StreamHandler handles one event type
type StreamHandler func(event StreamEvent) error

// EventStream follows the API's WebSocket event endpoint and reconnects with
// exponential backoff until stopped.
type EventStream struct {
	url      string
	header   http.Header
	dialer   *websocket.Dialer
	handlers map[string][]StreamHandler

	mu        sync.RWMutex
	connected bool

	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewEventStream creates a stream for the given event types. An empty list
// subscribes to everything.
func NewEventStream(baseURL, apiKey string, eventTypes []string) *EventStream {
	header := http.Header{}
	if apiKey != "" {
		header.Set(apiclient.HeaderAPIKey, apiKey)
	}
	return &EventStream{
		url:      streamURL(baseURL, eventTypes),
		header:   header,
		dialer:   &websocket.Dialer{HandshakeTimeout: streamHandshakeTimeout},
		handlers: make(map[string][]StreamHandler),
		shutdown: make(chan struct{}),
	}
}

// streamURL turns the API base URL into the ws(s) endpoint with filters
func streamURL(baseURL string, eventTypes []string) string {
	u := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	u += streamPath
	if len(eventTypes) > 0 {
		u += "?types=" + url.QueryEscape(strings.Join(eventTypes, ","))
	}
	return u
}

// OnEvent registers a handler for an event type
func (s *EventStream) OnEvent(eventType string, handler StreamHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[eventType] = append(s.handlers[eventType], handler)
}

// Start connects in the background
func (s *EventStream) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop closes the connection and waits for the stream to finish. Safe to call twice.
func (s *EventStream) Stop() {
	s.stopOnce.Do(func() { close(s.shutdown) })
	s.wg.Wait()
}

// IsConnected reports whether a connection is currently open
func (s *EventStream) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *EventStream) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

func (s *EventStream) run(ctx context.Context) {
	defer s.wg.Done()
	defer slog.Info(streamLogMsgStopped)

	backoff := streamInitialBackoff
	failures := 0

	for {
		if s.stopped(ctx) {
			return
		}

		start := time.Now()
		err := s.session(ctx)
		s.setConnected(false)
		if s.stopped(ctx) {
			return
		}

		// A session that stayed up for a while earns a fresh backoff
		if time.Since(start) > streamMaxBackoff {
			backoff = streamInitialBackoff
			failures = 0
		}
		failures++
		slog.Warn(streamLogMsgDisconnected, "error", err, "backoff", backoff, "consecutive_failures", failures)

		select {
		case <-time.After(backoff):
		case <-s.shutdown:
			return
		case <-ctx.Done():
			return
		}
		backoff *= 2
		if backoff > streamMaxBackoff {
			backoff = streamMaxBackoff
		}
	}
}

func (s *EventStream) stopped(ctx context.Context) bool {
	select {
	case <-s.shutdown:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// session holds one connection until it fails or the stream stops
func (s *EventStream) session(ctx context.Context) error {
	conn, resp, err := s.dialer.DialContext(ctx, s.url, s.header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return fmt.Errorf("dial failed with status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("dial failed: %w", err)
	}

	// Closing the connection is the only way to interrupt a blocking read
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-s.shutdown:
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(streamWriteWait))
		conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(streamWriteWait))
	})

	s.setConnected(true)
	slog.Info(streamLogMsgConnected, "url", s.url)

	for {
		var evt StreamEvent
		if err := conn.ReadJSON(&evt); err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		s.dispatch(evt)
	}
}

func (s *EventStream) dispatch(evt StreamEvent) {
	switch evt.Type {
	case "", streamEventConnected, streamEventKeepalive:
		return
	}

	s.mu.RLock()
	handlers := s.handlers[evt.Type]
	s.mu.RUnlock()

	slog.Debug(streamLogMsgEventReceived, "event_type", evt.Type, "id", evt.ID)
	for _, handler := range handlers {
		if err := handler(evt); err != nil {
			slog.Error(streamLogMsgHandlerError, "event_type", evt.Type, "error", err)
		}
	}
}
