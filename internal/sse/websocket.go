package sse

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/SkillForge_Go/internal/logger"
)

// WebSocket timings
const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 2 * KeepaliveInterval
	wsReadLimit  = 512
	wsBufferSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  wsBufferSize,
	WriteBufferSize: wsBufferSize,
	// Browser overlays run on other origins; access is guarded by the API key middleware
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocketHandler streams the same events as Handler over a WebSocket, one
// JSON Event per text frame. Filters are the same query parameters.
// Incoming frames are ignored; they only keep the connection alive.
func WebSocketHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		eventTypes, playerID := parseFilters(r)
		client := hub.Register(eventTypes, playerID)
		if client == nil {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}
		defer hub.Unregister(client.ID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied with an HTTP error
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", "websocket",
			"filters", eventTypes,
			"player_id", playerID)
		defer log.Info(LogMsgClientDisconnected, "client_id", client.ID)

		// Read pump: detects the peer going away and answers pings
		closed := make(chan struct{})
		conn.SetReadLimit(wsReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
						log.Warn(LogMsgWriteError, "error", err)
					}
					return
				}
			}
		}()

		write := func(evt Event) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(evt); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
				"player_id": playerID,
			},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
						time.Now().Add(wsWriteWait))
					return
				}
				if !write(evt) {
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
					return
				}
			}
		}
	}
}
