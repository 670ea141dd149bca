package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SkillForge_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections. Clients may narrow the
// stream with ?types=a,b and ?player=<id>.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		eventTypes, playerID := parseFilters(r)

		client := hub.Register(eventTypes, playerID)
		if client == nil {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"player_id", playerID)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		write := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
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

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub stopped
					return
				}
				if !write(evt) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

// parseFilters reads the ?types and ?player stream filters
func parseFilters(r *http.Request) ([]string, string) {
	var eventTypes []string
	if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
		for _, t := range strings.Split(filterParam, ",") {
			if t = strings.TrimSpace(t); t != "" {
				eventTypes = append(eventTypes, t)
			}
		}
	}
	return eventTypes, r.URL.Query().Get(QueryParamPlayer)
}
