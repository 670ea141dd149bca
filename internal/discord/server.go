package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	healthCheckTimeout   = 3 * time.Second
	httpShutdownTimeout  = 5 * time.Second
	defaultAnnounceColor = 0x00FF00
)

// HTTPServer serves the bot's health check and the internal announce hook
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		bot: bot,
	}

	mux.HandleFunc("/healthz", srv.HandleHealth)
	mux.HandleFunc("/admin/announce", srv.handleAnnounce)
	return srv
}

// Start starts the HTTP server
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord internal HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord internal HTTP server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord internal HTTP server shutdown failed", "error", err)
	}
}

// AnnounceRequest is the body of POST /admin/announce
type AnnounceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

func (s *HTTPServer) handleAnnounce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnnounceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Color == 0 {
		req.Color = defaultAnnounceColor
	}

	embed := &discordgo.MessageEmbed{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "System Update",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if err := s.bot.SendNotification(embed); err != nil {
		slog.Error("Failed to send announcement", "error", err)
		http.Error(w, "Failed to send to Discord", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
