package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SkillForge_Go/internal/handler"
	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/metrics"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/sse"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
}

// Server is the HTTP front of the skill service
type Server struct {
	httpServer *http.Server
}

// NewServer wires the routes for the mining service, readiness checks against
// store and the SSE stream of hub.
func NewServer(opts Options, store handler.Pinger, miningSvc mining.Service, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, store, miningSvc, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Exposed for tests.
func NewRouter(opts Options, store handler.Pinger, miningSvc mining.Service, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Middleware runs outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Unversioned operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(opts.ServiceName))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	miningHandler := handler.NewMiningHandler(miningSvc)
	adminHandler := handler.NewAdminHandler(miningSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", sse.Handler(hub))
		r.Get("/events/ws", sse.WebSocketHandler(hub))

		r.Route("/mining", func(r chi.Router) {
			r.Post("/break", miningHandler.HandleBreak)
			r.Get("/leaderboard", miningHandler.HandleLeaderboard)
			r.Get("/catalog", miningHandler.HandleCatalog)
			r.Get("/curve", miningHandler.HandleCurve)

			r.Route("/players/{playerID}", func(r chi.Router) {
				r.Get("/", miningHandler.HandleGetPlayer)
				r.Delete("/", miningHandler.HandleRemovePlayer)
				r.Post("/load", miningHandler.HandleLoadPlayer)
				r.Post("/unload", miningHandler.HandleUnloadPlayer)
			})
		})

		r.Route("/admin/mining", func(r chi.Router) {
			r.Post("/add-levels", adminHandler.HandleAddLevels)
			r.Post("/set-xp", adminHandler.HandleSetXP)
			r.Post("/reset", adminHandler.HandleReset)
			r.Get("/cache/stats", miningHandler.HandleCacheStats)
		})
	})

	return r
}

// responseWriter captures the status code for request logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps SSE streaming working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets WebSocket upgrades pass through the wrapper
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return h.Hijack()
}

// loggingMiddleware tags the request with an id (the caller's X-Request-ID
// when sent) and logs start and completion with secrets redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slices.ContainsFunc(quietPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
