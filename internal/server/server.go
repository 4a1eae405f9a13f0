package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BetEngine_Go/internal/handler"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/metrics"
	"github.com/osse101/BetEngine_Go/internal/prediction"
	"github.com/osse101/BetEngine_Go/internal/sse"
	"github.com/osse101/BetEngine_Go/internal/stats"
	"github.com/osse101/BetEngine_Go/internal/tournament"
	"github.com/osse101/BetEngine_Go/internal/user"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	Version        string
}

// Dependencies are the services the routes call into
type Dependencies struct {
	Store       handler.HealthChecker
	Events      handler.EventSource
	Predictions prediction.Service
	Ledger      handler.BalanceReader
	Tournaments tournament.Service
	Users       user.Service
	Stats       stats.Service
	Leaderboard handler.LeaderboardSource
	Hub         *sse.Hub
}

// Server wraps the HTTP server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Middleware executes in the order added, outermost first.
func NewRouter(cfg Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, NewRateLimiter(cfg.RateLimit, RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	predictionHandler := handler.NewPredictionHandler(deps.Predictions, deps.Users)
	tournamentHandler := handler.NewTournamentHandler(deps.Tournaments, deps.Users)
	authHandler := handler.NewAuthHandler(deps.Users, deps.Ledger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", handler.HandleGetEvents(deps.Events))

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/", predictionHandler.HandleList)
			r.Post("/", predictionHandler.HandleSubmit)
		})

		r.Get("/points", handler.HandleGetPoints(deps.Ledger))

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.HandleList)
			r.Post("/reset", tournamentHandler.HandleReset)
			r.Post("/{id}/join", tournamentHandler.HandleJoin)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", authHandler.HandleSignIn)
			r.Post("/signout", authHandler.HandleSignOut)
		})
		r.Get("/profile", authHandler.HandleProfile)

		r.Get("/stats", handler.HandleGetStats(deps.Stats, deps.Users))
		r.Get("/leaderboard", handler.HandleGetLeaderboard(deps.Leaderboard))

		if deps.Hub != nil {
			r.Get("/stream", sse.Handler(deps.Hub))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
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

// Flush keeps the SSE stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
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

// Start starts the server
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
