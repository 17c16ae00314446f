// Package api provides the HTTP server for the ppoom daemon. The UI
// and CLI both talk to it over the local REST surface under /api/v1.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ppoom-app/ppoom/internal/app/tracker"
	"github.com/ppoom-app/ppoom/internal/health"
	"github.com/ppoom-app/ppoom/internal/infra/sqlite"
)

// Version is the daemon version reported by /api/version.
const Version = "0.1.0"

// Server is the ppoom HTTP API server.
type Server struct {
	tracker        *tracker.Service
	db             *sqlite.DB
	checker        *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(t *tracker.Service, db *sqlite.DB, checker *health.Checker) *Server {
	return &Server{tracker: t, db: db, checker: checker}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ppoom is running",
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": Version,
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fatigue", s.handleFatigue)
		r.Get("/activities", s.handleListActivities)
		r.Post("/activities", s.handleAddActivity)
		r.Get("/missions", s.handleMissions)
		r.Post("/missions/{id}/complete", s.handleCompleteMission)
		r.Get("/character", s.handleCharacter)
		r.Get("/streak", s.handleStreak)
		r.Get("/trends", s.handleTrends)
		r.Get("/history", s.handleHistory)
		r.Get("/notifications", s.handleNotifications)
		r.Post("/notifications/{id}/read", s.handleNotificationRead)
		r.Post("/health-snapshot", s.handleHealthSnapshot)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	statuses := s.checker.Statuses()
	status := http.StatusOK
	if !s.checker.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]interface{}{
		"healthy": s.checker.IsHealthy(),
		"checks":  statuses,
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local UI.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
