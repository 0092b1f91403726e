// Package api exposes the segmentation engine over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/segmental-dev/segmental/internal/dataset"
	"github.com/segmental-dev/segmental/internal/rfm"
)

// Server wraps a chi router with the RFM endpoints.
type Server struct {
	store  *dataset.Store
	scorer *rfm.Scorer
	logger *slog.Logger
	router *chi.Mux
}

// NewServer creates a Server. The store backs the read-only segment
// endpoint; the scorer fixes the recency reference date for all requests.
func NewServer(store *dataset.Store, scorer *rfm.Scorer, logger *slog.Logger) *Server {
	s := &Server{
		store:  store,
		scorer: scorer,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(s.requestLog)
	s.routes(r)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Route("/rfm", func(r chi.Router) {
			r.Post("/scores", s.handleScores)
			r.Post("/summary", s.handleSummary)
			r.Get("/segments", s.handleSegments)
		})
	})
}

// requestLog logs each request with its latency.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
