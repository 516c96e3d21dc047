// Package httpapi serves the advisor over a JSON HTTP API for the display layer.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/simaogato/wealthflow-advisor/internal/adapter/payload"
	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
)

const maxBodyBytes = 1 << 16

// RequestRecorder receives one observation per handled request
type RequestRecorder interface {
	RecordRequest(method, code string, elapsed time.Duration)
}

// Config holds server dependencies
type Config struct {
	Addr           string
	Log            zerolog.Logger
	Advisor        *advisor.AdvisorService
	Assets         []domain.AssetInfo
	CORSOrigins    []string
	Recorder       RequestRecorder // optional
	MetricsHandler http.Handler    // optional, served on /metrics
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	advisor  *advisor.AdvisorService
	assets   []domain.AssetInfo
	recorder RequestRecorder
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "http").Logger(),
		advisor:  cfg.Advisor,
		assets:   cfg.Assets,
		recorder: cfg.Recorder,
	}

	s.setupMiddleware(cfg.CORSOrigins)
	s.setupRoutes(cfg.MetricsHandler)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes(metricsHandler http.Handler) {
	s.router.Get("/healthz", s.handleHealth)
	if metricsHandler != nil {
		s.router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/assets", s.handleAssets)
		r.Post("/recommendations", s.handleRecommend)
		r.Post("/projections", s.handleProject)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, payload.EncodeAssets(s.assets))
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeBody(w, r)
	if !ok {
		return
	}

	input, err := payload.DecodeRecommend(doc)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	result, err := s.advisor.Recommend(r.Context(), input.Capital, input.Risk)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	summary, err := s.advisor.Summarize(result)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, payload.EncodeAdvisory(result, summary))
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeBody(w, r)
	if !ok {
		return
	}

	input, err := payload.DecodeProject(doc)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	out, err := s.advisor.Project(r.Context(), input)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, payload.EncodeProjection(out))
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	var doc map[string]interface{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&doc); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	if doc == nil {
		s.writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return doc, true
}

// loggingMiddleware logs HTTP requests and records them
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		if s.recorder != nil {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			s.recorder.RecordRequest(r.Method+" "+route, strconv.Itoa(status), elapsed)
		}

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", elapsed).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// Helper methods

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.Error().Err(err).Msg("Request failed")
	s.writeError(w, http.StatusInternalServerError, "internal error")
}
