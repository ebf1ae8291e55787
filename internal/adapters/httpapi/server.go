// Package httpapi serves the live explorer page and the JSON endpoints it polls.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"patternmap/internal/adapters/htmlview"
	"patternmap/internal/application"
	"patternmap/internal/application/commands"
	"patternmap/internal/ports"
)

// DefaultAddr is used when no listen address is configured
const DefaultAddr = "127.0.0.1:8090"

// Server serves one catalog. Requests share the catalog and build their own
// engine, so no view state outlives a request.
type Server struct {
	cat      *application.Catalog
	renderer *htmlview.Renderer
	opts     ports.PageOptions
	logger   *slog.Logger
	server   *http.Server
}

// NewServer creates a server for cat listening on addr
func NewServer(cat *application.Catalog, renderer *htmlview.Renderer, opts ports.PageOptions, addr string, logger *slog.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		cat:      cat,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
	return s
}

// Handler returns the routed handler with logging and recovery applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/health", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("GET /api/layers", s.handleLayers)
	mux.HandleFunc("GET /api/patterns", s.handlePatterns)
	mux.HandleFunc("GET /api/patterns/{id}", s.handlePattern)
	mux.HandleFunc("GET /api/patterns/{id}/detail", s.handleDetail)

	return s.withLogging(s.withRecovery(mux))
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start runs the HTTP server (blocking)
func (s *Server) Start() error {
	s.logger.Info("server_starting", "addr", s.server.Addr, "patterns", len(s.cat.Data.Patterns))
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("server_stopping")
	return s.server.Shutdown(ctx)
}

// viewFromQuery rebuilds the view named by select, layer and q parameters
func (s *Server) viewFromQuery(ctx context.Context, r *http.Request) (*commands.ViewResult, error) {
	q := r.URL.Query()
	var layers []string
	for _, v := range q["layer"] {
		layers = append(layers, application.SplitList(v)...)
	}

	start := time.Now()
	res, err := commands.NewViewCommand(s.cat, q.Get("select"), layers, q.Get("q")).Execute(ctx)
	ViewSeconds.Observe(time.Since(start).Seconds())
	return res, err
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	res, err := s.viewFromQuery(r.Context(), r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := s.opts
	if opts.APIBase == "" {
		opts.APIBase = "//" + r.Host
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, res.Engine, opts); err != nil {
		s.logger.Error("render_failed", "error", err)
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	res, err := s.viewFromQuery(r.Context(), r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.renderer.ViewWithDetail(res.Engine)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type layerResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

func (s *Server) handleLayers(w http.ResponseWriter, r *http.Request) {
	entries, err := commands.NewListLayersCommand(s.cat).Execute(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := make([]layerResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, layerResponse{Key: e.Key, Name: e.Name, Color: e.Color, Count: e.Count})
	}
	writeJSON(w, http.StatusOK, resp)
}

type patternResponse struct {
	ShortID string   `json:"short_id"`
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Layer   string   `json:"layer"`
	Aliases []string `json:"aliases,omitempty"`
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	var layers []string
	for _, v := range r.URL.Query()["layer"] {
		layers = append(layers, application.SplitList(v)...)
	}

	patterns, err := commands.NewListPatternsCommand(s.cat, layers).Execute(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := make([]patternResponse, 0, len(patterns))
	for _, p := range patterns {
		resp = append(resp, patternResponse{ShortID: p.ShortID, ID: p.ID, Label: p.Label, Layer: p.Layer, Aliases: p.Aliases})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	d, err := commands.NewShowPatternCommand(s.cat, r.PathValue("id")).Execute(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	d, err := commands.NewShowPatternCommand(s.cat, r.PathValue("id")).Execute(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderDetail(w, d); err != nil {
		s.logger.Error("render_failed", "error", err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request_failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Middleware: Panic Recovery
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic_recovered", "error", err, "path", r.URL.Path)
				http.Error(w, `{"error":"internal_server_error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Middleware: Request Logging and Metrics
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		RequestsTotal.WithLabelValues(routeLabel(r.URL.Path), strconv.Itoa(ww.status)).Inc()
		s.logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// routeLabel folds pattern ids out of the path to keep metric cardinality bounded
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/patterns/") && strings.HasSuffix(path, "/detail"):
		return "/api/patterns/{id}/detail"
	case strings.HasPrefix(path, "/api/patterns/"):
		return "/api/patterns/{id}"
	case path == "/", path == "/api/view", path == "/api/layers", path == "/api/patterns", path == "/v1/health", path == "/metrics":
		return path
	default:
		return "other"
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
