package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
)

// Server exposes a ports.Solver over HTTP.
type Server struct {
	Solver ports.Solver
	Logger *slog.Logger
}

// Option configures the handler.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the logger used for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics serves the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(c *config) { c.gatherer = g }
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver ports.Solver, opts ...Option) http.Handler {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	server := &Server{Solver: solver, Logger: cfg.logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", server.ListPuzzles)
		r.Post("/{id}/solve", server.SolvePuzzle)
		r.Get("/{id}/plan", server.GetPlan)
		r.Get("/{id}/graph", server.GetGraph)
	})
	if cfg.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "statespace-http",
		"version": strings.TrimSpace(statespace.Version),
	})
}

// ListPuzzles handles the GET /puzzles request.
func (s *Server) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Solver.Puzzles())
}

// SolvePuzzle handles the POST /puzzles/{id}/solve request.
// Unreachable goals are not errors: the report carries the outcome.
func (s *Server) SolvePuzzle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := s.Solver.Solve(r.Context(), id)
	if err != nil {
		s.writeError(w, "Solve", err)
		return
	}
	s.writeJSON(w, http.StatusOK, withoutGraph(report))
}

// GetPlan handles the GET /puzzles/{id}/plan request.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	report, err := s.Solver.Plan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "Plan", err)
		return
	}
	s.writeJSON(w, http.StatusOK, withoutGraph(report))
}

// GetGraph handles the GET /puzzles/{id}/graph?format=mermaid|dot request.
// The puzzle is solved first when no plan is stored.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	format, err := graph.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := s.Solver.Solve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "Graph", err)
		return
	}

	text, err := graph.Render(report, format)
	if err != nil {
		s.writeError(w, "Graph", err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType()+"; charset=utf-8")
	fmt.Fprint(w, text)
}

// withoutGraph drops the exploration graph from JSON responses; it is served
// by the graph endpoint.
func withoutGraph(r *domain.Report) *domain.Report {
	c := *r
	c.Graph = nil
	return &c
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrPuzzleNotFound), errors.Is(err, domain.ErrPlanNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidProblem):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.Logger.Error(op+" failed", "err", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
