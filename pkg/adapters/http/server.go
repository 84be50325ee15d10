package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBody caps request bodies; parameter values are short.
const maxBody = 64 << 10

// AssignResponse reports the outcome of a single assignment.
type AssignResponse struct {
	Outcome   domain.Outcome `json:"outcome"`
	Parameter *registry.Info `json:"parameter,omitempty"`
}

// Server exposes a registry over HTTP. The registry itself is not safe for
// concurrent use, so every request holds mu while touching it.
type Server struct {
	mu       sync.Mutex
	registry *registry.Registry
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics serves the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets a structured logger for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server for the registry. Once it serves requests, the
// registry must only be read through the Server.
func NewServer(reg *registry.Registry, opts ...Option) *Server {
	s := &Server{registry: reg, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates a new HTTP handler for the registry.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	return NewServer(reg, opts...).Routes()
}

// Routes returns the router for the Server.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/params", s.List)
	r.Post("/params", s.Apply)
	r.Get("/params/{name}", s.Get)
	r.Put("/params/{name}", s.Set)
	r.Get("/snapshot", s.Snapshot)

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// List handles GET /params.
func (s *Server) List(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	params := s.registry.Infos()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, params)
}

// Get handles GET /params/{name}.
func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	p, ok := s.registry.Info(name)
	s.mu.Unlock()

	if !ok {
		s.writeError(w, http.StatusNotFound, domain.ErrUnknownParameter.Error()+": "+name)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// Set handles PUT /params/{name}. The body is the raw assignment text; one
// trailing newline is dropped so `echo 0.8 | curl -T -` works.
func (s *Server) Set(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		s.writeBodyError(w, err)
		return
	}
	raw := strings.TrimSuffix(strings.TrimSuffix(string(body), "\n"), "\r")

	s.mu.Lock()
	outcome := s.registry.Set(name, raw)
	info, ok := s.registry.Info(name)
	s.mu.Unlock()

	var p *registry.Info
	if ok {
		p = &info
	}

	status := http.StatusOK
	switch outcome {
	case domain.OutcomeUnknown:
		status = http.StatusNotFound
	case domain.OutcomeRejected, domain.OutcomeUnparsable:
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, AssignResponse{Outcome: outcome, Parameter: p})
}

// Apply handles POST /params with a JSON array of "name=value" strings.
func (s *Server) Apply(w http.ResponseWriter, r *http.Request) {
	var args []string
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&args); err != nil {
		s.writeBodyError(w, err)
		return
	}

	s.mu.Lock()
	sum := s.registry.Apply(args)
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, sum)
}

// Snapshot handles GET /snapshot.
func (s *Server) Snapshot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Values())
}

// Values captures the current values under the server's lock. It is safe to
// call while requests are in flight.
func (s *Server) Values() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Snapshot()
}

// writeJSON encodes v before sending the status, so an encoding failure becomes
// a 500 instead of an empty success.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "err", err)
		data, status = []byte(`{"error":"failed to encode response"}`), http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func (s *Server) writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	s.writeError(w, http.StatusBadRequest, "Invalid request body")
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
