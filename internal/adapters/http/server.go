// Package http exposes the union pipeline over HTTP: a single union
// endpoint plus health and metrics, suitable for running the tool as a
// small service.
package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dylo101/DFA-Union/internal/logging"
	"github.com/dylo101/DFA-Union/internal/union"
	"github.com/dylo101/DFA-Union/internal/validator"
	"github.com/dylo101/DFA-Union/pkg/automaton"
	"github.com/dylo101/DFA-Union/pkg/ports"
)

// UnionRequest carries both input documents in their wire form.
type UnionRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

// UnionResponse carries the constructed union and its validation report.
// Union is omitted when validation failed.
type UnionResponse struct {
	Valid  bool                `json:"valid"`
	Union  *automaton.Document `json:"union,omitempty"`
	Report automaton.Report    `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles union requests.
type Server struct {
	logger  *slog.Logger
	cache   ports.Cache
	metrics *metrics
}

type Option func(*Server)

// WithLogger sets the server logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithCache enables result caching. Only valid unions are cached; the key
// is derived from the canonical encoding of both input documents, so
// requests differing only in formatting share an entry.
func WithCache(c ports.Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// NewHandler creates the HTTP handler: POST /v1/union, GET /healthz and
// GET /metrics.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	registry := prometheus.NewRegistry()
	s.metrics = newMetrics(registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/union", s.handleUnion)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleUnion loads both documents from the request body, builds and
// validates their union, and answers 200 with the union document, 422 when
// the inputs produce a defective or impossible union, or 400 when the
// documents themselves are unreadable.
func (s *Server) handleUnion(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req UnionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.reject(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.A) == 0 || len(req.B) == 0 {
		s.reject(w, http.StatusBadRequest, `both "a" and "b" documents are required`)
		return
	}

	docA, err := automaton.DecodeDocument(req.A, automaton.FormatJSON)
	if err != nil {
		s.reject(w, http.StatusBadRequest, fmt.Sprintf("document a: %v", err))
		return
	}
	docB, err := automaton.DecodeDocument(req.B, automaton.FormatJSON)
	if err != nil {
		s.reject(w, http.StatusBadRequest, fmt.Sprintf("document b: %v", err))
		return
	}

	key := cacheKey(docA, docB)
	if payload, ok := s.cached(r, key); ok {
		s.metrics.cacheHits.Inc()
		s.metrics.requests.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, payload)
		return
	}

	p, err := union.Build(docA.Automaton(), docB.Automaton())
	if err != nil {
		s.metrics.requests.WithLabelValues("unprocessable").Inc()
		s.logger.Info("union construction failed", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, mustJSON(errorResponse{Error: err.Error()}))
		return
	}
	rep := validator.Validate(p)
	s.metrics.buildSeconds.Observe(time.Since(started).Seconds())

	resp := UnionResponse{Valid: rep.Valid(), Report: rep}
	status := http.StatusUnprocessableEntity
	if rep.Valid() {
		resp.Union = automaton.FromProduct(p)
		status = http.StatusOK
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		s.metrics.requests.WithLabelValues("error").Inc()
		s.reject(w, http.StatusInternalServerError, "encoding response")
		return
	}

	if rep.Valid() {
		s.metrics.requests.WithLabelValues("ok").Inc()
		s.store(r, key, payload)
	} else {
		s.metrics.requests.WithLabelValues("invalid").Inc()
	}
	writeJSON(w, status, payload)

	s.logger.Info("union request served",
		"states", len(p.States),
		"valid", rep.Valid(),
		"duration", time.Since(started),
	)
}

func (s *Server) cached(r *http.Request, key string) ([]byte, bool) {
	if s.cache == nil || key == "" {
		return nil, false
	}
	payload, err := s.cache.Get(r.Context(), key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn("union cache read failed", "error", err)
		}
		return nil, false
	}
	return payload, true
}

func (s *Server) store(r *http.Request, key string, payload []byte) {
	if s.cache == nil || key == "" {
		return
	}
	if err := s.cache.Set(r.Context(), key, payload); err != nil {
		s.logger.Warn("union cache write failed", "error", err)
	}
}

func (s *Server) reject(w http.ResponseWriter, status int, msg string) {
	s.metrics.requests.WithLabelValues(outcomeFor(status)).Inc()
	writeJSON(w, status, mustJSON(errorResponse{Error: msg}))
}

func outcomeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	}
	return "error"
}

// cacheKey hashes the canonical encoding of both documents.
func cacheKey(a, b *automaton.Document) string {
	ea, err := a.Encode(automaton.FormatJSON)
	if err != nil {
		return ""
	}
	eb, err := b.Encode(automaton.FormatJSON)
	if err != nil {
		return ""
	}
	h := sha256.New()
	h.Write(ea)
	h.Write([]byte{0})
	h.Write(eb)
	return hex.EncodeToString(h.Sum(nil))
}

func writeJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"error":"encoding failure"}`)
	}
	return data
}
