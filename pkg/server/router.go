package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/shortpath/pkg/buildinfo"
	"github.com/matzehuels/shortpath/pkg/graph"
	"github.com/matzehuels/shortpath/pkg/observability"
	"github.com/matzehuels/shortpath/pkg/pipeline"
)

// DefaultMaxBodyBytes caps request bodies when RouterDependencies leaves
// MaxBodyBytes unset.
const DefaultMaxBodyBytes = 1 << 20

// DefaultMaxVertices caps the vertex count of request graphs when
// RouterDependencies leaves MaxVertices unset.
const DefaultMaxVertices = 50 * graph.SoftMaxVertices

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Runner       *pipeline.Runner
	Health       HealthService
	MaxBodyBytes int64
	MaxVertices  int
}

// NewRouter wires the HTTP routes exposed by the API.
func NewRouter(logger *log.Logger, deps RouterDependencies) http.Handler {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if deps.MaxVertices <= 0 {
		deps.MaxVertices = DefaultMaxVertices
	}
	h := &handlers{
		logger:       logger,
		runner:       deps.Runner,
		maxBodyBytes: deps.MaxBodyBytes,
		maxVertices:  deps.MaxVertices,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		payload := map[string]any{
			"status": "ok",
		}

		if deps.Health != nil {
			if err := deps.Health.Probe(ctx); err != nil {
				logger.Error("health probe failed", "error", err)
				status = http.StatusServiceUnavailable
				payload["status"] = "degraded"
				payload["error"] = err.Error()
			}
		}

		respondJSON(w, status, payload)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, buildinfo.Current())
		})
		r.Post("/shortest-paths", h.handleShortestPaths)
		r.Post("/render", h.handleRender)
	})

	return r
}

func loggingMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			hooks := observability.HTTP()
			hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start)
			hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, duration)
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"request_id", middleware.GetReqID(r.Context()),
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}
