package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shortpath/pkg/config"
	"github.com/matzehuels/shortpath/pkg/observability"
	"github.com/matzehuels/shortpath/pkg/pipeline"
)

const scenario = "4\n0,1,4\n0,2,1\n2,1,1\n1,3,1\n"

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, health HealthService) http.Handler {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewRouter(logger, RouterDependencies{
		Runner:       pipeline.NewRunner(nil, nil, logger),
		Health:       health,
		MaxBodyBytes: 256,
	})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t, CacheHealthService{Cache: stubPinger{}}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthzDegraded(t *testing.T) {
	health := CacheHealthService{Cache: stubPinger{err: errors.New("redis down")}}
	rec := do(t, newTestRouter(t, health), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","error":"redis down"}`, rec.Body.String())
}

func TestVersion(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/v1/version", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "version")
}

func TestShortestPaths(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/v1/shortest-paths?source=0", scenario)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp shortestPathsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 0, resp.Source)
	assert.Equal(t, 4, resp.VertexCount)
	assert.Equal(t, 4, resp.EdgeCount)
	assert.False(t, resp.Cached)
	require.Len(t, resp.Vertices, 4)

	v3 := resp.Vertices[3]
	require.NotNil(t, v3.Distance)
	assert.Equal(t, 3, *v3.Distance)
	require.NotNil(t, v3.Predecessor)
	assert.Equal(t, 1, *v3.Predecessor)
	assert.True(t, v3.Reachable)
	assert.Equal(t, []int{0, 2, 1, 3}, v3.Path)

	assert.Nil(t, resp.Vertices[0].Predecessor)
}

func TestShortestPathsUnreachable(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/v1/shortest-paths?source=0", "3\n0,1,2\n")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Vertices []map[string]any `json:"vertices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Vertices, 3)

	v2 := raw.Vertices[2]
	assert.Nil(t, v2["distance"])
	assert.Equal(t, false, v2["reachable"])
	assert.NotContains(t, v2, "path")
}

func TestShortestPathsErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{"missing source", "/v1/shortest-paths", scenario, http.StatusBadRequest, "INVALID_ARGUMENTS"},
		{"non-numeric source", "/v1/shortest-paths?source=abc", scenario, http.StatusBadRequest, "INVALID_ARGUMENTS"},
		{"source out of range", "/v1/shortest-paths?source=9", scenario, http.StatusBadRequest, "INVALID_ARGUMENTS"},
		{"empty body", "/v1/shortest-paths?source=0", "", http.StatusBadRequest, "IO_ERROR"},
		{"self-loop", "/v1/shortest-paths?source=0", "3\n1,1,2\n", http.StatusBadRequest, "GRAPH_CONSTRUCTION"},
		{"duplicate", "/v1/shortest-paths?source=0", "3\n0,1,2\n1,0,2\n", http.StatusBadRequest, "GRAPH_CONSTRUCTION"},
		{"too large", "/v1/shortest-paths?source=0", "3\n" + strings.Repeat("0,1,2\n", 100), http.StatusRequestEntityTooLarge, "INVALID_ARGUMENTS"},
		{"too many vertices", "/v1/shortest-paths?source=0", "1000000000\n", http.StatusRequestEntityTooLarge, "INVALID_ARGUMENTS"},
	}

	h := newTestRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, string(body.Code))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestShortestPathsMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/v1/shortest-paths?source=0", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRenderDOT(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/v1/render?source=0&format=dot&target=3", scenario)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Contains(t, rec.Header().Get("Content-Type"), "graphviz")
	assert.NotEmpty(t, rec.Header().Get("X-Run-Id"))
	assert.Contains(t, rec.Body.String(), "graph G {")
	assert.Contains(t, rec.Body.String(), `1 -- 3 [label="1", color="#dd6b20", penwidth=4];`)
}

func TestRenderErrors(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/v1/render?source=0&format=pdf", scenario)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENTS", string(decodeError(t, rec).Code))

	rec = do(t, h, http.MethodPost, "/v1/render?source=0&target=x", scenario)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func TestLoggingMiddlewareHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	h := newTestRouter(t, nil)
	do(t, h, http.MethodGet, "/healthz", "")
	do(t, h, http.MethodPost, "/v1/shortest-paths", scenario)

	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, hooks.statuses)
}

func TestServerRunShutsDown(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	cfg := config.Default().Server
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	s := New(logger, cfg, newTestRouter(t, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServerRunReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	logger := log.NewWithOptions(io.Discard, log.Options{})
	cfg := config.Default().Server
	cfg.Addr = ln.Addr().String()
	cfg.ShutdownTimeout = time.Second
	s := New(logger, cfg, newTestRouter(t, nil))

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err, "Run should fail when the address is taken")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the listener failed")
	}
}
