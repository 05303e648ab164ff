package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/pkg/adapters/memory"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/observability"
	"github.com/aretw0/statespace/pkg/ports"
	"github.com/aretw0/statespace/pkg/registry"
	"github.com/aretw0/statespace/pkg/solver"
)

func newTestHandler(t *testing.T, opts ...solver.Option) http.Handler {
	t.Helper()
	mgr := solver.NewManager(registry.Default(), memory.NewStore(), opts...)
	return NewHandler(mgr, WithLogger(logging.NewNop()))
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, "GET", "/info")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "statespace-http", info["app"])
	assert.NotEmpty(t, info["version"])
}

func TestListPuzzles(t *testing.T) {
	w := do(t, newTestHandler(t), "GET", "/puzzles")
	require.Equal(t, http.StatusOK, w.Code)

	var puzzles []ports.PuzzleInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &puzzles))
	require.Len(t, puzzles, 1)
	assert.Equal(t, "fox-goose-beans", puzzles[0].ID)
	assert.NotEmpty(t, puzzles[0].Summary)
}

func TestSolveThenPlan(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/puzzles/fox-goose-beans/plan")
	assert.Equal(t, http.StatusNotFound, w.Code, "nothing stored before the first solve")

	w = do(t, h, "POST", "/puzzles/fox-goose-beans/solve")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var report domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, domain.OutcomeSolved, report.Outcome)
	assert.Len(t, report.Steps, 17)
	assert.Equal(t, "pickup Goose", report.Steps[0])
	assert.Nil(t, report.Graph)

	w = do(t, h, "GET", "/puzzles/fox-goose-beans/plan")
	require.Equal(t, http.StatusOK, w.Code)
	var plan domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, report.Steps, plan.Steps)
}

func TestUnknownPuzzle(t *testing.T) {
	h := newTestHandler(t)

	for _, req := range []struct{ method, target string }{
		{"POST", "/puzzles/hanoi/solve"},
		{"GET", "/puzzles/hanoi/plan"},
		{"GET", "/puzzles/hanoi/graph"},
	} {
		w := do(t, h, req.method, req.target)
		assert.Equal(t, http.StatusNotFound, w.Code, req.target)
	}
}

func TestGetGraph(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/puzzles/fox-goose-beans/graph")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/vnd.mermaid")
	assert.Contains(t, w.Body.String(), "graph TD")
	assert.Contains(t, w.Body.String(), `s1(["1:<br/>fgb L"])`)

	w = do(t, h, "GET", "/puzzles/fox-goose-beans/graph?format=dot")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/vnd.graphviz")
	assert.Contains(t, w.Body.String(), `digraph "fox-goose-beans" {`)

	w = do(t, h, "GET", "/puzzles/fox-goose-beans/graph?format=png")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	mgr := solver.NewManager(registry.Default(), memory.NewStore(),
		solver.WithPuzzleHooks(metrics.Hooks))
	h := NewHandler(mgr, WithLogger(logging.NewNop()), WithMetrics(reg))

	require.Equal(t, http.StatusOK, do(t, h, "POST", "/puzzles/fox-goose-beans/solve").Code)

	w := do(t, h, "GET", "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `statespace_searches_total{outcome="solved",puzzle="fox-goose-beans"} 1`)

	assert.Equal(t, http.StatusNotFound, do(t, newTestHandler(t), "GET", "/metrics").Code)
}

type brokenSolver struct{}

func (brokenSolver) Puzzles() []ports.PuzzleInfo { return nil }
func (brokenSolver) Solve(context.Context, string) (*domain.Report, error) {
	return nil, errors.New("disk on fire")
}
func (brokenSolver) Plan(context.Context, string) (*domain.Report, error) {
	return nil, domain.ErrPlanNotFound
}

func TestSolverFailure(t *testing.T) {
	h := NewHandler(brokenSolver{}, WithLogger(logging.NewNop()))

	w := do(t, h, "POST", "/puzzles/anything/solve")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "disk on fire")
}

func TestCORS(t *testing.T) {
	w := do(t, newTestHandler(t), "OPTIONS", "/puzzles")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
