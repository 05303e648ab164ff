package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statespace/internal/logging"
	"github.com/aretw0/statespace/pkg/adapters/memory"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
	"github.com/aretw0/statespace/pkg/registry"
	"github.com/aretw0/statespace/pkg/solver"
)

func newTestServer() *Server {
	mgr := solver.NewManager(registry.Default(), memory.NewStore())
	return NewServer(mgr, logging.NewNop())
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestListPuzzles(t *testing.T) {
	s := newTestServer()

	res, err := s.handleListPuzzles(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var puzzles []ports.PuzzleInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &puzzles))
	require.Len(t, puzzles, 1)
	assert.Equal(t, "fox-goose-beans", puzzles[0].ID)
}

func TestSolvePuzzle(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSolvePuzzle(context.Background(), callRequest(nil), map[string]interface{}{"id": "fox-goose-beans"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.OutcomeSolved), resp.Outcome)
	assert.Equal(t, "fgb L", resp.Start)
	assert.Equal(t, "FGB R", resp.Goal)
	assert.Len(t, resp.Steps, 17)
	assert.Equal(t, 28, resp.Explored)
	assert.Equal(t, "fox-goose-beans solved in 17 steps", planOutcome(resp))

	_, err = s.handleSolvePuzzle(context.Background(), callRequest(nil), map[string]interface{}{"id": "hanoi"})
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)

	_, err = s.handleSolvePuzzle(context.Background(), callRequest(nil), map[string]interface{}{})
	assert.Error(t, err)
}

func TestRenderGraph(t *testing.T) {
	s := newTestServer()

	res, err := s.handleRenderGraph(context.Background(), callRequest(map[string]any{"id": "fox-goose-beans"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "graph TD")

	res, err = s.handleRenderGraph(context.Background(), callRequest(map[string]any{"id": "fox-goose-beans", "format": "dot"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "digraph")

	res, err = s.handleRenderGraph(context.Background(), callRequest(map[string]any{"id": "fox-goose-beans", "format": "svg"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleRenderGraph(context.Background(), callRequest(map[string]any{"id": "hanoi"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestCatalogueResource(t *testing.T) {
	s := newTestServer()

	contents, err := s.handleCatalogue(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, catalogueURI, text.URI)
	assert.Contains(t, text.Text, `"fox-goose-beans"`)
}

func TestPlanOutcome_Unreachable(t *testing.T) {
	got := planOutcome(PlanResponse{Puzzle: "stuck", Outcome: string(domain.OutcomeUnreachable), Explored: 4})
	assert.Equal(t, "stuck unreachable after 4 states", got)
}
