package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/ports"
)

const catalogueURI = "statespace://puzzles"

// PlanResponse is the structured result of solve_puzzle.
type PlanResponse struct {
	Puzzle   string   `json:"puzzle" jsonschema_description:"ID of the solved puzzle"`
	Start    string   `json:"start" jsonschema_description:"Description of the start state"`
	Goal     string   `json:"goal,omitempty" jsonschema_description:"Description of the goal state reached, when solved"`
	Outcome  string   `json:"outcome" jsonschema_description:"solved or unreachable"`
	Steps    []string `json:"steps" jsonschema_description:"Action labels from the start state to the goal"`
	Explored int      `json:"explored" jsonschema_description:"Number of distinct states explored"`
}

// Server wraps a Solver and exposes it as an MCP Server.
type Server struct {
	solver    ports.Solver
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		solver:    solver,
		logger:    logger,
		mcpServer: server.NewMCPServer("statespace-mcp", strings.TrimSpace(statespace.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: list_puzzles
	s.mcpServer.AddTool(mcp.NewTool("list_puzzles",
		mcp.WithDescription("List the puzzles that can be solved, with a one-line summary each."),
	), s.handleListPuzzles)

	// TOOL: solve_puzzle
	solveTool := mcp.NewTool("solve_puzzle",
		mcp.WithDescription("Find the shortest plan for a puzzle. Plans are cached after the first search."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Puzzle ID, as returned by list_puzzles")),
		mcp.WithOutputSchema[PlanResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolvePuzzle))

	// TOOL: render_graph
	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render the explored state graph of a puzzle as Mermaid or Graphviz DOT."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Puzzle ID")),
		mcp.WithString("format", mcp.Description("mermaid (default) or dot")),
	), s.handleRenderGraph)
}

func (s *Server) handleListPuzzles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.solver.Puzzles())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleSolvePuzzle(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlanResponse, error) {
	id, _ := args["id"].(string)
	if id == "" {
		return PlanResponse{}, errors.New("id is required")
	}

	report, err := s.solver.Solve(ctx, id)
	if err != nil {
		s.logger.Warn("MCP Solve failed", "puzzle", id, "err", err)
		return PlanResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	resp := PlanResponse{
		Puzzle:   report.Puzzle,
		Start:    report.Start,
		Goal:     report.Goal,
		Outcome:  string(report.Outcome),
		Steps:    report.Steps,
		Explored: report.Explored,
	}
	s.logger.Debug("MCP Solve", "result", planOutcome(resp))
	return resp, nil
}

func (s *Server) handleRenderGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id, _ := args["id"].(string)
	formatArg, _ := args["format"].(string)

	format, err := graph.ParseFormat(formatArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := s.solver.Solve(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}

	text, err := graph.Render(report, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) registerResources() {
	// EXPOSE: statespace://puzzles
	s.mcpServer.AddResource(mcp.NewResource(catalogueURI, "Puzzle Catalogue",
		mcp.WithMIMEType("application/json"),
	), s.handleCatalogue)
}

func (s *Server) handleCatalogue(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.solver.Puzzles())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalogue: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      catalogueURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

// planOutcome summarizes a structured result in one line.
func planOutcome(r PlanResponse) string {
	if r.Outcome == string(domain.OutcomeSolved) {
		return fmt.Sprintf("%s solved in %d steps", r.Puzzle, len(r.Steps))
	}
	return fmt.Sprintf("%s %s after %d states", r.Puzzle, r.Outcome, r.Explored)
}
