package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// Format is a textual graph notation.
type Format string

const (
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
)

// ParseFormat accepts the CLI and query-string spellings of a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mermaid", "mmd":
		return FormatMermaid, nil
	case "dot", "graphviz":
		return FormatDOT, nil
	}
	return "", fmt.Errorf("unknown graph format %q (use mermaid or dot)", s)
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatDOT {
		return "text/vnd.graphviz"
	}
	return "text/vnd.mermaid"
}

// Render draws the exploration graph of a report in the given format,
// outlining the solution path when the report is solved.
func Render(r *domain.Report, f Format) (string, error) {
	if r.Graph == nil {
		return "", fmt.Errorf("report for %q has no exploration graph", r.Puzzle)
	}
	switch f {
	case FormatDOT:
		return GenerateDOT(r.Graph, r.Puzzle), nil
	case FormatMermaid:
		return GenerateMermaid(r.Graph, &GraphOverlay{Path: SolutionPath(r.Graph)}), nil
	}
	return "", fmt.Errorf("unknown graph format %q", f)
}

// SolutionPath follows the tree edges back from the goal node and returns
// the indices from start to goal, or nil when no goal was reached.
func SolutionPath(g *domain.Graph) []int {
	goal := 0
	for _, n := range g.Nodes {
		if n.Goal {
			goal = n.Index
		}
	}
	if goal == 0 {
		return nil
	}

	parent := make(map[int]int, len(g.Nodes))
	for _, e := range g.Edges {
		if !e.Rediscovery {
			parent[e.To] = e.From
		}
	}

	path := []int{goal}
	for idx := goal; ; {
		p, ok := parent[idx]
		if !ok || len(path) > len(g.Nodes) {
			break
		}
		path = append([]int{p}, path...)
		idx = p
	}
	return path
}
