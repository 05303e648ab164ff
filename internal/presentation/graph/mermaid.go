package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// GraphOverlay contains solution data to highlight on the graph.
type GraphOverlay struct {
	// Path lists the record indices of the solution, start first.
	Path []int
}

// GenerateMermaid produces a Mermaid flowchart of an exploration.
// It applies semantic styling:
// - Start: yellow ([Stadium])
// - Goal: green [[Subroutine]]
// - Default: gray [Rectangle]
// Tree edges are solid; rediscoveries of known states are dotted.
// Solution nodes are outlined when an overlay is provided.
func GenerateMermaid(g *domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		opener, closer := "[", "]"
		switch {
		case node.Start:
			opener, closer = "([", "])"
		case node.Goal:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(node.Index), opener, nodeLabel(node, "<br/>"), closer))
		if node.Fingerprint != "" {
			sb.WriteString(fmt.Sprintf("    %%%% %s fingerprint=%s\n", nodeID(node.Index), node.Fingerprint))
		}
	}

	for _, e := range g.Edges {
		arrow := "-->"
		if e.Rediscovery {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s|\"%s\"| %s\n", nodeID(e.From), arrow, escapeMermaid(e.Action), nodeID(e.To)))
	}

	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("\n    classDef start fill:#ffeb3b,stroke:#fbc02d,color:#000;\n")
	sb.WriteString("    classDef goal fill:#81c784,stroke:#2e7d32,color:#000;\n")
	sb.WriteString("    classDef explored fill:#e0e0e0,stroke:#9e9e9e,color:#000;\n")
	for _, node := range g.Nodes {
		class := "explored"
		switch {
		case node.Start:
			class = "start"
		case node.Goal:
			class = "goal"
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", nodeID(node.Index), class))
	}

	if overlay != nil && len(overlay.Path) > 0 {
		sb.WriteString("\n    %% Solution Overlay\n")
		sb.WriteString("    classDef solution stroke:#01579b,stroke-width:4px;\n")
		seen := make(map[int]bool)
		for _, idx := range overlay.Path {
			if !seen[idx] {
				seen[idx] = true
				sb.WriteString(fmt.Sprintf("    class %s solution;\n", nodeID(idx)))
			}
		}
	}

	return sb.String()
}

func nodeID(index int) string {
	return fmt.Sprintf("s%d", index)
}

// nodeLabel renders the visit-marker form "index: description".
func nodeLabel(node domain.GraphNode, sep string) string {
	return fmt.Sprintf("%d:%s%s", node.Index, sep, escapeMermaid(node.Description))
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
