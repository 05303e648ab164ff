package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// GenerateDOT produces a Graphviz digraph of an exploration.
// The start state is a yellow rectangle, the goal a green rectangle and every
// other state a gray ellipse; edges carry the action label. Nodes with a
// state fingerprint carry it as their tooltip.
func GenerateDOT(g *domain.Graph, name string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", quoteDOT(name)))

	for _, node := range g.Nodes {
		attrs := `fillcolor=gray, style=filled`
		switch {
		case node.Start:
			attrs = `fillcolor=yellow, shape=rectangle, style=filled`
		case node.Goal:
			attrs = `fillcolor=green, shape=rectangle, style=filled`
		}
		if node.Fingerprint != "" {
			attrs += ", tooltip=" + quoteDOT(node.Fingerprint)
		}
		label := fmt.Sprintf("%d: %s", node.Index, node.Description)
		sb.WriteString(fmt.Sprintf("    %s [label=%s, %s];\n", nodeID(node.Index), quoteDOT(label), attrs))
	}

	for _, e := range g.Edges {
		style := ""
		if e.Rediscovery {
			style = ", style=dashed"
		}
		sb.WriteString(fmt.Sprintf("    %s -> %s [label=%s%s];\n", nodeID(e.From), nodeID(e.To), quoteDOT(e.Action), style))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
