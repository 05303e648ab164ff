package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statespace/internal/presentation/graph"
	"github.com/aretw0/statespace/pkg/domain"
)

func sample() *domain.Graph {
	return &domain.Graph{
		Nodes: []domain.GraphNode{
			{Index: 1, Description: "counter=0", Start: true},
			{Index: 2, Description: "counter=1"},
			{Index: 3, Description: `say "hi"`, Goal: true},
		},
		Edges: []domain.GraphEdge{
			{From: 1, To: 2, Action: "add 1"},
			{From: 2, To: 1, Action: "sub 1", Rediscovery: true},
			{From: 2, To: 3, Action: "greet"},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		absent   []string
	}{
		{
			name: "Node Shapes",
			contains: []string{
				`s1(["1:<br/>counter=0"])`,
				`s2["2:<br/>counter=1"]`,
				`s3[["3:<br/>say 'hi'"]]`,
			},
		},
		{
			name: "Edges",
			contains: []string{
				`s1 -->|"add 1"| s2`,
				`s2 -.->|"sub 1"| s1`,
				`s2 -->|"greet"| s3`,
			},
		},
		{
			name: "Classes",
			contains: []string{
				"class s1 start;",
				"class s2 explored;",
				"class s3 goal;",
			},
			absent: []string{"solution"},
		},
		{
			name:    "Overlay",
			overlay: &graph.GraphOverlay{Path: []int{1, 2, 3, 3}},
			contains: []string{
				"classDef solution",
				"class s1 solution;",
				"class s3 solution;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(sample(), tt.overlay)
			assert.True(t, strings.HasPrefix(out, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, not := range tt.absent {
				assert.NotContains(t, out, not)
			}
			if tt.overlay != nil {
				assert.Equal(t, 1, strings.Count(out, "class s3 solution;"))
			}
		})
	}
}

func TestGenerateDOT(t *testing.T) {
	out := graph.GenerateDOT(sample(), "demo")

	assert.True(t, strings.HasPrefix(out, "digraph \"demo\" {\n"))
	assert.Contains(t, out, `s1 [label="1: counter=0", fillcolor=yellow, shape=rectangle, style=filled];`)
	assert.Contains(t, out, `s2 [label="2: counter=1", fillcolor=gray, style=filled];`)
	assert.Contains(t, out, `s3 [label="3: say \"hi\"", fillcolor=green, shape=rectangle, style=filled];`)
	assert.Contains(t, out, `s2 -> s1 [label="sub 1", style=dashed];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestFingerprints(t *testing.T) {
	g := sample()
	g.Nodes[1].Fingerprint = "00000000000000ab"

	mermaid := graph.GenerateMermaid(g, nil)
	assert.Contains(t, mermaid, "    %% s2 fingerprint=00000000000000ab\n")
	assert.Equal(t, 1, strings.Count(mermaid, "fingerprint="))

	dot := graph.GenerateDOT(g, "demo")
	assert.Contains(t, dot, `s2 [label="2: counter=1", fillcolor=gray, style=filled, tooltip="00000000000000ab"];`)
	assert.Equal(t, 1, strings.Count(dot, "tooltip="))
}

func TestSolutionPath(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, graph.SolutionPath(sample()))

	unsolved := sample()
	unsolved.Nodes[2].Goal = false
	assert.Nil(t, graph.SolutionPath(unsolved))
}

func TestRender(t *testing.T) {
	r := &domain.Report{Puzzle: "demo", Graph: sample()}

	out, err := graph.Render(r, graph.FormatMermaid)
	require.NoError(t, err)
	assert.Contains(t, out, "class s2 solution;")

	out, err = graph.Render(r, graph.FormatDOT)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")

	_, err = graph.Render(&domain.Report{Puzzle: "bare"}, graph.FormatDOT)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := graph.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, graph.FormatMermaid, f)

	f, err = graph.ParseFormat("Graphviz")
	require.NoError(t, err)
	assert.Equal(t, graph.FormatDOT, f)
	assert.Equal(t, "text/vnd.graphviz", f.ContentType())

	_, err = graph.ParseFormat("png")
	assert.Error(t, err)
}
