package domain

import "time"

// GraphNode is one discovered state in an exploration graph.
type GraphNode struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Start       bool   `json:"start,omitempty"`
	Goal        bool   `json:"goal,omitempty"`
}

// GraphEdge is one evaluated transition. Rediscovery edges point at states
// that were already known when the transition was evaluated.
type GraphEdge struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	Action      string `json:"action"`
	Rediscovery bool   `json:"rediscovery,omitempty"`
}

// Graph is a read-only export of an exploration, in discovery order.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Report is the type-erased view of a search, safe to serialize and store.
type Report struct {
	Puzzle   string        `json:"puzzle"`
	Start    string        `json:"start"`
	Goal     string        `json:"goal,omitempty"`
	Outcome  Outcome       `json:"outcome"`
	Steps    []string      `json:"steps"`
	Explored int           `json:"explored"`
	Duration time.Duration `json:"duration"`
	SolvedAt time.Time     `json:"solved_at"`
	Graph    *Graph        `json:"graph,omitempty"`
}

// NewReport summarizes a Result. The exploration graph is attached separately
// because building it needs the transitions observed through lifecycle hooks.
func NewReport[S State](puzzle string, start S, res Result[S]) *Report {
	steps := res.Steps
	if steps == nil {
		steps = []string{}
	}
	report := &Report{
		Puzzle:   puzzle,
		Start:    start.String(),
		Outcome:  res.Outcome,
		Steps:    steps,
		Explored: len(res.Explored),
	}
	if final, ok := res.Final(); ok {
		report.Goal = final.String()
	}
	return report
}
