package observability

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/statespace/pkg/domain"
)

// Recorder rebuilds the exploration graph of one search from its hooks.
type Recorder struct {
	mu    sync.Mutex
	nodes []domain.GraphNode
	edges []domain.GraphEdge
	goal  int
}

// NewRecorder creates an empty recorder. Use one recorder per search.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Hooks returns the callbacks that feed the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDiscover: func(_ context.Context, e *domain.DiscoverEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.nodes = append(r.nodes, domain.GraphNode{
				Index:       e.Index,
				Description: e.Description,
				Fingerprint: e.Fingerprint,
				Start:       e.Parent == 0,
			})
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.edges = append(r.edges, domain.GraphEdge{
				From:        e.From,
				To:          e.To,
				Action:      e.Action,
				Rediscovery: e.Discarded,
			})
		},
		OnFinish: func(_ context.Context, e *domain.FinishEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.goal = e.GoalIndex
		},
	}
}

// Graph returns a copy of what has been recorded so far, nodes sorted by index.
func (r *Recorder) Graph() *domain.Graph {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := &domain.Graph{
		Nodes: slices.Clone(r.nodes),
		Edges: slices.Clone(r.edges),
	}
	slices.SortFunc(g.Nodes, func(a, b domain.GraphNode) int { return a.Index - b.Index })
	for i := range g.Nodes {
		g.Nodes[i].Goal = r.goal != 0 && g.Nodes[i].Index == r.goal
	}
	if g.Nodes == nil {
		g.Nodes = []domain.GraphNode{}
	}
	if g.Edges == nil {
		g.Edges = []domain.GraphEdge{}
	}
	return g
}
