package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statespace/pkg/adapters/memory"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/registry"
)

func TestDefault_SolvesFoxGooseBeans(t *testing.T) {
	r := registry.Default()

	infos := r.List()
	require.Len(t, infos, 1)
	assert.Equal(t, "fox-goose-beans", infos[0].ID)
	assert.Contains(t, infos[0].Summary, "Farmer")

	p, err := r.Get("fox-goose-beans")
	require.NoError(t, err)

	discovered := 0
	report, err := p.Solve(context.Background(), registry.SolveOptions{
		Workers: 2,
		Hooks: domain.LifecycleHooks{
			OnDiscover: func(context.Context, *domain.DiscoverEvent) { discovered++ },
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, report.Outcome)
	assert.Len(t, report.Steps, 17)
	assert.Equal(t, "fgb L", report.Start)
	assert.Equal(t, "FGB R", report.Goal)
	assert.Equal(t, 28, report.Explored)
	assert.Equal(t, 28, discovered, "caller hooks still run")
	assert.False(t, report.SolvedAt.IsZero())

	require.NotNil(t, report.Graph)
	assert.Len(t, report.Graph.Nodes, 28)
	assert.True(t, report.Graph.Nodes[0].Start)
	assert.True(t, report.Graph.Nodes[27].Goal)
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := registry.NewRegistry().Get("nope")
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestRegistry_Load(t *testing.T) {
	loader, err := memory.NewFromYAML(map[string]string{
		"hostile": `
carrier: Farmer
capacity: 1
entities: [Alpha, Beta, Gamma]
forbidden:
  - [Alpha, Beta]
  - [Beta, Gamma]
  - [Alpha, Gamma]
`,
		"free": "carrier: Farmer\ncapacity: 1\nentities: [Fox]\n",
	})
	require.NoError(t, err)

	r := registry.NewRegistry()
	require.NoError(t, r.Load(context.Background(), loader))

	ids := []string{}
	for _, info := range r.List() {
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{"free", "hostile"}, ids)

	p, err := r.Get("hostile")
	require.NoError(t, err)
	report, err := p.Solve(context.Background(), registry.SolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnreachable, report.Outcome)
	assert.Empty(t, report.Steps)

	p, err = r.Get("free")
	require.NoError(t, err)
	report, err = p.Solve(context.Background(), registry.SolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"pickup Fox", "boat to the right shore", "drop Fox"}, report.Steps)
}

func TestRegistry_LoadRejectsInvalidDefinitions(t *testing.T) {
	loader := memory.NewLoader(map[string]map[string]any{
		"bad": {"carrier": "Farmer", "capacity": 0, "entities": []any{"A"}},
	})
	err := registry.NewRegistry().Load(context.Background(), loader)
	assert.ErrorIs(t, err, domain.ErrInvalidProblem)

	_, err = registry.Decode("x", map[string]any{"kind": "sokoban"})
	assert.ErrorContains(t, err, "unknown puzzle kind")
}
