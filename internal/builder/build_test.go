package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/modules/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testRegistry() *registry.Registry {
	return registry.New().Load(&arith.Module{})
}

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestBuild_ExpandIntoSqrt(t *testing.T) {
	// --- Arrange ---
	grid := &config.Grid{
		Nodes: []*config.Node{
			{Kind: "arith.expand", Name: "probe", Inputs: map[string]cty.Value{"Value": cty.NumberIntVal(5)}},
			{Kind: "arith.sqrt", Name: "root"},
		},
		Edges: []*config.Edge{{From: "probe.Data1", To: "root.Value"}},
	}

	// --- Act ---
	g, err := Build(testCtx(), grid, testRegistry())

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, g.Nodes(), 2)
	require.Len(t, g.Edges(), 1)

	probe, ok := g.Node("probe")
	require.True(t, ok)
	in, _ := node.FindInput(probe, "Value", false)
	assert.True(t, in.Value().RawEquals(cty.NumberIntVal(5)))

	edge := g.Edges()[0]
	assert.Equal(t, "Data1", edge.Source.Identity())
	assert.Equal(t, "Value", edge.Target.Identity())
	assert.False(t, edge.Target.Override(), "targets prefer argument connectors")
}

func TestBuild_SeedsOverrides(t *testing.T) {
	grid := &config.Grid{Nodes: []*config.Node{{
		Kind:      "arith.sum",
		Name:      "s",
		Inputs:    map[string]cty.Value{"A": cty.NumberIntVal(1), "Sum": cty.NumberIntVal(9)},
		Overrides: map[string]cty.Value{"Sum": cty.NumberIntVal(7)},
	}}}

	g, err := Build(testCtx(), grid, testRegistry())

	require.NoError(t, err)
	s, _ := g.Node("s")
	pinned, ok := node.FindInput(s, "Sum", true)
	require.True(t, ok)
	assert.True(t, pinned.Value().RawEquals(cty.NumberIntVal(7)), "overrides are applied after inputs")
}

func TestBuild_SeedFallsBackToOverride(t *testing.T) {
	grid := &config.Grid{Nodes: []*config.Node{{
		Kind:   "arith.sum",
		Name:   "s",
		Inputs: map[string]cty.Value{"Sum": cty.NumberIntVal(9)},
	}}}

	g, err := Build(testCtx(), grid, testRegistry())

	require.NoError(t, err)
	s, _ := g.Node("s")
	pinned, _ := node.FindInput(s, "Sum", true)
	assert.True(t, pinned.Value().RawEquals(cty.NumberIntVal(9)))
}

func TestBuild_ConvertsSeeds(t *testing.T) {
	grid := &config.Grid{Nodes: []*config.Node{{
		Kind:   "arith.sqrt",
		Name:   "root",
		Inputs: map[string]cty.Value{"Value": cty.StringVal("16")},
	}}}

	g, err := Build(testCtx(), grid, testRegistry())

	require.NoError(t, err)
	root, _ := g.Node("root")
	in, _ := node.FindInput(root, "Value", false)
	assert.Equal(t, cty.Number, in.Value().Type())
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		grid   *config.Grid
		wantIs error
		want   string
	}{
		{
			name:   "unknown kind",
			grid:   &config.Grid{Nodes: []*config.Node{{Kind: "arith.nope", Name: "x"}}},
			wantIs: registry.ErrUnknownKind,
		},
		{
			name: "duplicate name",
			grid: &config.Grid{Nodes: []*config.Node{
				{Kind: "arith.sqrt", Name: "x"},
				{Kind: "arith.sum", Name: "x"},
			}},
			wantIs: ErrDuplicateName,
		},
		{
			name: "invalid name",
			grid: &config.Grid{Nodes: []*config.Node{{Kind: "arith.sqrt", Name: "bad name"}}},
			want: "invalid node name",
		},
		{
			name: "unknown input",
			grid: &config.Grid{Nodes: []*config.Node{
				{Kind: "arith.sqrt", Name: "x", Inputs: map[string]cty.Value{"Nope": cty.True}},
			}},
			wantIs: ErrUnknownConnector,
		},
		{
			name: "unknown override",
			grid: &config.Grid{Nodes: []*config.Node{
				{Kind: "arith.scale", Name: "x", Overrides: map[string]cty.Value{"Value": cty.True}},
			}},
			wantIs: ErrUnknownConnector,
		},
		{
			name: "seed of the wrong type",
			grid: &config.Grid{Nodes: []*config.Node{
				{Kind: "arith.sqrt", Name: "x", Inputs: map[string]cty.Value{"Value": cty.StringVal("sixteen")}},
			}},
			wantIs: ErrInvalidSeed,
		},
		{
			name: "undeclared source node",
			grid: &config.Grid{
				Nodes: []*config.Node{{Kind: "arith.sqrt", Name: "x"}},
				Edges: []*config.Edge{{From: "ghost.Value", To: "x.Value"}},
			},
			wantIs: graph.ErrUnknownSource,
		},
		{
			name: "undeclared target node",
			grid: &config.Grid{
				Nodes: []*config.Node{{Kind: "arith.sqrt", Name: "x"}},
				Edges: []*config.Edge{{From: "x.Value", To: "ghost.Value"}},
			},
			wantIs: graph.ErrStructuralValidation,
		},
		{
			name: "unknown output identity",
			grid: &config.Grid{
				Nodes: []*config.Node{{Kind: "arith.sqrt", Name: "x"}, {Kind: "arith.sqrt", Name: "y"}},
				Edges: []*config.Edge{{From: "x.Nope", To: "y.Value"}},
			},
			wantIs: ErrUnknownConnector,
		},
		{
			name: "malformed reference",
			grid: &config.Grid{
				Nodes: []*config.Node{{Kind: "arith.sqrt", Name: "x"}},
				Edges: []*config.Edge{{From: "x", To: "x.Value"}},
			},
			want: "must have the form",
		},
		{
			name: "duplicate edge",
			grid: &config.Grid{
				Nodes: []*config.Node{{Kind: "arith.sqrt", Name: "x"}, {Kind: "arith.sqrt", Name: "y"}},
				Edges: []*config.Edge{
					{From: "x.Value", To: "y.Value"},
					{From: "x.Value", To: "y.Value"},
				},
			},
			wantIs: graph.ErrDuplicateEdge,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(testCtx(), tc.grid, testRegistry())

			require.Error(t, err)
			if tc.wantIs != nil {
				assert.True(t, errors.Is(err, tc.wantIs), "got %v", err)
			}
			if tc.want != "" {
				assert.Contains(t, err.Error(), tc.want)
			}
		})
	}
}

func TestBuild_ReportsEveryProblem(t *testing.T) {
	grid := &config.Grid{Nodes: []*config.Node{
		{Kind: "arith.nope", Name: "a"},
		{Kind: "arith.other", Name: "b"},
	}}

	_, err := Build(testCtx(), grid, testRegistry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"arith.nope"`)
	assert.Contains(t, err.Error(), `"arith.other"`)
}
