package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshforge/vdpm/core"
)

func TestGraph_WeightedOption(t *testing.T) {
	g := core.NewGraph()
	require.False(t, g.Weighted(), "Weighted() default must be false")

	wg := core.NewGraph(core.WithWeighted())
	require.True(t, wg.Weighted(), "WithWeighted must set Weighted()==true")
}

func TestGraph_AddEdgeRejectsWeightOnUnweighted(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGraph_AddEdgeRejectsLoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestGraph_AddEdgeRejectsDuplicate(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	_, err = g.AddEdge("b", "a", 0)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestGraph_AddEdgeRejectsEmptyID(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "b", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}
