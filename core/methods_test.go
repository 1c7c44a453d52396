package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshforge/vdpm/core"
)

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	require.False(t, g.HasVertex("v1"))
	require.NoError(t, g.AddVertex("v1"))
	require.True(t, g.HasVertex("v1"))

	// duplicate AddVertex is idempotent
	require.NoError(t, g.AddVertex("v1"))
	require.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdgeCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	require.NotEmpty(t, eid)

	require.True(t, g.HasVertex("a"))
	require.True(t, g.HasVertex("b"))
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "a"), "HasEdge must be symmetric for an undirected edge")
}

func TestGraph_EdgeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 7)
	require.NoError(t, err)

	w, ok := g.EdgeWeight("a", "b")
	require.True(t, ok)
	require.Equal(t, int64(7), w)

	w, ok = g.EdgeWeight("b", "a")
	require.True(t, ok, "EdgeWeight must be symmetric")
	require.Equal(t, int64(7), w)

	_, ok = g.EdgeWeight("a", "z")
	require.False(t, ok)
}

func TestGraph_Neighbors(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "a", "c")
	mustEdge(t, g, "a", "b")
	mustEdge(t, g, "a", "d")

	require.Equal(t, []string{"b", "c", "d"}, g.Neighbors("a"))
	require.Empty(t, g.Neighbors("z"))
}

func TestGraph_VerticesSortedAndCounts(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "b", "a")
	mustEdge(t, g, "c", "a")

	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
}

func mustEdge(t *testing.T, g *core.Graph, from, to string) {
	t.Helper()
	_, err := g.AddEdge(from, to, 0)
	require.NoError(t, err)
}
