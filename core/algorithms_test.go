package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshforge/vdpm/core"
)

func buildPath(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1], int64(i+1))
		require.NoError(t, err)
	}

	return g
}

func TestGraph_ReachableConnected(t *testing.T) {
	g := buildPath(t, "a", "b", "c", "d")
	got := g.Reachable("a")
	for _, id := range []string{"a", "b", "c", "d"} {
		require.True(t, got[id], "Reachable(a) must include %s", id)
	}
	require.Len(t, got, 4)
}

func TestGraph_ReachableDisconnected(t *testing.T) {
	g := buildPath(t, "a", "b")
	_, err := g.AddEdge("x", "y", 1)
	require.NoError(t, err)

	got := g.Reachable("a")
	require.Equal(t, map[string]bool{"a": true, "b": true}, got)
}

func TestGraph_HasCycleTreeIsFalse(t *testing.T) {
	g := buildPath(t, "a", "b", "c")
	require.False(t, g.HasCycle())
}

func TestGraph_HasCycleTriangleIsTrue(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "a", "b")
	mustEdge(t, g, "b", "c")
	mustEdge(t, g, "c", "a")

	require.True(t, g.HasCycle())
}

func TestGraph_HasCycleDoesNotMistakeParentEdgeForCycle(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "a", "b")

	require.False(t, g.HasCycle())
}

func TestGraph_MinimumSpanningTreeWeightsAndEdgeCount(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustWeightedEdge(t, g, "a", "b", 1)
	mustWeightedEdge(t, g, "b", "c", 2)
	mustWeightedEdge(t, g, "a", "c", 10)

	mst, total := g.MinimumSpanningTree()
	require.Len(t, mst, 2)
	require.Equal(t, int64(3), total)
}

func TestGraph_MinimumSpanningTreeDisconnectedYieldsForest(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustWeightedEdge(t, g, "a", "b", 1)
	mustWeightedEdge(t, g, "x", "y", 1)

	mst, _ := g.MinimumSpanningTree()
	require.Len(t, mst, 1, "disconnected graph yields a partial forest, not an error")
}

func TestGraph_MinimumSpanningTreeEmptyGraph(t *testing.T) {
	g := core.NewGraph()
	mst, total := g.MinimumSpanningTree()
	require.Nil(t, mst)
	require.Zero(t, total)
}

func TestGraph_ShortestDistances(t *testing.T) {
	g := buildPath(t, "a", "b", "c", "d")

	dist, err := g.ShortestDistances("a", -1)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"a": 0, "b": 1, "c": 3, "d": 6}, dist)
}

func TestGraph_ShortestDistancesRespectsMaxDistance(t *testing.T) {
	g := buildPath(t, "a", "b", "c", "d")

	dist, err := g.ShortestDistances("a", 3)
	require.NoError(t, err)
	require.NotContains(t, dist, "d")
	require.Equal(t, int64(3), dist["c"])
}

func TestGraph_ShortestDistancesUnknownSource(t *testing.T) {
	g := buildPath(t, "a", "b")
	_, err := g.ShortestDistances("z", -1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func mustWeightedEdge(t *testing.T, g *core.Graph, from, to string, w int64) {
	t.Helper()
	_, err := g.AddEdge(from, to, w)
	require.NoError(t, err)
}
