package core

import (
	"sort"
	"strconv"
)

// AddEdge creates an undirected edge between from and to, creating either
// endpoint vertex that does not already exist. Returns ErrLoopNotAllowed
// for from == to and ErrDuplicateEdge if the pair is already connected;
// callers that re-derive a Graph from a mesh that has folded two faces
// together over a collapse skip equal endpoints before calling AddEdge
// and skip the candidate when it reports a duplicate, rather than treat
// it as a hard failure (see selector.MSTSelector, roi.GraphDistance).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrDuplicateEdge
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge connects from and to, in either order.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeWeight returns the weight of the edge between from and to, if one
// exists.
func (g *Graph) EdgeWeight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return g.edges[eid].Weight, true
}

// Neighbors returns id's adjacent vertex IDs in ascending order, the
// teacher's stable-enumeration convention applied to adjacency instead of
// just the vertex catalog.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
