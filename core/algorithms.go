package core

// This file folds the four small graph algorithms the wireframe domain
// actually needs directly onto Graph, in place of the teacher's separate
// bfs/dfs/dijkstra/prim_kruskal packages: none of those operated on
// anything but a generic *Graph, and every call site here only ever asks
// one of four narrow questions of a freshly built wireframe snapshot
// ("is it connected", "does it have a cycle", "what's its MST", "how far
// is every vertex from this one") rather than needing a whole pluggable
// traversal framework with its own options and hook types. The graphs in
// play are mesh wireframes (tens of vertices, one triangulation's worth
// of edges), so the O(V^2) algorithms below trade asymptotic elegance for
// staying inside this one small file.

// Reachable performs a breadth-first walk from start and returns the set
// of vertex IDs reachable from it, start included. Mirrors the shape of
// the teacher's bfs.BFS but returns only the visited set, the one fact
// checkWireframeSanity needs.
func (g *Graph) Reachable(start string) map[string]bool {
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(id) {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return visited
}

// HasCycle reports whether the graph contains a cycle, walking every
// connected component with a depth-first search that tracks each
// vertex's parent edge so that stepping back across the edge just
// arrived on is not mistaken for a cycle. Mirrors the teacher's
// dfs.DetectCycles specialized to an undirected, loop-free, simple
// wireframe (no Directed()/Looped() branching needed).
func (g *Graph) HasCycle() bool {
	visited := make(map[string]bool)

	var walk func(id, parent string) bool
	walk = func(id, parent string) bool {
		visited[id] = true
		for _, n := range g.Neighbors(id) {
			if n == parent {
				continue
			}
			if visited[n] {
				return true
			}
			if walk(n, id) {
				return true
			}
		}

		return false
	}

	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		if walk(id, "") {
			return true
		}
	}

	return false
}

// MinimumSpanningTree runs Prim's algorithm from the lexicographically
// first vertex, growing the tree by repeatedly adding the lightest edge
// leaving it. On a disconnected graph it stops once the tree's frontier
// has no more edges to offer, returning the spanning tree of the start
// vertex's component only (other components contribute no edges) rather
// than an error — the teacher's prim_kruskal.Kruskal rejected a disconnected
// graph outright, but selector.MSTSelector only wants an edge order and
// is happy to treat "unreachable from the first vertex" as "not on the
// backbone", so there is nothing to report as a failure here.
func (g *Graph) MinimumSpanningTree() ([]*Edge, int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, 0
	}

	inTree := map[string]bool{smallest(ids): true}
	var mst []*Edge
	var total int64

	for len(inTree) < len(ids) {
		var best *Edge
		for v := range inTree {
			for n, eid := range g.adjacency[v] {
				if inTree[n] {
					continue
				}
				e := g.edges[eid]
				if best == nil || e.Weight < best.Weight {
					best = e
				}
			}
		}
		if best == nil {
			break
		}

		next := best.To
		if inTree[next] {
			next = best.From
		}
		inTree[next] = true
		mst = append(mst, best)
		total += best.Weight
	}

	return mst, total
}

// ShortestDistances runs Dijkstra's algorithm from source, admitting only
// vertices within maxDistance (a negative maxDistance admits everything
// reachable). Mirrors the teacher's dijkstra.Dijkstra narrowed to the one
// shape roi.GraphDistance needs: distances only, no parent/path
// reconstruction.
func (g *Graph) ShortestDistances(source string, maxDistance int64) (map[string]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[source]; !ok {
		return nil, ErrVertexNotFound
	}

	dist := map[string]int64{source: 0}
	visited := make(map[string]bool)

	for {
		u, ud, ok := closestUnvisited(dist, visited)
		if !ok {
			break
		}
		visited[u] = true
		if maxDistance >= 0 && ud > maxDistance {
			continue
		}

		for n, eid := range g.adjacency[u] {
			if visited[n] {
				continue
			}
			nd := ud + g.edges[eid].Weight
			if maxDistance >= 0 && nd > maxDistance {
				continue
			}
			if cur, seen := dist[n]; !seen || nd < cur {
				dist[n] = nd
			}
		}
	}

	return dist, nil
}

// closestUnvisited returns the unvisited vertex with the smallest known
// distance, or ok == false once none remain.
func closestUnvisited(dist map[string]int64, visited map[string]bool) (id string, d int64, ok bool) {
	found := false
	for v, vd := range dist {
		if visited[v] {
			continue
		}
		if !found || vd < d {
			id, d, found = v, vd, true
		}
	}

	return id, d, found
}

// smallest returns the lexicographically smallest string in ids, which is
// never empty when called.
func smallest(ids []string) string {
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}

	return min
}
