package roi

import (
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/core"

	"github.com/meshforge/vdpm/dartmesh"
)

// GraphDistance is a region of interest bounded by shortest-path distance
// from a set of source vertices along the mesh wireframe, rather than by
// straight-line distance. Each wireframe edge weighs its Euclidean length
// times 1e6, truncated to an integer, and maxDistance is in the same
// units — useful for ROI shapes that should follow mesh connectivity.
//
// It snapshots vertex positions and distances once, at construction time,
// the same way selector.MSTSelector snapshots a *core.Graph once in
// Init rather than re-deriving it on every query. Callers who coarsen or
// refine the mesh between building a GraphDistance and using it should
// construct a fresh one afterward.
type GraphDistance struct {
	maxDistance int64
	distance    map[r3.Vec]int64
}

// NewGraphDistance builds a GraphDistance from mesh's wireframe, measuring
// distance from sources (vertex embeddings, by their current position) and
// admitting any vertex reachable within maxDistance. mesh must also
// implement the DartEnumerator and PositionLookup interfaces from package
// selector's mesh-capability probes; for a mesh that doesn't it returns
// (nil, false).
func NewGraphDistance(mesh dartmesh.Mesh, sources []dartmesh.EmbeddingID, maxDistance int64) (*GraphDistance, bool) {
	enumerator, ok := mesh.(interface{ DartCount() int })
	if !ok {
		return nil, false
	}
	positions, ok := mesh.(interface {
		Position(id dartmesh.EmbeddingID) r3.Vec
	})
	if !ok {
		return nil, false
	}

	g := core.NewGraph(core.WithWeighted())
	n := enumerator.DartCount()
	for d := 1; d <= n; d++ {
		dart := dartmesh.Dart(d)
		twin := mesh.Phi2(dart)
		if uint32(twin) < uint32(dart) {
			continue
		}
		from := embeddingVertexID(mesh.VertexEmbedding(dart))
		to := embeddingVertexID(mesh.VertexEmbedding(twin))
		if from == to {
			continue
		}
		fromPos := positions.Position(mesh.VertexEmbedding(dart))
		toPos := positions.Position(mesh.VertexEmbedding(twin))
		weight := int64(r3.Norm(r3.Sub(toPos, fromPos)) * 1e6)
		if _, err := g.AddEdge(from, to, weight); err != nil {
			continue
		}
	}

	distance := make(map[r3.Vec]int64)
	for _, src := range sources {
		srcID := embeddingVertexID(src)
		if !g.HasVertex(srcID) {
			continue
		}
		dist, err := g.ShortestDistances(srcID, maxDistance)
		if err != nil {
			continue
		}
		for vid, d := range dist {
			p := positions.Position(embeddingFromVertexID(vid))
			if prev, ok := distance[p]; !ok || d < prev {
				distance[p] = d
			}
		}
	}

	return &GraphDistance{maxDistance: maxDistance, distance: distance}, true
}

// Contains reports whether p was within maxDistance of any source, as
// measured at construction time.
func (g *GraphDistance) Contains(p r3.Vec) bool {
	d, ok := g.distance[p]

	return ok && d <= g.maxDistance
}

func embeddingVertexID(id dartmesh.EmbeddingID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func embeddingFromVertexID(vid string) dartmesh.EmbeddingID {
	n, _ := strconv.ParseUint(vid, 10, 32)

	return dartmesh.EmbeddingID(n)
}
