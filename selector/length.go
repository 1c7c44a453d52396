package selector

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/dartmesh"
)

// DartEnumerator is implemented by mesh adapters that can report how many
// darts they currently hold, letting LengthSelector build its initial
// candidate queue without the builder walking the mesh on the selector's
// behalf.
type DartEnumerator interface {
	DartCount() int
}

// PositionLookup is implemented by mesh adapters that carry a position
// attribute, the one geometric fact LengthSelector needs to rank edges.
type PositionLookup interface {
	Position(id dartmesh.EmbeddingID) r3.Vec
}

// LengthSelector offers the shortest live edge first, the geometric analog
// of prim_kruskal.Kruskal's "sort once, then scan" structure: edges are
// ranked a single time in Init, and NextEdge lazily skips any entry whose
// face orbit has since been marked collapsed rather than re-sorting.
type LengthSelector struct {
	mesh      dartmesh.Mesh
	marker    dartmesh.Marker
	candidate []dartmesh.Dart
	cursor    int
}

// NewLengthSelector returns a LengthSelector that consults marker to skip
// darts whose face has already been collapsed.
func NewLengthSelector(marker dartmesh.Marker) *LengthSelector {
	return &LengthSelector{marker: marker}
}

// Init requires mesh to also implement DartEnumerator and PositionLookup;
// any other mesh adapter fails initialisation rather than selecting
// arbitrarily.
func (s *LengthSelector) Init(mesh dartmesh.Mesh) bool {
	enumerator, ok := mesh.(DartEnumerator)
	if !ok {
		return false
	}
	positions, ok := mesh.(PositionLookup)
	if !ok {
		return false
	}

	s.mesh = mesh
	s.cursor = 0
	s.candidate = s.candidate[:0]

	n := enumerator.DartCount()
	for d := 1; d <= n; d++ {
		dart := dartmesh.Dart(d)
		twin := mesh.Phi2(dart)
		// one candidate per undirected edge: keep the smaller of the two
		// half-edge indices.
		if uint32(twin) < uint32(dart) {
			continue
		}
		s.candidate = append(s.candidate, dart)
	}

	sort.SliceStable(s.candidate, func(i, j int) bool {
		return edgeLength(mesh, positions, s.candidate[i]) < edgeLength(mesh, positions, s.candidate[j])
	})

	return true
}

// NextEdge returns the shortest remaining unmarked edge.
func (s *LengthSelector) NextEdge(mesh dartmesh.Mesh) (dartmesh.Dart, bool) {
	for s.cursor < len(s.candidate) {
		d := s.candidate[s.cursor]
		s.cursor++
		if s.marker != nil && s.marker.IsMarked(d) {
			continue
		}

		return d, true
	}

	return dartmesh.NilDart, false
}

// UpdateBeforeCollapse is a no-op: LengthSelector's ranking was fixed at
// Init and does not depend on per-collapse notification.
func (s *LengthSelector) UpdateBeforeCollapse(mesh dartmesh.Mesh, d dartmesh.Dart) {}

// UpdateAfterCollapse is a no-op for the same reason.
func (s *LengthSelector) UpdateAfterCollapse(mesh dartmesh.Mesh, d2, dd2 dartmesh.Dart) {}

func edgeLength(mesh dartmesh.Mesh, positions PositionLookup, d dartmesh.Dart) float64 {
	from := positions.Position(mesh.VertexEmbedding(d))
	to := positions.Position(mesh.VertexEmbedding(mesh.Phi2(d)))

	return r3.Norm(r3.Sub(to, from))
}
