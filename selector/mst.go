package selector

import (
	"sort"
	"strconv"

	"github.com/meshforge/vdpm/core"

	"github.com/meshforge/vdpm/dartmesh"
)

// MSTSelector offers every non-backbone edge, shortest first, before
// offering any backbone edge: it snapshots the mesh wireframe into a
// *core.Graph and runs Graph.MinimumSpanningTree once in Init to decide
// which edges form a minimum spanning tree, then orders collapses to
// erode everything off that tree before touching it.
type MSTSelector struct {
	marker    dartmesh.Marker
	candidate []dartmesh.Dart
	cursor    int
}

// NewMSTSelector returns an MSTSelector that consults marker to skip darts
// whose face has already been collapsed.
func NewMSTSelector(marker dartmesh.Marker) *MSTSelector {
	return &MSTSelector{marker: marker}
}

// Init requires mesh to also implement DartEnumerator and PositionLookup.
func (s *MSTSelector) Init(mesh dartmesh.Mesh) bool {
	enumerator, ok := mesh.(DartEnumerator)
	if !ok {
		return false
	}
	positions, ok := mesh.(PositionLookup)
	if !ok {
		return false
	}

	n := enumerator.DartCount()
	g := core.NewGraph(core.WithWeighted())
	dartOfEdgeID := make(map[string]dartmesh.Dart, n/2)
	weightOf := make(map[dartmesh.Dart]int64, n/2)

	for d := 1; d <= n; d++ {
		dart := dartmesh.Dart(d)
		twin := mesh.Phi2(dart)
		if uint32(twin) < uint32(dart) {
			continue
		}

		from := strconv.FormatUint(uint64(mesh.VertexEmbedding(dart)), 10)
		to := strconv.FormatUint(uint64(mesh.VertexEmbedding(twin)), 10)
		if from == to {
			continue
		}
		weight := int64(edgeLength(mesh, positions, dart) * 1e6)

		eid, err := g.AddEdge(from, to, weight)
		if err != nil {
			// parallel wireframe edge between the same embeddings (can
			// happen after earlier collapses fold two faces together);
			// keep the first one seen and skip the duplicate.
			continue
		}
		dartOfEdgeID[eid] = dart
		weightOf[dart] = weight
	}

	// on a disconnected wireframe MinimumSpanningTree covers only the
	// component of its start vertex; onBackbone only marks what it
	// actually reached, so the rest falls through to plain shortest-first
	// order below.
	mst, _ := g.MinimumSpanningTree()

	onBackbone := make(map[dartmesh.Dart]bool, len(mst))
	for _, e := range mst {
		onBackbone[dartOfEdgeID[e.ID]] = true
	}

	s.candidate = s.candidate[:0]
	for dart := range weightOf {
		if !onBackbone[dart] {
			s.candidate = append(s.candidate, dart)
		}
	}
	sort.SliceStable(s.candidate, func(i, j int) bool {
		return weightOf[s.candidate[i]] < weightOf[s.candidate[j]]
	})

	backbone := make([]dartmesh.Dart, 0, len(onBackbone))
	for dart := range onBackbone {
		backbone = append(backbone, dart)
	}
	sort.SliceStable(backbone, func(i, j int) bool {
		return weightOf[backbone[i]] < weightOf[backbone[j]]
	})
	s.candidate = append(s.candidate, backbone...)
	s.cursor = 0

	return true
}

// NextEdge returns the next candidate: non-backbone edges first, then
// backbone edges, each group shortest first.
func (s *MSTSelector) NextEdge(mesh dartmesh.Mesh) (dartmesh.Dart, bool) {
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

// UpdateBeforeCollapse is a no-op: the backbone/non-backbone ranking was
// fixed once in Init.
func (s *MSTSelector) UpdateBeforeCollapse(mesh dartmesh.Mesh, d dartmesh.Dart) {}

// UpdateAfterCollapse is a no-op for the same reason.
func (s *MSTSelector) UpdateAfterCollapse(mesh dartmesh.Mesh, d2, dd2 dartmesh.Dart) {}
