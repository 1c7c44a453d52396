package trimesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/dartmesh"
)

// halfEdgeRecord is one directed half-edge: next/prev close its face
// orbit, twin is the opposite dart across the edge, and vertexEmb/edgeEmb
// are the attribute cells the dart currently reads through.
//
// Grounded on the origin/twin/next/prev halfEdgeRecord shape found in the
// pack's DCEL implementations (other_examples/*dcel.go.go).
type halfEdgeRecord struct {
	next, prev, twin   dartmesh.Dart
	vertexEmb, edgeEmb dartmesh.EmbeddingID
}

// TriMesh is a concrete triangle mesh stored as a dense arena of darts,
// indexed 1..len(darts) (index 0 is the dartmesh.NilDart sentinel and is
// never a live record).
type TriMesh struct {
	darts []halfEdgeRecord

	positions map[dartmesh.EmbeddingID]r3.Vec

	nextVertexEmb dartmesh.EmbeddingID
	nextEdgeEmb   dartmesh.EmbeddingID
}

// newEmpty allocates a TriMesh with the nil sentinel record in place.
func newEmpty() *TriMesh {
	return &TriMesh{
		darts:     make([]halfEdgeRecord, 1), // index 0 unused
		positions: make(map[dartmesh.EmbeddingID]r3.Vec),
	}
}

// Position returns the current position of the vertex embedding id. It
// is the canonical attribute table the "position" Approximator (see
// package approx) reads and writes.
func (m *TriMesh) Position(id dartmesh.EmbeddingID) r3.Vec {
	return m.positions[id]
}

// SetPosition assigns a position to the vertex embedding id.
func (m *TriMesh) SetPosition(id dartmesh.EmbeddingID, p r3.Vec) {
	m.positions[id] = p
}

// DartCount reports how many darts are currently allocated, including
// darts belonging to collapsed (frozen) faces.
func (m *TriMesh) DartCount() int {
	return len(m.darts) - 1
}

// newDart appends a fresh, unlinked dart record and returns its handle.
func (m *TriMesh) newDart() dartmesh.Dart {
	m.darts = append(m.darts, halfEdgeRecord{})

	return dartmesh.Dart(len(m.darts) - 1)
}

func (m *TriMesh) rec(d dartmesh.Dart) *halfEdgeRecord {
	return &m.darts[d]
}
