package approx

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/dartmesh"
)

// PositionSetter is implemented by mesh adapters that carry a readable and
// writable position attribute (trimesh.TriMesh does).
type PositionSetter interface {
	Position(id dartmesh.EmbeddingID) r3.Vec
	SetPosition(id dartmesh.EmbeddingID, p r3.Vec)
}

// MidpointApproximator is the canonical "position" Approximator: it merges
// an edge's two endpoints to their midpoint. Collapses run strictly one at
// a time with no interleaving (spec §5, single-threaded cooperative core),
// so a single pending slot is enough state between Approximate and the
// AffectApprox that follows it — there is never a second collapse's
// Approximate in flight before the first's AffectApprox runs.
type MidpointApproximator struct {
	positions    PositionSetter
	pendingFrom  r3.Vec
	pendingTo    r3.Vec
	pendingValue r3.Vec
}

// NewMidpointApproximator returns an uninitialised MidpointApproximator;
// call Init before use.
func NewMidpointApproximator() *MidpointApproximator {
	return &MidpointApproximator{}
}

// Init binds the approximator to mesh. It fails if mesh does not also
// implement PositionSetter.
func (a *MidpointApproximator) Init(mesh dartmesh.Mesh) bool {
	positions, ok := mesh.(PositionSetter)
	if !ok {
		return false
	}
	a.positions = positions

	return true
}

// Approximate computes the midpoint of d's edge, ahead of the collapse
// that will remove it.
func (a *MidpointApproximator) Approximate(mesh dartmesh.Mesh, d dartmesh.Dart) {
	a.pendingFrom = a.positions.Position(mesh.VertexEmbedding(d))
	a.pendingTo = a.positions.Position(mesh.VertexEmbedding(mesh.Phi2(d)))
	a.pendingValue = r3.Scale(0.5, r3.Add(a.pendingFrom, a.pendingTo))
}

// SaveApprox is a no-op for MidpointApproximator: the detail a split would
// need to restore (the two endpoint positions) is already held in
// pendingFrom/pendingTo from the preceding Approximate call, and the
// engine itself snapshots and replays per-dart embeddings around a split
// (spec §4.8), not the approximator.
func (a *MidpointApproximator) SaveApprox(mesh dartmesh.Mesh, d dartmesh.Dart) {}

// AffectApprox writes the most recently computed midpoint to the merged
// vertex reached through d.
func (a *MidpointApproximator) AffectApprox(mesh dartmesh.Mesh, d dartmesh.Dart) {
	a.positions.SetPosition(mesh.VertexEmbedding(d), a.pendingValue)
}

// ApproximatedAttributeName reports "position", the name the builder
// checks for when picking the canonical geometry approximator.
func (a *MidpointApproximator) ApproximatedAttributeName() string {
	return "position"
}
