package selector

import "github.com/meshforge/vdpm/dartmesh"

// EdgeSelector drives the build-time collapse order: the builder asks for
// one edge at a time and reports back once that edge has actually been
// collapsed, mirroring BFS's enqueue/dequeue hook pair rather than handing
// the selector direct mesh-mutation access.
type EdgeSelector interface {
	// Init prepares the selector against a mesh snapshot. A false return
	// marks the owning engine's initOk flag false (spec §7 init failure).
	Init(mesh dartmesh.Mesh) bool

	// NextEdge reports the next collapse candidate. A false second return
	// means the selector has no more candidates and the builder should
	// stop.
	NextEdge(mesh dartmesh.Mesh) (dartmesh.Dart, bool)

	// UpdateBeforeCollapse notifies the selector that d is about to be
	// collapsed, while its topology is still intact.
	UpdateBeforeCollapse(mesh dartmesh.Mesh, d dartmesh.Dart)

	// UpdateAfterCollapse notifies the selector that the collapse
	// finished, naming the two surviving cross-edge darts.
	UpdateAfterCollapse(mesh dartmesh.Mesh, d2, dd2 dartmesh.Dart)
}
