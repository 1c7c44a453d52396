package approx

import "github.com/meshforge/vdpm/dartmesh"

// Approximator computes a single attribute's value for a collapse and
// writes it onto the merged cell; no Approximator method is called when
// the matching split runs. The shape mirrors how
// builder.WeightFn is a small pluggable function swapped in at
// construction time rather than hard-coded into the algorithm that uses
// it.
type Approximator interface {
	// Init prepares the approximator against a mesh snapshot. A false
	// return marks the owning engine's initOk flag false.
	Init(mesh dartmesh.Mesh) bool

	// Approximate computes the merged value for the edge about to be
	// collapsed at d, without mutating the mesh.
	Approximate(mesh dartmesh.Mesh, d dartmesh.Dart)

	// SaveApprox records whatever detail a later split needs to restore
	// the values this collapse discards.
	SaveApprox(mesh dartmesh.Mesh, d dartmesh.Dart)

	// AffectApprox writes the value computed by the most recent
	// Approximate/SaveApprox pair onto the merged cell reached through d.
	AffectApprox(mesh dartmesh.Mesh, d dartmesh.Dart)

	// ApproximatedAttributeName names the attribute this approximator
	// owns. The builder treats the approximator returning "position" as
	// the canonical one for vertex geometry.
	ApproximatedAttributeName() string
}
