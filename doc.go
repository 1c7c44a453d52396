// Package meshforge is the module root for a view-dependent progressive
// mesh (VDPM) engine: edge collapses and vertex splits organized into a
// binary forest, driven toward a region-of-interest by walking an active
// refinement front.
//
// Subpackages:
//
//	dartmesh/  — Dart handle, EmbeddingID, the Mesh and Marker interfaces
//	trimesh/   — concrete half-edge triangle mesh, NewTetrahedron/NewIcosahedron
//	vsplit/    — VSplit record, the node forest, the active front
//	selector/  — EdgeSelector implementations (which edge collapses next)
//	approx/    — Approximator implementations (where a collapsed vertex lands)
//	roi/       — region-of-interest predicates
//	vdpm/      — Engine: builder, legality gate, refine/coarsen, drive loop
//
// Nothing in this package is imported by the subpackages below; it exists
// to carry module-level documentation, mirroring how the teacher repo this
// module started from documents itself from its root.
package meshforge
