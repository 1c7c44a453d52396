// Package trimesh implements dartmesh.Mesh over an arena of half-edge
// records, grounded on the doubly-connected-edge-list shape used
// throughout the retrieval pack's geometry kernels (origin/twin/next/prev
// per dart) and on core's arena-plus-dense-ID style.
//
// A TriMesh never deletes a dart: ExtractTrianglePair retwins exactly the
// four side darts around a collapsing edge and leaves the six darts of
// the two removed faces untouched, so InsertTrianglePair can restore the
// original topology by reading those frozen twin pointers back.
package trimesh

import "errors"

// ErrNonManifold is returned by ExtractTrianglePair when collapsing the
// given edge would produce a non-manifold local configuration (e.g. two
// side darts that would have to become twins of themselves). The mesh
// is left untouched.
var ErrNonManifold = errors.New("trimesh: operation would produce non-manifold topology")

// ErrBadDart reports a Dart index outside the mesh's allocated range. No
// TriMesh method returns it; an out-of-range index panics.
var ErrBadDart = errors.New("trimesh: dart out of range")
