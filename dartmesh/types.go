// Package dartmesh declares the narrow interfaces the rest of this module
// programs against: a dart handle, an embedding-ID handle, and the Mesh
// and Marker contracts a concrete mesh container must satisfy. Nothing in
// this package knows how a mesh is actually stored — that is trimesh's job.
package dartmesh

// Dart is an opaque handle to one directed half-edge. It carries no
// geometry and no face/vertex identity of its own; both are reached by
// navigating through a Mesh.
type Dart uint32

// NilDart is the sentinel for "no dart", mirroring the empty-string
// sentinel core.Vertex/core.Edge use for "no vertex"/"no edge".
const NilDart Dart = 0

// EmbeddingID names a vertex- or edge-attribute cell. IDs are minted by a
// Mesh and are opaque outside it: the core never interprets the integer
// value, only compares it for equality or uses it as a map key.
type EmbeddingID uint32

// NilEmbedding is the zero value, used before a dart has ever been
// embedded.
const NilEmbedding EmbeddingID = 0
