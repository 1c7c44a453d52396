// Package dartmesh declares the narrow interfaces the rest of this module
// programs against: a dart handle, an embedding-ID handle, and the Mesh
// and Marker contracts a concrete mesh container must satisfy. Nothing in
// this package knows how a mesh is actually stored — that is trimesh's job.
package dartmesh

// Mesh is the combinatorial-map facade the core programs against. A
// concrete implementation (trimesh.TriMesh) owns darts, faces, and
// per-orbit attribute cells; Mesh exposes only the operations the
// vertex-split forest and its drive loops need.
//
// Navigation (Phi1, PhiM1, Phi2) must be O(1). FaceDarts walks one face
// orbit via the Phi1-closure starting at d and must be O(valence).
// ExtractTrianglePair/InsertTrianglePair are the only mutators and are
// exact inverses of one another when called on darts that satisfy the
// legality predicates in vdpm.
type Mesh interface {
	// Phi1 returns the next dart around the face incident to d.
	Phi1(d Dart) Dart
	// PhiM1 returns the previous dart around the face incident to d
	// (the inverse of Phi1).
	PhiM1(d Dart) Dart
	// Phi2 returns the dart opposite d across its edge.
	Phi2(d Dart) Dart

	// VertexEmbedding returns the embedding currently assigned to the
	// vertex orbit d belongs to.
	VertexEmbedding(d Dart) EmbeddingID
	// EdgeEmbedding returns the embedding currently assigned to the edge
	// orbit d belongs to.
	EdgeEmbedding(d Dart) EmbeddingID
	// SetVertexEmbedding assigns id to every dart in d's vertex orbit.
	SetVertexEmbedding(d Dart, id EmbeddingID)
	// SetEdgeEmbedding assigns id to every dart in d's edge orbit.
	SetEdgeEmbedding(d Dart, id EmbeddingID)
	// NewVertexEmbedding mints a fresh EmbeddingID and assigns it to d's
	// vertex orbit, returning the new ID.
	NewVertexEmbedding(d Dart) EmbeddingID
	// NewEdgeEmbedding mints a fresh EmbeddingID and assigns it to d's
	// edge orbit, returning the new ID.
	NewEdgeEmbedding(d Dart) EmbeddingID
	// CopyVertexEmbedding assigns src's vertex-orbit embedding to dst's
	// vertex orbit, without mutating src.
	CopyVertexEmbedding(dst, src Dart)

	// FaceDarts returns the darts of the face incident to d, in Phi1
	// order, starting at d.
	FaceDarts(d Dart) []Dart

	// ExtractTrianglePair removes the two triangles incident to the edge
	// (d, Phi2(d)), merging their vertices into one. It returns an error
	// (trimesh.ErrNonManifold in trimesh.TriMesh) and leaves the mesh
	// untouched if the local topology would become non-manifold.
	ExtractTrianglePair(d Dart) error
	// InsertTrianglePair is the exact inverse of ExtractTrianglePair: it
	// re-splits the vertex at d into two, restoring the two triangles
	// using leftEdge/rightEdge as the new boundary darts.
	InsertTrianglePair(d, leftEdge, rightEdge Dart) error
}

// FaceWalker is the subset of Mesh a Marker needs: enough to enumerate
// the darts of one face orbit. Markers are written against this instead
// of the full Mesh interface so that tests can exercise marking logic
// against a bare stub.
type FaceWalker interface {
	FaceDarts(d Dart) []Dart
}

// Marker is a boolean dart-set keyed by face orbit: marking or
// unmarking any dart of a face marks or unmarks the whole face. A face
// is "inactive" (collapsed away) iff some dart on its boundary is
// marked.
type Marker interface {
	// MarkOrbit marks every dart of the face incident to d.
	MarkOrbit(d Dart)
	// UnmarkOrbit unmarks every dart of the face incident to d.
	UnmarkOrbit(d Dart)
	// IsMarked reports whether d itself carries the mark.
	IsMarked(d Dart) bool
}
