package dartmesh

import "errors"

// ErrNilDart reports an attempt to navigate from NilDart. Nothing in this
// module returns it: trimesh.TriMesh navigates from NilDart to NilDart.
var ErrNilDart = errors.New("dartmesh: nil dart")

// ErrUnknownEmbedding reports a dart whose embedding has never been set.
// Nothing in this module returns it: an unset embedding reads as
// NilEmbedding.
var ErrUnknownEmbedding = errors.New("dartmesh: embedding not set")
