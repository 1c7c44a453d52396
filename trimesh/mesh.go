package trimesh

import "github.com/meshforge/vdpm/dartmesh"

// Phi1 returns the next dart around the face incident to d.
func (m *TriMesh) Phi1(d dartmesh.Dart) dartmesh.Dart {
	return m.rec(d).next
}

// PhiM1 returns the previous dart around the face incident to d.
func (m *TriMesh) PhiM1(d dartmesh.Dart) dartmesh.Dart {
	return m.rec(d).prev
}

// Phi2 returns the dart opposite d across its edge.
func (m *TriMesh) Phi2(d dartmesh.Dart) dartmesh.Dart {
	return m.rec(d).twin
}

// VertexEmbedding returns the embedding currently assigned to d's vertex
// orbit.
func (m *TriMesh) VertexEmbedding(d dartmesh.Dart) dartmesh.EmbeddingID {
	return m.rec(d).vertexEmb
}

// EdgeEmbedding returns the embedding currently assigned to d's edge
// orbit.
func (m *TriMesh) EdgeEmbedding(d dartmesh.Dart) dartmesh.EmbeddingID {
	return m.rec(d).edgeEmb
}

// SetVertexEmbedding assigns id to every dart in d's vertex orbit
// (rot(h) = Phi2(PhiM1(h)), the standard vertex-rotation generator for a
// closed combinatorial map).
func (m *TriMesh) SetVertexEmbedding(d dartmesh.Dart, id dartmesh.EmbeddingID) {
	for _, h := range m.vertexOrbit(d) {
		m.rec(h).vertexEmb = id
	}
}

// SetEdgeEmbedding assigns id to both darts of d's edge orbit.
func (m *TriMesh) SetEdgeEmbedding(d dartmesh.Dart, id dartmesh.EmbeddingID) {
	m.rec(d).edgeEmb = id
	m.rec(m.Phi2(d)).edgeEmb = id
}

// NewVertexEmbedding mints a fresh EmbeddingID and assigns it to d's
// vertex orbit.
func (m *TriMesh) NewVertexEmbedding(d dartmesh.Dart) dartmesh.EmbeddingID {
	m.nextVertexEmb++
	id := m.nextVertexEmb
	m.SetVertexEmbedding(d, id)

	return id
}

// NewEdgeEmbedding mints a fresh EmbeddingID and assigns it to d's edge
// orbit.
func (m *TriMesh) NewEdgeEmbedding(d dartmesh.Dart) dartmesh.EmbeddingID {
	m.nextEdgeEmb++
	id := m.nextEdgeEmb
	m.SetEdgeEmbedding(d, id)

	return id
}

// CopyVertexEmbedding assigns src's vertex-orbit embedding to dst's
// vertex orbit.
func (m *TriMesh) CopyVertexEmbedding(dst, src dartmesh.Dart) {
	m.SetVertexEmbedding(dst, m.VertexEmbedding(src))
}

// vertexOrbit enumerates every dart sharing d's origin vertex, walking
// the rotation rot(h) = Phi2(PhiM1(h)) until it returns to d. Bounded by
// DartCount so a corrupted twin/next graph cannot loop forever.
func (m *TriMesh) vertexOrbit(d dartmesh.Dart) []dartmesh.Dart {
	orbit := make([]dartmesh.Dart, 0, 6)
	h := d
	for i := 0; i <= m.DartCount(); i++ {
		orbit = append(orbit, h)
		h = m.Phi2(m.PhiM1(h))
		if h == d {
			break
		}
	}

	return orbit
}

// FaceDarts returns the darts of the face incident to d, in Phi1 order,
// starting at d. Every face in a TriMesh is a triangle.
func (m *TriMesh) FaceDarts(d dartmesh.Dart) []dartmesh.Dart {
	d1 := m.Phi1(d)
	d2 := m.Phi1(d1)

	return []dartmesh.Dart{d, d1, d2}
}

// ExtractTrianglePair removes the two triangles incident to the edge
// (d, Phi2(d)). It retwins exactly the four side darts around the
// collapsing edge; the six darts of the two removed faces are left
// untouched so InsertTrianglePair can restore them later.
func (m *TriMesh) ExtractTrianglePair(d dartmesh.Dart) error {
	dd := m.Phi2(d)
	leftEdge := m.Phi2(m.Phi1(d))
	rightEdge := m.Phi2(m.PhiM1(dd))
	oppLeftEdge := m.Phi2(m.PhiM1(d))
	oppRightEdge := m.Phi2(m.Phi1(dd))

	if leftEdge == oppLeftEdge || rightEdge == oppRightEdge || leftEdge == rightEdge {
		return ErrNonManifold
	}
	// A side dart lying on one of the two removed triangles (the two faces
	// of a two-triangle pillow) leaves no surviving face to retwin onto.
	removed := [6]dartmesh.Dart{d, m.Phi1(d), m.PhiM1(d), dd, m.Phi1(dd), m.PhiM1(dd)}
	for _, side := range [4]dartmesh.Dart{leftEdge, rightEdge, oppLeftEdge, oppRightEdge} {
		for _, r := range removed {
			if side == r {
				return ErrNonManifold
			}
		}
	}

	m.retwin(leftEdge, oppLeftEdge)
	m.retwin(rightEdge, oppRightEdge)

	return nil
}

// InsertTrianglePair is the exact inverse of ExtractTrianglePair: it
// restores the two triangles incident to d by re-reading the frozen twin
// pointers left on Phi1(d)/PhiM1(d)/Phi1(dd)/PhiM1(dd) by the matching
// ExtractTrianglePair call.
func (m *TriMesh) InsertTrianglePair(d, leftEdge, rightEdge dartmesh.Dart) error {
	dd := m.Phi2(d)
	d1 := m.Phi1(d)
	d2 := m.PhiM1(d)
	dd1 := m.Phi1(dd)
	dd2 := m.PhiM1(dd)

	oppLeftEdge := m.rec(d2).twin
	oppRightEdge := m.rec(dd1).twin

	if m.rec(d1).twin != leftEdge || m.rec(dd2).twin != rightEdge {
		return ErrNonManifold
	}

	m.retwin(leftEdge, d1)
	m.retwin(oppLeftEdge, d2)
	m.retwin(rightEdge, dd2)
	m.retwin(oppRightEdge, dd1)

	return nil
}

// retwin makes a and b mutual twins.
func (m *TriMesh) retwin(a, b dartmesh.Dart) {
	m.rec(a).twin = b
	m.rec(b).twin = a
}
