package trimesh_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/dartmesh"
	"github.com/meshforge/vdpm/trimesh"
)

func TestNewFromFaces_RejectsOpenSurface(t *testing.T) {
	positions := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	// A single triangle has no reverse dart for any of its three edges:
	// it is an open surface, not a closed 2-manifold.
	faces := [][3]int{{0, 1, 2}}

	if _, err := trimesh.NewFromFaces(positions, faces); err == nil {
		t.Fatalf("NewFromFaces() on an open single-triangle surface returned nil error, want non-nil")
	}
}

func TestNewTetrahedron_FaceOrbitsAreTriangles(t *testing.T) {
	m := trimesh.NewTetrahedron()
	if got := m.DartCount(); got != 12 {
		t.Fatalf("DartCount() = %d, want 12 (4 faces * 3 darts)", got)
	}

	for d := dartmesh.Dart(1); int(d) <= m.DartCount(); d++ {
		face := m.FaceDarts(d)
		if len(face) != 3 {
			t.Fatalf("FaceDarts(%d) has %d darts, want 3", d, len(face))
		}
		if m.Phi1(face[2]) != face[0] {
			t.Fatalf("face orbit starting at %d does not close after 3 steps", d)
		}
		if m.PhiM1(face[0]) != face[2] {
			t.Fatalf("PhiM1 is not the inverse of Phi1 at %d", d)
		}
	}
}

func TestNewTetrahedron_TwinsAreInvolutions(t *testing.T) {
	m := trimesh.NewTetrahedron()
	for d := dartmesh.Dart(1); int(d) <= m.DartCount(); d++ {
		if m.Phi2(m.Phi2(d)) != d {
			t.Fatalf("Phi2 is not an involution at dart %d", d)
		}
		if m.Phi2(d) == d {
			t.Fatalf("dart %d is its own twin", d)
		}
	}
}

func TestNewIcosahedron_DartAndVertexCounts(t *testing.T) {
	m := trimesh.NewIcosahedron()
	if got := m.DartCount(); got != 60 {
		t.Fatalf("DartCount() = %d, want 60 (20 faces * 3 darts)", got)
	}
}

func TestExtractInsertTrianglePair_RoundTrip(t *testing.T) {
	m := trimesh.NewTetrahedron()
	d := dartmesh.Dart(1)
	dd := m.Phi2(d)

	leftEdge := m.Phi2(m.Phi1(d))
	rightEdge := m.Phi2(m.PhiM1(dd))
	oppLeftEdge := m.Phi2(m.PhiM1(d))
	oppRightEdge := m.Phi2(m.Phi1(dd))

	beforeLeftTwin := m.Phi2(leftEdge)
	beforeRightTwin := m.Phi2(rightEdge)

	if err := m.ExtractTrianglePair(d); err != nil {
		t.Fatalf("ExtractTrianglePair: %v", err)
	}

	if got := m.Phi2(leftEdge); got != oppLeftEdge {
		t.Fatalf("after extract, Phi2(leftEdge) = %d, want oppLeftEdge %d", got, oppLeftEdge)
	}
	if got := m.Phi2(rightEdge); got != oppRightEdge {
		t.Fatalf("after extract, Phi2(rightEdge) = %d, want oppRightEdge %d", got, oppRightEdge)
	}

	if err := m.InsertTrianglePair(d, leftEdge, rightEdge); err != nil {
		t.Fatalf("InsertTrianglePair: %v", err)
	}

	if got := m.Phi2(leftEdge); got != beforeLeftTwin {
		t.Fatalf("round-trip: Phi2(leftEdge) = %d, want restored %d", got, beforeLeftTwin)
	}
	if got := m.Phi2(rightEdge); got != beforeRightTwin {
		t.Fatalf("round-trip: Phi2(rightEdge) = %d, want restored %d", got, beforeRightTwin)
	}
	if got := m.Phi1(d); got == dartmesh.NilDart {
		t.Fatalf("face(d) was not preserved across the round-trip")
	}
}

func TestVertexEmbedding_SetPropagatesAroundOrbit(t *testing.T) {
	m := trimesh.NewTetrahedron()
	d := dartmesh.Dart(1)
	orig := m.VertexEmbedding(d)

	m.SetVertexEmbedding(d, 999)
	if got := m.VertexEmbedding(d); got != 999 {
		t.Fatalf("VertexEmbedding(d) = %d, want 999", got)
	}
	// A dart sharing d's origin, reached by rotating around the vertex, must
	// see the same updated embedding.
	rotated := m.Phi2(m.PhiM1(d))
	if got := m.VertexEmbedding(rotated); got != 999 {
		t.Fatalf("VertexEmbedding(rotated) = %d, want 999 (orbit must share embedding)", got)
	}
	_ = orig
}
