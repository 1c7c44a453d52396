package approx_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/approx"
	"github.com/meshforge/vdpm/dartmesh"
	"github.com/meshforge/vdpm/trimesh"
)

func TestMidpointApproximator_AffectApproxWritesMidpoint(t *testing.T) {
	mesh := trimesh.NewTetrahedron()
	a := approx.NewMidpointApproximator()
	if ok := a.Init(mesh); !ok {
		t.Fatalf("Init() = false, want true")
	}

	d := dartmesh.Dart(1)
	from := mesh.Position(mesh.VertexEmbedding(d))
	to := mesh.Position(mesh.VertexEmbedding(mesh.Phi2(d)))
	want := r3.Scale(0.5, r3.Add(from, to))

	a.Approximate(mesh, d)
	a.SaveApprox(mesh, d)
	a.AffectApprox(mesh, d)

	got := mesh.Position(mesh.VertexEmbedding(d))
	if got != want {
		t.Fatalf("AffectApprox wrote %+v, want midpoint %+v", got, want)
	}
}

func TestMidpointApproximator_AttributeName(t *testing.T) {
	a := approx.NewMidpointApproximator()
	if name := a.ApproximatedAttributeName(); name != "position" {
		t.Fatalf("ApproximatedAttributeName() = %q, want %q", name, "position")
	}
}
