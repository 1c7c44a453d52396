package selector_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/dartmesh"
	"github.com/meshforge/vdpm/selector"
	"github.com/meshforge/vdpm/trimesh"
)

func TestLengthSelector_OrdersAscendingAndExhausts(t *testing.T) {
	mesh := trimesh.NewTetrahedron()
	marker := dartmesh.NewFaceMarker(mesh)
	sel := selector.NewLengthSelector(marker)

	if ok := sel.Init(mesh); !ok {
		t.Fatalf("Init() = false, want true")
	}

	var lengths []float64
	for {
		d, ok := sel.NextEdge(mesh)
		if !ok {
			break
		}
		from := mesh.Position(mesh.VertexEmbedding(d))
		to := mesh.Position(mesh.VertexEmbedding(mesh.Phi2(d)))
		lengths = append(lengths, r3.Norm(r3.Sub(to, from)))
	}

	if len(lengths) != 6 {
		t.Fatalf("got %d candidate edges, want 6 (tetrahedron has 6 undirected edges)", len(lengths))
	}
	for i := 1; i < len(lengths); i++ {
		if lengths[i] < lengths[i-1] {
			t.Fatalf("lengths not ascending: %v", lengths)
		}
	}

	if _, ok := sel.NextEdge(mesh); ok {
		t.Fatalf("expected exhaustion after draining all candidates")
	}
}

func TestLengthSelector_SkipsMarkedDarts(t *testing.T) {
	mesh := trimesh.NewTetrahedron()
	marker := dartmesh.NewFaceMarker(mesh)
	sel := selector.NewLengthSelector(marker)
	sel.Init(mesh)

	first, ok := sel.NextEdge(mesh)
	if !ok {
		t.Fatalf("expected a first candidate")
	}

	marker.MarkOrbit(first)
	marker.MarkOrbit(mesh.Phi2(first))

	sel2 := selector.NewLengthSelector(marker)
	sel2.Init(mesh)
	for {
		d, ok := sel2.NextEdge(mesh)
		if !ok {
			break
		}
		if d == first {
			t.Fatalf("marked dart %d was returned by NextEdge", d)
		}
	}
}

func TestMSTSelector_OffersEveryEdge(t *testing.T) {
	mesh := trimesh.NewIcosahedron()
	marker := dartmesh.NewFaceMarker(mesh)
	sel := selector.NewMSTSelector(marker)

	if ok := sel.Init(mesh); !ok {
		t.Fatalf("Init() = false, want true")
	}

	count := 0
	for {
		_, ok := sel.NextEdge(mesh)
		if !ok {
			break
		}
		count++
	}
	if count != 30 {
		t.Fatalf("got %d candidate edges, want 30 (icosahedron has 30 undirected edges)", count)
	}
}
