package vsplit

import "github.com/meshforge/vdpm/dartmesh"

// VSplit is the immutable record of one edge-collapse / vertex-split
// operation on an interior edge e = (d, d̄ = Phi2(d)). Edge and the four
// side darts are fixed at construction time; the three approximation IDs
// are assigned once, immediately after the collapse that produced this
// VSplit (Builder step, see vdpm.Engine.CreatePM).
type VSplit struct {
	// Edge is the surviving dart d.
	Edge dartmesh.Dart

	// LeftEdge, RightEdge, OppLeftEdge, OppRightEdge are the four side
	// darts captured before the collapse: LeftEdge = Phi2(Phi1(d)),
	// RightEdge = Phi2(PhiM1(d̄)), OppLeftEdge = Phi2(PhiM1(d)),
	// OppRightEdge = Phi2(Phi1(d̄)).
	LeftEdge     dartmesh.Dart
	RightEdge    dartmesh.Dart
	OppLeftEdge  dartmesh.Dart
	OppRightEdge dartmesh.Dart

	// ApproxV is the merged vertex embedding produced by the collapse.
	ApproxV dartmesh.EmbeddingID
	// ApproxE1, ApproxE2 are the two merged edge embeddings produced by
	// the collapse (on LeftEdge's and RightEdge's surviving edges).
	ApproxE1 dartmesh.EmbeddingID
	ApproxE2 dartmesh.EmbeddingID
}

// NewVSplit builds a VSplit from the edge dart and its four pre-computed
// side darts. The three approximation IDs are filled in later, by
// SetApprox, once the collapse that uses this record has actually run.
func NewVSplit(edge, leftEdge, rightEdge, oppLeftEdge, oppRightEdge dartmesh.Dart) *VSplit {
	return &VSplit{
		Edge:         edge,
		LeftEdge:     leftEdge,
		RightEdge:    rightEdge,
		OppLeftEdge:  oppLeftEdge,
		OppRightEdge: oppRightEdge,
	}
}

// SetApprox records the merged-vertex and merged-edge embeddings minted
// by the collapse this VSplit describes.
func (vs *VSplit) SetApprox(v, e1, e2 dartmesh.EmbeddingID) {
	vs.ApproxV = v
	vs.ApproxE1 = e1
	vs.ApproxE2 = e2
}

// SideDarts returns the four side darts in a fixed order, for legality
// checks that need to scan all of them against a marker.
func (vs *VSplit) SideDarts() [4]dartmesh.Dart {
	return [4]dartmesh.Dart{vs.LeftEdge, vs.RightEdge, vs.OppLeftEdge, vs.OppRightEdge}
}
