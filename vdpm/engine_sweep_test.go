package vdpm_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/roi"
	"github.com/meshforge/vdpm/trimesh"
	"github.com/meshforge/vdpm/vdpm"
)

// TestSweep_LegacySkipBothPreserveFullCut exercises WithLegacySweepSkip in
// both states against I2 (full cut): regardless of whether a coarsening
// sweep re-examines the snapshot entry right after a successful coarsen
// or skips it, the front must remain a valid cut through the forest once
// UpdateRefinement settles.
func TestSweep_LegacySkipBothPreserveFullCut(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		mesh := trimesh.NewIcosahedron()
		box := roi.NewBoundingBox(r3.Vec{X: -0.1, Y: -0.1, Z: -0.1}, r3.Vec{X: 0.1, Y: 0.1, Z: 0.1})

		e := newLengthEngine(t, mesh, vdpm.WithROI(box), vdpm.WithLegacySweepSkip(legacy))
		if err := e.CreatePM(10); err != nil {
			t.Fatalf("legacy=%v: CreatePM: %v", legacy, err)
		}

		e.UpdateRefinement()

		if err := vdpm.CheckInvariants(e); err != nil {
			t.Fatalf("legacy=%v: CheckInvariants after UpdateRefinement: %v", legacy, err)
		}

		// A second sweep with an unchanged ROI must be idempotent.
		before := snapshotActive(e)
		e.UpdateRefinement()
		after := snapshotActive(e)
		if !sameSet(before, after) {
			t.Fatalf("legacy=%v: second UpdateRefinement sweep changed the front: %v -> %v", legacy, before, after)
		}
	}
}

func TestSweep_RefineAllThenCoarsenAllRoundTrips(t *testing.T) {
	mesh := trimesh.NewIcosahedron()
	e := newLengthEngine(t, mesh)
	if err := e.CreatePM(25); err != nil {
		t.Fatalf("CreatePM: %v", err)
	}

	postBuild := snapshotActive(e)

	e.RefineAll()
	if err := vdpm.CheckInvariants(e); err != nil {
		t.Fatalf("CheckInvariants after RefineAll: %v", err)
	}
	if got := e.FrontLen(); got != 12 {
		t.Fatalf("FrontLen() after RefineAll = %d, want 12 (every original vertex a leaf)", got)
	}

	e.CoarsenAll()
	if err := vdpm.CheckInvariants(e); err != nil {
		t.Fatalf("CheckInvariants after CoarsenAll: %v", err)
	}
	if got := snapshotActive(e); !sameSet(postBuild, got) {
		t.Fatalf("front after CoarsenAll = %v, want the post-build front %v", got, postBuild)
	}
}
