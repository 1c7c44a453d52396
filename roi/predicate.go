package roi

import "gonum.org/v1/gonum/spatial/r3"

// Predicate reports whether a point belongs to the current region of
// interest. It must be pure and cheap: vdpm.Engine.UpdateRefinement calls
// it O(|front|) times per sweep.
type Predicate interface {
	Contains(p r3.Vec) bool
}

// BoundingBox is an axis-aligned box predicate, the geometric analog of
// gridgraph.GridGraph's InBounds check generalized from a 2D integer grid
// to a continuous 3D box.
type BoundingBox struct {
	Min, Max r3.Vec
}

// NewBoundingBox returns a BoundingBox spanning [min, max] component-wise.
// It does not require min.X <= max.X etc.; Contains normalizes per axis.
func NewBoundingBox(min, max r3.Vec) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Contains reports whether p lies within the box, inclusive of its faces.
func (b BoundingBox) Contains(p r3.Vec) bool {
	return between(p.X, b.Min.X, b.Max.X) &&
		between(p.Y, b.Min.Y, b.Max.Y) &&
		between(p.Z, b.Min.Z, b.Max.Z)
}

func between(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}

	return v >= a && v <= b
}
