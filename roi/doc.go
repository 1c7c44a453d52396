// Package roi provides region-of-interest predicates for driving
// vdpm.Engine.UpdateRefinement: a pure, cheap test of whether a point in
// space should be rendered at full detail.
package roi
