// Package approx computes and stores the per-collapse detail an
// Approximator needs to replay a vertex split faithfully: the attribute
// value the merged vertex/edges should carry, and whatever side record
// lets a later split recover the values the collapse discarded.
package approx

import "errors"

// ErrNoDetail reports that no detail was saved for a dart. AffectApprox
// has no error result, so MidpointApproximator never returns it.
var ErrNoDetail = errors.New("approx: no saved detail for dart")
