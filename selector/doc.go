// Package selector orders the interior edges a coarsening sweep offers up
// for collapse. It is deliberately decoupled from dartmesh.Mesh and
// vsplit.Forest: an EdgeSelector only needs to answer "what's next", never
// to perform or legality-check a collapse itself.
package selector

import "errors"

// ErrExhausted reports "no more candidate edges" for selectors that signal
// it through an error. LengthSelector and MSTSelector never return it:
// their NextEdge reports exhaustion through its bool result.
var ErrExhausted = errors.New("selector: no candidate edges remain")
