// Package vsplit implements the vertex-split forest: the immutable
// per-collapse VSplit record, the Node/Forest arena that threads parent
// and child links between them, and the ActiveFront cut through the
// forest that the runtime refiner walks.
//
// The forest is an arena (core's indexed-collection style, generalized
// from Vertex/Edge maps to a []Node slice) addressed by NodeID rather
// than by pointer, per the spec's own design note: parent/child links
// form natural cycles, and indices sidestep any question of cyclic
// ownership that *Node pointers would raise.
package vsplit

import "errors"

// ErrNilNode reports an operation asked to act on NilNode. No Forest
// method returns it; Forest.Node(NilNode) panics.
var ErrNilNode = errors.New("vsplit: nil node")

// ErrAlreadyActive is returned by Forest.Activate when the node is
// already active.
var ErrAlreadyActive = errors.New("vsplit: node already active")

// ErrNotActive is returned by Forest.Deactivate when the node is not
// currently active.
var ErrNotActive = errors.New("vsplit: node not active")
