package vsplit

import (
	"container/list"
	"fmt"

	"github.com/meshforge/vdpm/dartmesh"
)

// NodeID indexes a Node within a Forest's arena. NilNode marks "no node"
// for parent/child links, mirroring dartmesh.NilDart.
type NodeID int32

// NilNode is the sentinel for "no node".
const NilNode NodeID = -1

// FrontHandle is an O(1)-erase handle into an ActiveFront, stored on the
// Node it was returned for. It is the zero value (nil element) until the
// node is first activated.
type FrontHandle struct {
	elem *list.Element
}

// Node is one node of the vertex-split forest: an original-mesh vertex
// (a leaf, VSplit == nil) or the result of one collapse (internal,
// VSplit != nil, exactly two children).
type Node struct {
	// VSplit is nil iff this node is a leaf.
	VSplit *VSplit

	// Parent, LeftChild, RightChild are NilNode when absent. Child links
	// are ownership edges (the Forest arena owns every node reachable
	// from a root); Parent is a non-owning back reference resolved
	// through the same arena.
	Parent     NodeID
	LeftChild  NodeID
	RightChild NodeID

	// Active reports whether this node currently belongs to the active
	// front.
	Active bool

	// Vertex is the vertex embedding this node currently "is" when
	// Active.
	Vertex dartmesh.EmbeddingID

	// Height is 0 at leaves, 1 + max(child.Height) internally.
	Height int

	// FrontCell is this node's handle into the active front, valid iff
	// Active.
	FrontCell FrontHandle
}

// Forest is an arena of Nodes addressed by NodeID. It owns every node
// and every VSplit reachable from a root; parent links are resolved
// back through this same arena rather than held as raw pointers.
type Forest struct {
	nodes []Node
}

// NewForest returns an empty Forest.
func NewForest() *Forest {
	return &Forest{}
}

// Node returns a mutable pointer to the node at id. Callers must not
// retain it across further arena growth (NewLeaf/NewInternal may
// reallocate the backing slice).
func (f *Forest) Node(id NodeID) *Node {
	return &f.nodes[id]
}

// Len reports how many nodes the forest has ever allocated.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// NewLeaf allocates a height-0 leaf node representing an original-mesh
// vertex. It does not activate the node; callers activate it on an
// ActiveFront explicitly (see vdpm.Engine.AddNodes).
func (f *Forest) NewLeaf(vertex dartmesh.EmbeddingID) NodeID {
	id := NodeID(len(f.nodes))
	f.nodes = append(f.nodes, Node{
		Parent:     NilNode,
		LeftChild:  NilNode,
		RightChild: NilNode,
		Vertex:     vertex,
	})

	return id
}

// NewInternal allocates a node owning vs, adopting left and right as its
// two children. It links both children's Parent back to the new node
// and sets Height = 1 + max(left.Height, right.Height). Neither child is
// (de)activated here; that is the caller's responsibility.
func (f *Forest) NewInternal(vs *VSplit, left, right NodeID) NodeID {
	leftHeight := f.Node(left).Height
	rightHeight := f.Node(right).Height
	height := leftHeight
	if rightHeight > height {
		height = rightHeight
	}

	id := NodeID(len(f.nodes))
	f.nodes = append(f.nodes, Node{
		VSplit:     vs,
		Parent:     NilNode,
		LeftChild:  left,
		RightChild: right,
		Height:     height + 1,
	})
	f.nodes[left].Parent = id
	f.nodes[right].Parent = id

	return id
}

// IsLeaf reports whether id names a leaf node (no owning VSplit).
func (f *Forest) IsLeaf(id NodeID) bool {
	return f.Node(id).VSplit == nil
}

// Activate marks id active, assigns it the given vertex embedding, and
// pushes it onto front, recording the returned handle on the node.
func (f *Forest) Activate(id NodeID, vertex dartmesh.EmbeddingID, front *ActiveFront) error {
	n := f.Node(id)
	if n.Active {
		return ErrAlreadyActive
	}
	n.Vertex = vertex
	n.Active = true
	n.FrontCell = front.PushBack(id)

	return nil
}

// Deactivate marks id inactive and erases it from front. It does not
// touch Vertex: the invariant noeud[N.vertex].node == N is maintained by
// the caller (vdpm.Engine), which overwrites noeud on the next
// activation for the same vertex.
func (f *Forest) Deactivate(id NodeID, front *ActiveFront) error {
	n := f.Node(id)
	if !n.Active {
		return ErrNotActive
	}
	front.Erase(n.FrontCell)
	n.Active = false
	n.FrontCell = FrontHandle{}

	return nil
}

// DumpTree renders root and its subtree as a parenthesized string
// (vertex G(leftSubtree) D(rightSubtree)), supplementing the
// drawForest/drawTree debug dump found in
// original_source/include/VDPMesh.hpp.
func (f *Forest) DumpTree(root NodeID) string {
	if root == NilNode {
		return ""
	}
	n := f.Node(root)
	s := fmt.Sprintf("%d", n.Vertex)
	if n.LeftChild != NilNode {
		s += " G(" + f.DumpTree(n.LeftChild) + ")"
	}
	if n.RightChild != NilNode {
		s += " D(" + f.DumpTree(n.RightChild) + ")"
	}

	return s
}
