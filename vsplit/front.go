package vsplit

import (
	"container/list"
	"strconv"
	"strings"
)

// ActiveFront is the doubly-linked sequence of currently active forest
// nodes (spec §3's F). It wraps container/list.List for O(1)
// erase-by-handle: no repo in the retrieval pack ships a generic
// doubly-linked list with handle-based O(1) erase (core's adjacency
// bookkeeping uses maps, which don't give ordered front iteration), so
// this is the one ambient collection left on the standard library
// rather than a third-party dependency — see DESIGN.md.
type ActiveFront struct {
	*list.List
}

// NewActiveFront returns an empty ActiveFront.
func NewActiveFront() *ActiveFront {
	return &ActiveFront{List: list.New()}
}

// PushBack appends id to the front and returns a handle for O(1) later
// removal.
func (f *ActiveFront) PushBack(id NodeID) FrontHandle {
	return FrontHandle{elem: f.List.PushBack(id)}
}

// Erase removes the node named by h from the front in O(1).
func (f *ActiveFront) Erase(h FrontHandle) {
	if h.elem != nil {
		f.List.Remove(h.elem)
	}
}

// NodeIDAt extracts the NodeID stored at a *list.Element returned by
// Front/Back/Next/Prev during iteration.
func NodeIDAt(e *list.Element) NodeID {
	return e.Value.(NodeID)
}

// DumpFront renders the current front as a pipe-separated list of
// vertex embeddings, supplementing the drawFront debug dump found in
// original_source/include/VDPMesh.hpp.
func DumpFront(forest *Forest, front *ActiveFront) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(front.Len()))
	b.WriteString(" active nodes: ")
	first := true
	for e := front.Front(); e != nil; e = e.Next() {
		if !first {
			b.WriteString(" | ")
		}
		first = false
		n := forest.Node(NodeIDAt(e))
		b.WriteString(strconv.FormatUint(uint64(n.Vertex), 10))
	}

	return b.String()
}
