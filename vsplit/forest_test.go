package vsplit_test

import (
	"testing"

	"github.com/meshforge/vdpm/vsplit"
)

func TestForest_LeafAndInternalHeights(t *testing.T) {
	f := vsplit.NewForest()
	leafA := f.NewLeaf(1)
	leafB := f.NewLeaf(2)

	if h := f.Node(leafA).Height; h != 0 {
		t.Fatalf("leaf height = %d, want 0", h)
	}

	vs := vsplit.NewVSplit(10, 11, 12, 13, 14)
	internal := f.NewInternal(vs, leafA, leafB)

	if h := f.Node(internal).Height; h != 1 {
		t.Fatalf("internal height = %d, want 1", h)
	}
	if f.Node(leafA).Parent != internal {
		t.Fatalf("leafA.Parent not linked to internal node")
	}
	if f.Node(leafB).Parent != internal {
		t.Fatalf("leafB.Parent not linked to internal node")
	}
	if f.IsLeaf(internal) {
		t.Fatalf("internal node reported as leaf")
	}
	if !f.IsLeaf(leafA) {
		t.Fatalf("leaf node reported as internal")
	}
}

func TestForest_ActivateDeactivate(t *testing.T) {
	f := vsplit.NewForest()
	front := vsplit.NewActiveFront()
	leaf := f.NewLeaf(1)

	if err := f.Activate(leaf, 1, front); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if front.Len() != 1 {
		t.Fatalf("front.Len() = %d, want 1", front.Len())
	}
	if err := f.Activate(leaf, 1, front); err == nil {
		t.Fatalf("expected ErrAlreadyActive on double activate")
	}

	if err := f.Deactivate(leaf, front); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if front.Len() != 0 {
		t.Fatalf("front.Len() = %d, want 0 after deactivate", front.Len())
	}
	if err := f.Deactivate(leaf, front); err == nil {
		t.Fatalf("expected ErrNotActive on double deactivate")
	}
}

func TestActiveFront_EraseIsO1AndPreservesOrder(t *testing.T) {
	f := vsplit.NewForest()
	front := vsplit.NewActiveFront()

	ids := make([]vsplit.NodeID, 0, 3)
	for i := 0; i < 3; i++ {
		id := f.NewLeaf(0)
		_ = f.Activate(id, 0, front)
		ids = append(ids, id)
	}

	_ = f.Deactivate(ids[1], front)

	var remaining []vsplit.NodeID
	for e := front.Front(); e != nil; e = e.Next() {
		remaining = append(remaining, vsplit.NodeIDAt(e))
	}
	if len(remaining) != 2 || remaining[0] != ids[0] || remaining[1] != ids[2] {
		t.Fatalf("unexpected front order after erase: %v", remaining)
	}
}

func TestForest_DumpTree(t *testing.T) {
	f := vsplit.NewForest()
	leafA := f.NewLeaf(1)
	leafB := f.NewLeaf(2)
	vs := vsplit.NewVSplit(0, 0, 0, 0, 0)
	internal := f.NewInternal(vs, leafA, leafB)

	got := f.DumpTree(internal)
	want := "0 G(1) D(2)"
	if got != want {
		t.Fatalf("DumpTree() = %q, want %q", got, want)
	}
}
