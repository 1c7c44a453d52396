package vdpm

import (
	"fmt"

	"github.com/meshforge/vdpm/dartmesh"
	"github.com/meshforge/vdpm/vsplit"
)

// CheckInvariants re-verifies I1-I5 from scratch against e's current
// forest/front/mesh state. Intended for test-mode use after a local op,
// not on any production call path; it walks the whole forest and is
// O(forest size) or worse.
func CheckInvariants(e *Engine) error {
	if err := checkAntichain(e); err != nil {
		return err
	}
	if err := checkFullCut(e); err != nil {
		return err
	}
	if err := checkNoeudBijection(e); err != nil {
		return err
	}
	if err := checkMarkerConsistency(e); err != nil {
		return err
	}
	if err := checkForestIntegrity(e); err != nil {
		return err
	}
	if err := checkWireframeSanity(e); err != nil {
		return err
	}

	return nil
}

// checkWireframeSanity runs two graph-theoretic sanity checks over the
// live mesh's Wireframe snapshot: the wireframe must be connected (a
// closed 2-manifold never splits into separate components under a
// legal collapse or split), and it must contain at least one cycle once
// it has more than two vertices (a tree-shaped wireframe would mean the
// mesh degenerated into something with no faces left). Neither check
// replaces I1-I5; they catch the class of corruption a forest-only walk
// can't see because it never looks at the mesh itself.
func checkWireframeSanity(e *Engine) error {
	g := e.Wireframe()
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil
	}

	reached := g.Reachable(verts[0])
	if len(reached) != len(verts) {
		return fmt.Errorf("vdpm: wireframe sanity: reached %d of %d vertices from %s, wireframe is disconnected", len(reached), len(verts), verts[0])
	}

	if len(verts) > 2 && !g.HasCycle() {
		return fmt.Errorf("vdpm: wireframe sanity: live mesh wireframe has no cycle with %d vertices", len(verts))
	}

	return nil
}

// isAncestor reports whether a is a strict ancestor of b by walking b's
// parent chain.
func isAncestor(e *Engine, a, b vsplit.NodeID) bool {
	cur := e.forest.Node(b).Parent
	for cur != vsplit.NilNode {
		if cur == a {
			return true
		}
		cur = e.forest.Node(cur).Parent
	}

	return false
}

// checkAntichain verifies I1: no two front members are ancestor/descendant.
func checkAntichain(e *Engine) error {
	ids := e.snapshotFront()
	for i, a := range ids {
		for j, b := range ids {
			if i == j {
				continue
			}
			if isAncestor(e, a, b) {
				return fmt.Errorf("vdpm: I1 violated: front node %d is an ancestor of front node %d", a, b)
			}
		}
	}

	return nil
}

// checkFullCut verifies I2: every leaf has exactly one active ancestor
// (including itself).
func checkFullCut(e *Engine) error {
	for id := vsplit.NodeID(0); int(id) < e.forest.Len(); id++ {
		if !e.forest.IsLeaf(id) {
			continue
		}
		count := 0
		for cur := id; ; {
			if e.forest.Node(cur).Active {
				count++
			}
			next := e.forest.Node(cur).Parent
			if next == vsplit.NilNode {
				break
			}
			cur = next
		}
		if count != 1 {
			return fmt.Errorf("vdpm: I2 violated: leaf %d has %d active ancestors, want 1", id, count)
		}
	}

	return nil
}

// checkNoeudBijection verifies I3.
func checkNoeudBijection(e *Engine) error {
	for vertex, id := range e.noeud {
		n := e.forest.Node(id)
		if n.Active && n.Vertex != vertex {
			return fmt.Errorf("vdpm: I3 violated: noeud[%d] = %d but node.Vertex = %d", vertex, id, n.Vertex)
		}
	}
	for _, id := range e.snapshotFront() {
		n := e.forest.Node(id)
		mapped, ok := e.noeud[n.Vertex]
		if !ok || mapped != id {
			return fmt.Errorf("vdpm: I3 violated: active node %d represents vertex %d but noeud does not map back to it", id, n.Vertex)
		}
	}

	return nil
}

// checkMarkerConsistency verifies I4 on a best-effort basis: no face
// reachable from the live front's vertex orbits carries the collapse
// mark. A genuinely corrupted marker elsewhere (unreachable from the
// live mesh) would not be caught by this walk, since such faces are by
// definition not part of the mesh any test could observe.
func checkMarkerConsistency(e *Engine) error {
	enumerator, ok := e.mesh.(dartEnumerator)
	if !ok {
		return nil
	}
	n := enumerator.DartCount()

	for _, id := range e.snapshotFront() {
		node := e.forest.Node(id)
		found := false
		for d := 1; d <= n; d++ {
			dart := dartmesh.Dart(d)
			if e.mesh.VertexEmbedding(dart) != node.Vertex {
				continue
			}
			// A collapsed face keeps a dart whose twin no longer points
			// back at it; such faces are not part of the live mesh.
			live := true
			for _, fd := range e.mesh.FaceDarts(dart) {
				if e.mesh.Phi2(e.mesh.Phi2(fd)) != fd {
					live = false
				}
			}
			if !live {
				continue
			}
			found = true
			for _, fd := range e.mesh.FaceDarts(dart) {
				if e.marker.IsMarked(fd) {
					return fmt.Errorf("vdpm: I4 violated: live face at dart %d is marked collapsed", fd)
				}
			}
		}
		if !found {
			return fmt.Errorf("vdpm: I4 check: no live dart found for active vertex %d", node.Vertex)
		}
	}

	return nil
}

// checkForestIntegrity verifies I5.
func checkForestIntegrity(e *Engine) error {
	for id := vsplit.NodeID(0); int(id) < e.forest.Len(); id++ {
		n := e.forest.Node(id)
		if n.VSplit == nil {
			if n.LeftChild != vsplit.NilNode || n.RightChild != vsplit.NilNode {
				return fmt.Errorf("vdpm: I5 violated: leaf %d has a child", id)
			}
			continue
		}
		if n.LeftChild == vsplit.NilNode || n.RightChild == vsplit.NilNode {
			return fmt.Errorf("vdpm: I5 violated: internal node %d missing a child", id)
		}
		left := e.forest.Node(n.LeftChild).Height
		right := e.forest.Node(n.RightChild).Height
		want := left + 1
		if right > left {
			want = right + 1
		}
		if n.Height != want {
			return fmt.Errorf("vdpm: I5 violated: node %d height = %d, want %d", id, n.Height, want)
		}
	}

	return nil
}
