package vdpm

import (
	"strconv"

	"github.com/meshforge/vdpm/core"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshforge/vdpm/approx"
	"github.com/meshforge/vdpm/dartmesh"
	"github.com/meshforge/vdpm/roi"
	"github.com/meshforge/vdpm/selector"
	"github.com/meshforge/vdpm/vsplit"
)

// dartEnumerator and meshPositions are local capability probes, the same
// style package roi uses instead of importing package selector's
// identically-shaped interfaces: each package states only the slice of
// dartmesh.Mesh it actually needs.
type dartEnumerator interface {
	DartCount() int
}

type meshPositions interface {
	Position(id dartmesh.EmbeddingID) r3.Vec
}

// Engine is the view-dependent progressive mesh instance: one mesh, one
// vertex-split forest over it, one active front, and the build-time and
// runtime collaborators that drive them. Not safe for concurrent use —
// see package doc.
type Engine struct {
	mesh   dartmesh.Mesh
	marker dartmesh.Marker

	forest *vsplit.Forest
	front  *vsplit.ActiveFront
	noeud  map[dartmesh.EmbeddingID]vsplit.NodeID

	sel           selector.EdgeSelector
	approximators []approx.Approximator
	roiPred       roi.Predicate

	positions meshPositions

	logger          Logger
	legacySweepSkip bool

	initOk    bool
	built     bool
	nbSplits  int
	maxHeight int
}

// NewEngine builds an Engine from the supplied options. A missing mesh is
// a hard error; a missing selector, a missing position capability when a
// ROI predicate is configured, or any collaborator's own Init() returning
// false are recorded as an init failure (InitOk() == false) rather than
// an error return, per spec §7's single initOk failure channel.
func NewEngine(opts ...Option) (*Engine, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.mesh == nil {
		return nil, ErrNoMesh
	}

	e := &Engine{
		mesh:            c.mesh,
		marker:          dartmesh.NewFaceMarker(c.mesh),
		forest:          vsplit.NewForest(),
		front:           vsplit.NewActiveFront(),
		noeud:           make(map[dartmesh.EmbeddingID]vsplit.NodeID),
		sel:             c.sel,
		approximators:   c.approximators,
		roiPred:         c.roiPred,
		logger:          c.logger,
		legacySweepSkip: c.legacySweepSkip,
		initOk:          true,
	}

	if _, ok := c.mesh.(dartEnumerator); !ok {
		e.logf("vdpm: mesh does not implement dart enumeration")
		e.initOk = false
	}

	if positions, ok := c.mesh.(meshPositions); ok {
		e.positions = positions
	} else if c.roiPred != nil {
		e.logf("vdpm: ROI configured but mesh does not implement position lookup")
		e.initOk = false
	}

	if e.sel == nil {
		e.logf("vdpm: no selector configured")
		e.initOk = false
	} else if !e.sel.Init(e.mesh) {
		e.logf("vdpm: selector.Init returned false")
		e.initOk = false
	}

	for _, a := range e.approximators {
		if !a.Init(e.mesh) {
			e.logf("vdpm: approximator %q Init returned false", a.ApproximatedAttributeName())
			e.initOk = false
		}
	}

	return e, nil
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger(format, args...)
	}
}

// InitOk reports whether every required collaborator initialised
// successfully. CreatePM and UpdateRefinement are no-ops once this is
// false.
func (e *Engine) InitOk() bool {
	return e.initOk
}

// NbSplits reports how many collapses CreatePM has performed.
func (e *Engine) NbSplits() int {
	return e.nbSplits
}

// ForestHeight reports the tallest internal node height CreatePM has
// produced, 0 if no collapse has ever run.
func (e *Engine) ForestHeight() int {
	return e.maxHeight
}

// FrontLen reports the current number of active nodes.
func (e *Engine) FrontLen() int {
	return e.front.Len()
}

// Forest exposes the underlying vertex-split forest for introspection
// (tests, debugging, DumpTree). The engine remains the sole mutator;
// callers must not call Forest's mutating methods directly.
func (e *Engine) Forest() *vsplit.Forest {
	return e.forest
}

// Front exposes the active front for introspection, the same caveat as
// Forest.
func (e *Engine) Front() *vsplit.ActiveFront {
	return e.front
}

// NodeForVertex reports the forest node currently representing vertex
// embedding v, if any.
func (e *Engine) NodeForVertex(v dartmesh.EmbeddingID) (vsplit.NodeID, bool) {
	id, ok := e.noeud[v]

	return id, ok
}

// SetROI replaces the region-of-interest predicate UpdateRefinement
// drives toward, e.g. as a camera or cursor moves between frames. Takes
// effect on the next UpdateRefinement call; pass nil to make
// UpdateRefinement a no-op again.
func (e *Engine) SetROI(pred roi.Predicate) {
	e.roiPred = pred
}

// AddNodes allocates one leaf per distinct vertex embedding currently
// present in the mesh and activates it, unless a forest node for that
// embedding already exists. Safe to call more than once; CreatePM calls
// it automatically.
func (e *Engine) AddNodes() error {
	enumerator, ok := e.mesh.(dartEnumerator)
	if !ok {
		return ErrMeshCapability
	}

	n := enumerator.DartCount()
	for d := 1; d <= n; d++ {
		id := e.mesh.VertexEmbedding(dartmesh.Dart(d))
		if _, exists := e.noeud[id]; exists {
			continue
		}
		leaf := e.forest.NewLeaf(id)
		if err := e.forest.Activate(leaf, id, e.front); err != nil {
			return err
		}
		e.noeud[id] = leaf
	}

	return nil
}

// CreatePM runs the pre-computation build: addNodes, then repeatedly
// collapsing edges offered by the configured selector until the active
// front shrinks to floor(len * percentWantedVertices / 100) nodes or the
// selector is exhausted. percentWantedVertices is clamped to [0, 100].
func (e *Engine) CreatePM(percentWantedVertices int) error {
	if e.built {
		return ErrAlreadyBuilt
	}
	if !e.initOk {
		return ErrNotInitialized
	}
	if err := e.AddNodes(); err != nil {
		return err
	}

	if percentWantedVertices < 0 {
		percentWantedVertices = 0
	} else if percentWantedVertices > 100 {
		percentWantedVertices = 100
	}
	target := e.front.Len() * percentWantedVertices / 100

	for e.front.Len() > target {
		d, ok := e.sel.NextEdge(e.mesh)
		if !ok {
			break
		}
		if e.marker.IsMarked(d) {
			continue
		}
		_ = e.collapseOne(d)
	}

	e.built = true

	return nil
}

// collapseOne runs one build-time collapse of d, per spec §4.5. The
// fallible mesh mutation (edgeCollapse) runs before any forest node is
// allocated or any active-front entry touched, so a non-manifold refusal
// leaves no partial forest state to unwind.
func (e *Engine) collapseOne(d dartmesh.Dart) error {
	dd := e.mesh.Phi2(d)
	leftEdge := e.mesh.Phi2(e.mesh.Phi1(d))
	rightEdge := e.mesh.Phi2(e.mesh.PhiM1(dd))
	oppLeftEdge := e.mesh.Phi2(e.mesh.PhiM1(d))
	oppRightEdge := e.mesh.Phi2(e.mesh.Phi1(dd))

	lID, lok := e.noeud[e.mesh.VertexEmbedding(oppLeftEdge)]
	rID, rok := e.noeud[e.mesh.VertexEmbedding(rightEdge)]
	if !lok || !rok {
		return errForestInconsistent
	}

	vs := vsplit.NewVSplit(d, leftEdge, rightEdge, oppLeftEdge, oppRightEdge)

	for _, a := range e.approximators {
		a.Approximate(e.mesh, d)
		a.SaveApprox(e.mesh, d)
	}
	e.sel.UpdateBeforeCollapse(e.mesh, d)

	if err := e.edgeCollapse(vs); err != nil {
		return err
	}

	internal := e.forest.NewInternal(vs, lID, rID)
	if err := e.forest.Deactivate(lID, e.front); err != nil {
		return err
	}
	if err := e.forest.Deactivate(rID, e.front); err != nil {
		return err
	}
	if h := e.forest.Node(internal).Height; h > e.maxHeight {
		e.maxHeight = h
	}

	vNew := e.mesh.NewVertexEmbedding(oppLeftEdge)
	eNew1 := e.mesh.NewEdgeEmbedding(oppLeftEdge)
	eNew2 := e.mesh.NewEdgeEmbedding(rightEdge)
	vs.SetApprox(vNew, eNew1, eNew2)

	for _, a := range e.approximators {
		a.AffectApprox(e.mesh, oppLeftEdge)
	}

	if err := e.forest.Activate(internal, vNew, e.front); err != nil {
		return err
	}
	e.noeud[vNew] = internal
	e.sel.UpdateAfterCollapse(e.mesh, oppLeftEdge, rightEdge)
	e.nbSplits++

	return nil
}

// edgeCollapse marks the face orbits of d and Phi2(d), then removes them.
// On a non-manifold refusal the marks are rolled back so the marker stays
// monotone during a successful build, per spec §3.
func (e *Engine) edgeCollapse(vs *vsplit.VSplit) error {
	d := vs.Edge
	dd := e.mesh.Phi2(d)
	e.marker.MarkOrbit(d)
	e.marker.MarkOrbit(dd)
	if err := e.mesh.ExtractTrianglePair(d); err != nil {
		e.marker.UnmarkOrbit(d)
		e.marker.UnmarkOrbit(dd)

		return err
	}

	return nil
}

// vertexSplit is edgeCollapse's inverse: it re-inserts the two triangles
// and unmarks their face orbits.
func (e *Engine) vertexSplit(vs *vsplit.VSplit) error {
	if err := e.mesh.InsertTrianglePair(vs.Edge, vs.LeftEdge, vs.RightEdge); err != nil {
		return err
	}
	d := vs.Edge
	dd := e.mesh.Phi2(d)
	e.marker.UnmarkOrbit(d)
	e.marker.UnmarkOrbit(dd)

	return nil
}

// SplitLegal reports whether the active node id may legally refine: it
// must own a VSplit whose four side darts still retwin as recorded and
// none of which currently sits on a marked (already-collapsed) face.
func (e *Engine) SplitLegal(id vsplit.NodeID) bool {
	n := e.forest.Node(id)
	if !n.Active || n.VSplit == nil {
		return false
	}
	vs := n.VSplit
	if e.mesh.Phi2(vs.OppLeftEdge) != vs.LeftEdge || e.mesh.Phi2(vs.OppRightEdge) != vs.RightEdge {
		return false
	}
	for _, sd := range vs.SideDarts() {
		if e.marker.IsMarked(sd) {
			return false
		}
	}

	return true
}

// CollapseLegal reports whether the active node id may legally coarsen
// into its parent: the parent must exist, be inactive, have both
// children currently active, the darts around its VSplit's edge must
// still twin with the four recorded side darts, and none of those side
// darts may be marked.
func (e *Engine) CollapseLegal(id vsplit.NodeID) bool {
	n := e.forest.Node(id)
	if !n.Active {
		return false
	}
	if n.Parent == vsplit.NilNode {
		return false
	}
	p := e.forest.Node(n.Parent)
	if p.Active {
		return false
	}
	if !e.forest.Node(p.LeftChild).Active || !e.forest.Node(p.RightChild).Active {
		return false
	}
	vs := p.VSplit
	dd := e.mesh.Phi2(vs.Edge)
	if e.mesh.Phi2(e.mesh.Phi1(vs.Edge)) != vs.LeftEdge || e.mesh.Phi2(e.mesh.PhiM1(vs.Edge)) != vs.OppLeftEdge ||
		e.mesh.Phi2(e.mesh.PhiM1(dd)) != vs.RightEdge || e.mesh.Phi2(e.mesh.Phi1(dd)) != vs.OppRightEdge {
		return false
	}
	for _, sd := range vs.SideDarts() {
		if e.marker.IsMarked(sd) {
			return false
		}
	}

	return true
}

// Refine replaces the active node id by its two children in the front,
// re-materialising the two triangles it had collapsed away. Returns
// false (a no-op) if id is inactive or SplitLegal(id) fails.
func (e *Engine) Refine(id vsplit.NodeID) bool {
	if !e.SplitLegal(id) {
		return false
	}
	n := e.forest.Node(id)
	vs := n.VSplit

	d := vs.Edge
	dd := e.mesh.Phi2(d)
	d1 := e.mesh.Phi1(d)
	d2 := e.mesh.PhiM1(d)
	dd1 := e.mesh.Phi1(dd)
	dd2 := e.mesh.PhiM1(dd)

	// Snapshot embeddings frozen on the dead triangle-corner darts before
	// splitting: ExtractTrianglePair only retwinned the four side darts
	// around them and left these six darts' records untouched, so they
	// still hold the values the two triangles had immediately before the
	// matching collapse.
	v1 := e.mesh.VertexEmbedding(d)
	v2 := e.mesh.VertexEmbedding(dd)
	eD1 := e.mesh.EdgeEmbedding(d1)
	eD2 := e.mesh.EdgeEmbedding(d2)
	eDD1 := e.mesh.EdgeEmbedding(dd1)
	eDD2 := e.mesh.EdgeEmbedding(dd2)

	if err := e.vertexSplit(vs); err != nil {
		return false
	}

	e.mesh.SetEdgeEmbedding(d1, eD1)
	e.mesh.SetEdgeEmbedding(d2, eD2)
	e.mesh.SetEdgeEmbedding(dd1, eDD1)
	e.mesh.SetEdgeEmbedding(dd2, eDD2)
	e.mesh.SetVertexEmbedding(d, v1)
	e.mesh.SetVertexEmbedding(dd, v2)
	// The two opposite corners rejoin orbits whose embedding may have
	// changed since the collapse; take it from the live side darts.
	e.mesh.CopyVertexEmbedding(d2, vs.LeftEdge)
	e.mesh.CopyVertexEmbedding(dd2, vs.OppRightEdge)

	_ = e.forest.Deactivate(id, e.front)
	_ = e.forest.Activate(n.LeftChild, v1, e.front)
	_ = e.forest.Activate(n.RightChild, v2, e.front)
	e.noeud[v1] = n.LeftChild
	e.noeud[v2] = n.RightChild

	return true
}

// Coarsen replaces id and its active sibling by their parent in the
// front, collapsing the two triangles id's VSplit describes. Returns
// false (a no-op) if CollapseLegal(id) fails, and also false — after
// rolling the mesh mutation back — if the post-collapse embedding
// consistency check fails, which would indicate upstream mesh
// corruption rather than a legality violation.
func (e *Engine) Coarsen(id vsplit.NodeID) bool {
	if !e.CollapseLegal(id) {
		return false
	}
	n := e.forest.Node(id)
	p := n.Parent
	parent := e.forest.Node(p)
	vs := parent.VSplit
	oppLeftEdge := vs.OppLeftEdge
	rightEdge := vs.RightEdge

	if err := e.edgeCollapse(vs); err != nil {
		return false
	}

	prevV := e.mesh.VertexEmbedding(oppLeftEdge)
	prevE1 := e.mesh.EdgeEmbedding(oppLeftEdge)
	prevE2 := e.mesh.EdgeEmbedding(rightEdge)

	e.mesh.SetVertexEmbedding(oppLeftEdge, vs.ApproxV)
	e.mesh.SetEdgeEmbedding(oppLeftEdge, vs.ApproxE1)
	e.mesh.SetEdgeEmbedding(rightEdge, vs.ApproxE2)

	if e.mesh.VertexEmbedding(oppLeftEdge) != e.mesh.VertexEmbedding(rightEdge) {
		e.mesh.SetVertexEmbedding(oppLeftEdge, prevV)
		e.mesh.SetEdgeEmbedding(oppLeftEdge, prevE1)
		e.mesh.SetEdgeEmbedding(rightEdge, prevE2)
		_ = e.vertexSplit(vs)
		e.logf("vdpm: embedding inconsistency coarsening node %d, rolled back", id)

		return false
	}

	leftChild, rightChild := parent.LeftChild, parent.RightChild
	_ = e.forest.Deactivate(leftChild, e.front)
	_ = e.forest.Deactivate(rightChild, e.front)
	_ = e.forest.Activate(p, vs.ApproxV, e.front)
	e.noeud[vs.ApproxV] = p

	return true
}

// snapshotFront copies the current front's node IDs into a slice, so
// RefineAll/CoarsenAll/UpdateRefinement can iterate one sweep's worth of
// work while Refine/Coarsen freely mutate the live front underneath
// them.
func (e *Engine) snapshotFront() []vsplit.NodeID {
	ids := make([]vsplit.NodeID, 0, e.front.Len())
	for el := e.front.Front(); el != nil; el = el.Next() {
		ids = append(ids, vsplit.NodeIDAt(el))
	}

	return ids
}

// RefineAll sweeps the front applying Refine to every active node,
// repeating full sweeps until one produces no change.
func (e *Engine) RefineAll() {
	for {
		changed := false
		for _, id := range e.snapshotFront() {
			if !e.forest.Node(id).Active {
				continue
			}
			if e.Refine(id) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// CoarsenAll sweeps the front applying Coarsen to every active node,
// repeating full sweeps until one produces no change.
func (e *Engine) CoarsenAll() {
	for {
		changed := false
		for _, id := range e.snapshotFront() {
			if !e.forest.Node(id).Active {
				continue
			}
			if e.Coarsen(id) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// UpdateRefinement sweeps the front toward the configured ROI predicate:
// active nodes inside the ROI are refined, and nodes outside it are
// coarsened once their sibling and parent are also outside (the
// "none of the three" guard that prevents oscillation at the ROI
// boundary). Repeats full sweeps until one produces no change. A no-op
// if no ROI predicate was configured or InitOk() is false.
func (e *Engine) UpdateRefinement() {
	if !e.initOk || e.roiPred == nil {
		return
	}

	for {
		changed := false
		ids := e.snapshotFront()
		for i := 0; i < len(ids); i++ {
			id := ids[i]
			if !e.forest.Node(id).Active {
				continue
			}
			n := e.forest.Node(id)

			did, coarsened := false, false
			if e.roiPred.Contains(e.positionOf(n.Vertex)) {
				did = e.Refine(id)
			} else if n.Parent != vsplit.NilNode {
				p := e.forest.Node(n.Parent)
				leftV := e.forest.Node(p.LeftChild).Vertex
				rightV := e.forest.Node(p.RightChild).Vertex
				if !e.roiPred.Contains(e.positionOf(p.Vertex)) &&
					!e.roiPred.Contains(e.positionOf(leftV)) &&
					!e.roiPred.Contains(e.positionOf(rightV)) {
					did = e.Coarsen(id)
					coarsened = did
				}
			}

			if did {
				changed = true
				if e.legacySweepSkip && coarsened {
					i++
				}
			}
		}
		if !changed {
			return
		}
	}
}

func (e *Engine) positionOf(id dartmesh.EmbeddingID) r3.Vec {
	if e.positions == nil {
		return r3.Vec{}
	}

	return e.positions.Position(id)
}

// Wireframe snapshots the live mesh's undirected edges into a *core.Graph,
// one vertex per currently-embedded vertex and one unweighted edge per
// undirected dart pair. Intended for debugging/visualisation, not for any
// operation the engine itself performs.
func (e *Engine) Wireframe() *core.Graph {
	g := core.NewGraph()
	enumerator, ok := e.mesh.(dartEnumerator)
	if !ok {
		return g
	}

	n := enumerator.DartCount()
	for d := 1; d <= n; d++ {
		dart := dartmesh.Dart(d)
		twin := e.mesh.Phi2(dart)
		if uint32(twin) < uint32(dart) {
			continue
		}
		from := embeddingVertexID(e.mesh.VertexEmbedding(dart))
		to := embeddingVertexID(e.mesh.VertexEmbedding(twin))
		_ = g.AddVertex(from)
		_ = g.AddVertex(to)
		if from == to {
			continue
		}
		_, _ = g.AddEdge(from, to, 0)
	}

	return g
}

func embeddingVertexID(id dartmesh.EmbeddingID) string {
	return strconv.FormatUint(uint64(id), 10)
}
