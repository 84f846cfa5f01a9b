package dcel

import (
	"github.com/geomlab/planar/geom"
	"github.com/pkg/errors"
)

// DCEL is the edge list itself. The zero value is not usable; construct with
// New or FromPointsAndEdges.
type DCEL struct {
	vertices  []*Vertex
	edges     []*HalfEdge
	faces     []*Face
	outerFace *Face
}

// New returns an empty subdivision holding only the outer face.
func New() *DCEL {
	d := &DCEL{}
	d.Clear()
	return d
}

// FromPointsAndEdges builds a subdivision from points and edges given as index
// pairs into the point slice, then verifies it is well formed. The edges must
// not cross each other and each edge's endpoints must end up on the boundary
// of a common face at the time it is inserted.
func FromPointsAndEdges(points []geom.Point, edges [][2]int) (*DCEL, error) {
	d := New()
	for _, p := range points {
		d.AddVertex(p)
	}
	for _, e := range edges {
		if err := d.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if err := d.CheckWellFormed(); err != nil {
		return nil, err
	}
	return d, nil
}

// Clear resets the subdivision to the empty state.
func (d *DCEL) Clear() {
	d.vertices = nil
	d.edges = nil
	d.outerFace = &Face{isOuter: true}
	d.faces = []*Face{d.outerFace}
}

func (d *DCEL) Vertices() []*Vertex {
	return d.vertices
}

func (d *DCEL) Points() []geom.Point {
	points := make([]geom.Point, 0, len(d.vertices))
	for _, v := range d.vertices {
		points = append(points, v.point)
	}
	return points
}

// Edges lists all half-edges, placeholder edges of isolated vertices included.
func (d *DCEL) Edges() []*HalfEdge {
	return d.edges
}

func (d *DCEL) Faces() []*Face {
	return d.faces
}

func (d *DCEL) OuterFace() *Face {
	return d.outerFace
}

func (d *DCEL) InnerFaces() []*Face {
	var inner []*Face
	for _, f := range d.faces {
		if !f.isOuter {
			inner = append(inner, f)
		}
	}
	return inner
}

// FindVertex returns the vertex at the point, or nil.
func (d *DCEL) FindVertex(p geom.Point) *Vertex {
	var found *Vertex
	for _, v := range d.vertices {
		if v.point == p {
			if found != nil {
				fatalf("more than one vertex at %v", p)
			}
			found = v
		}
	}
	return found
}

// FindHalfEdge returns the half-edge from origin to dest, or nil.
func (d *DCEL) FindHalfEdge(origin, dest geom.Point) *HalfEdge {
	for _, e := range d.edges {
		if e == e.twin {
			continue
		}
		if e.origin.point == origin && e.Destination().point == dest {
			return e
		}
	}
	return nil
}

// AddVertex inserts a vertex at the point. A vertex already at the point is
// returned as is; a point in the interior of an existing edge splits that
// edge.
func (d *DCEL) AddVertex(p geom.Point) *Vertex {
	for _, v := range d.vertices {
		if v.point == p {
			return v
		}
	}

	if edge := d.onEdge(p); edge != nil {
		v, err := d.AddVertexInEdge(edge, p)
		if err != nil {
			fatalf("splitting %v at %v: %v", edge, p, err)
		}
		return v
	}

	v := newVertex(p)
	d.vertices = append(d.vertices, v)
	d.edges = append(d.edges, v.edge)
	v.edge.face = d.FindContainingFace(p)
	return v
}

// AddEdge inserts an edge between the vertices at the given indices.
func (d *DCEL) AddEdge(i, j int) error {
	if i < 0 || i >= len(d.vertices) || j < 0 || j >= len(d.vertices) {
		return errors.Errorf("edge (%d, %d) out of range for %d vertices", i, j, len(d.vertices))
	}
	d.addEdge(d.vertices[i], d.vertices[j])
	return nil
}

// AddEdgeByPoints inserts an edge between the vertices at the two points.
// Both points must already be vertices. An edge that already exists is left
// alone.
func (d *DCEL) AddEdgeByPoints(p, q geom.Point) error {
	v0 := d.FindVertex(p)
	v1 := d.FindVertex(q)
	if v0 == nil || v1 == nil {
		return errors.Errorf("both %v and %v need to be vertices before connecting them", p, q)
	}
	if d.FindHalfEdge(p, q) != nil {
		return nil
	}
	d.addEdge(v0, v1)
	return nil
}

// AddVertexInEdge splits an existing edge at the point. Splitting at an
// endpoint returns that endpoint's vertex unchanged.
func (d *DCEL) AddVertexInEdge(edge *HalfEdge, p geom.Point) (*Vertex, error) {
	if !d.hasEdge(edge) {
		return nil, errors.Errorf("edge %v is not part of the subdivision", edge)
	}
	if edge == edge.twin {
		return nil, errors.Errorf("cannot split the placeholder edge of isolated vertex %v", edge.origin)
	}
	if p == edge.origin.point {
		return edge.origin, nil
	}
	if p == edge.Destination().point {
		return edge.Destination(), nil
	}
	if p.Orientation(edge.origin.point, edge.Destination().point) != geom.Between {
		return nil, errors.Wrapf(geom.ErrDegenerate, "point %v does not lie on edge %v", p, edge)
	}

	v := newVertex(p)
	d.vertices = append(d.vertices, v)
	d.edges = append(d.edges, v.edge)
	other := &HalfEdge{origin: v}
	d.edges = append(d.edges, other)

	// edge keeps its origin and now ends at v. v.edge continues to the old
	// destination, other runs back along the old twin direction.
	oldNext := edge.next
	oldTwinNext := edge.twin.next

	v.edge.setTwin(edge.twin)
	other.setTwin(edge)

	edge.setNext(v.edge)
	v.edge.setNext(oldNext)
	v.edge.twin.setNext(other)
	other.setNext(oldTwinNext)

	v.edge.face = edge.face
	other.face = v.edge.twin.face

	return v, nil
}

// addEdge connects two vertices that bound a common face. The cycle around
// each vertex is searched for the angular slot the new edge belongs in; if
// the edge closes a cycle, the face is split.
func (d *DCEL) addEdge(v0, v1 *Vertex) {
	var he0, he1 *HalfEdge
	if v0.IsIsolated() {
		he0 = v0.edge
	} else {
		he0 = &HalfEdge{origin: v0}
		d.edges = append(d.edges, he0)
	}
	if v1.IsIsolated() {
		he1 = v1.edge
	} else {
		he1 = &HalfEdge{origin: v1}
		d.edges = append(d.edges, he1)
	}

	numOut0 := len(v0.OutgoingEdges())
	numOut1 := len(v1.OutgoingEdges())
	var face0, face1 *Face
	newFace := false
	switch {
	case numOut0 != 0 && numOut1 != 0:
		face0 = d.FindSplittingFace(v0, v1.point)
		face1 = d.FindSplittingFace(v1, v0.point)

		// The new edge creates a face when it closes a cycle: either some
		// inner component already carries both vertices, or both sit on the
		// face's own boundary.
		newInnerFace := false
		for _, component := range face0.innerComponents {
			if component.VertexOnCycle(v0) && component.VertexOnCycle(v1) {
				newInnerFace = true
				break
			}
		}
		outerSplit := !face0.isOuter &&
			face0.outerComponent.VertexOnCycle(v0) && face0.outerComponent.VertexOnCycle(v1)
		newFace = newInnerFace || outerSplit
	case numOut0 != 0:
		face0 = d.FindSplittingFace(v0, v1.point)
		face1 = d.FindContainingFace(v1.point)
	case numOut1 != 0:
		face0 = d.FindContainingFace(v0.point)
		face1 = d.FindSplittingFace(v1, v0.point)
	default:
		face0 = d.FindContainingFace(v0.point)
		face1 = d.FindContainingFace(v1.point)
	}
	if face0 != face1 {
		fatalf("vertices %v and %v do not bound a common face: %v vs %v", v0, v1, face0, face1)
	}
	if numOut0 == 0 && numOut1 == 0 {
		// Two isolated vertices start a fresh inner component.
		face0.innerComponents = append(face0.innerComponents, he0)
	}

	he0.face = face0
	he1.face = face0

	// Find the angular slot for the new edge around each endpoint. The search
	// has to run before the twin pointers change, while both cycles are still
	// intact.
	searchEdge0 := v0.edge.twin
	if !v0.IsIsolated() && v0.edge.twin != v0.edge.prev {
		for !pointBetweenEdgeAndNext(v1.point, searchEdge0) {
			searchEdge0 = searchEdge0.next.twin
			if searchEdge0 == v0.edge.twin {
				fatalf("no angular slot for edge to %v around %v", v1, v0)
			}
		}
	}
	searchEdge1 := v1.edge.twin
	if !v1.IsIsolated() && v1.edge.twin != v1.edge.prev {
		for !pointBetweenEdgeAndNext(v0.point, searchEdge1) {
			searchEdge1 = searchEdge1.next.twin
			if searchEdge1 == v1.edge.twin {
				fatalf("no angular slot for edge to %v around %v", v0, v1)
			}
		}
	}

	oldNext0 := searchEdge0.next
	oldNext1 := searchEdge1.next

	he0.setTwin(he1)
	searchEdge0.setNext(he0)
	searchEdge1.setNext(he1)
	he0.setNext(oldNext1)
	he1.setNext(oldNext0)

	if newFace {
		face1 = d.splitFace(he0, face0)
	} else {
		face1 = nil
	}

	d.fixInnerComponents(he0, he1, face0, face1)
}

// FindContainingFace returns the innermost face whose boundary contains the
// point, falling back to the outer face.
func (d *DCEL) FindContainingFace(p geom.Point) *Face {
	for _, f := range d.InnerFaces() {
		if f.Contains(p) {
			return f
		}
	}
	return d.outerFace
}

// FindSplittingFace returns the face around the vertex that a segment towards
// the point would run through.
func (d *DCEL) FindSplittingFace(v *Vertex, p geom.Point) *Face {
	out := v.OutgoingEdges()
	if len(out) == 0 {
		fatalf("vertex %v is not connected to any face boundary", v)
	}
	for _, e := range out {
		if pointBetweenEdgeAndNext(p, e.twin) {
			return e.twin.face
		}
	}
	fatalf("point %v does not split any face around vertex %v", p, v)
	return nil
}

// pointBetweenEdgeAndNext reports whether the point falls in the angular
// wedge between the edge and its successor around their shared vertex.
func pointBetweenEdgeAndNext(p geom.Point, edge *HalfEdge) bool {
	e0, e1 := edge, edge.next
	o0, d0 := e0.origin.point, e0.Destination().point
	o1, d1 := e1.origin.point, e1.Destination().point

	if e0.twin == e1 {
		return true
	}
	// Left of both edges, or left of one while the pair makes a right turn.
	leftOfFirst := p.Orientation(o0, d0) == geom.Left
	if leftOfFirst && p.Orientation(o1, d1) == geom.Left {
		return true
	}
	if leftOfFirst && d1.Orientation(o0, d0) == geom.Right {
		return true
	}
	return p.Orientation(o1, d1) == geom.Left && o0.Orientation(o1, d1) == geom.Right
}

// splitFace carves a new face out of face along the freshly closed cycle
// through edge.
func (d *DCEL) splitFace(edge *HalfEdge, face *Face) *Face {
	innerEdge := edge
	if edge.IsCycleClockwise() {
		innerEdge = edge.twin
	}

	newFace := &Face{outerComponent: innerEdge}
	d.faces = append(d.faces, newFace)

	if !innerEdge.twin.IsCycleClockwise() {
		// The old cycle split into two counterclockwise ones; the old face
		// keeps the other.
		face.outerComponent = innerEdge.twin
	}

	innerEdge.updateFaceInCycle(newFace)
	return newFace
}

// fixInnerComponents repairs the inner component lists after the two
// half-edges were linked in: absorbed components are dropped, a merged
// floating cycle is re-registered, and components swallowed by a new face
// move over to it.
func (d *DCEL) fixInnerComponents(e0, e1 *HalfEdge, oldFace, newFace *Face) {
	var kept []*HalfEdge
	for _, component := range oldFace.innerComponents {
		if component.face == oldFace && !edgeOnCycle(e0, component) && !edgeOnCycle(e1, component) {
			kept = append(kept, component)
		}
	}
	oldFace.innerComponents = kept

	if oldFace.isOuter || !(edgeOnCycle(e0, oldFace.outerComponent) || edgeOnCycle(e1, oldFace.outerComponent)) {
		representative := e0
		if e0.face != oldFace {
			representative = e1
		}
		oldFace.innerComponents = append(oldFace.innerComponents, representative)
	}

	if newFace == nil {
		return
	}
	var moved []*HalfEdge
	kept = nil
	for _, component := range oldFace.innerComponents {
		if newFace.Contains(component.origin.point) && !edgeOnCycle(e0, component) && !edgeOnCycle(e1, component) {
			moved = append(moved, component)
		} else {
			kept = append(kept, component)
		}
	}
	oldFace.innerComponents = kept
	for _, component := range moved {
		newFace.innerComponents = append(newFace.innerComponents, component)
		component.updateFaceInCycle(newFace)
	}
}

// edgeOnCycle reports whether target appears on the cycle through start.
func edgeOnCycle(target, start *HalfEdge) bool {
	if start == nil {
		return false
	}
	for _, e := range start.Cycle() {
		if e == target {
			return true
		}
	}
	return false
}

func (d *DCEL) hasEdge(edge *HalfEdge) bool {
	for _, e := range d.edges {
		if e == edge {
			return true
		}
	}
	return false
}

// onEdge returns an edge whose interior contains the point, or nil. Half-edge
// pairs mean hits always come in twos; an odd count signals a broken
// structure.
func (d *DCEL) onEdge(p geom.Point) *HalfEdge {
	var found []*HalfEdge
	for _, e := range d.edges {
		if e == e.twin {
			continue
		}
		if p.Orientation(e.origin.point, e.Destination().point) == geom.Between &&
			p != e.origin.point && p != e.Destination().point {
			found = append(found, e)
		}
	}
	if len(found)%2 == 1 {
		fatalf("point %v lies on %d half-edges, which cannot happen in a paired structure", p, len(found))
	}
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
