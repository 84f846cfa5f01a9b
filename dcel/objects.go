// Package dcel implements a doubly-connected edge list: a planar subdivision
// stored as vertices, paired half-edges and faces. Inner face cycles run
// counterclockwise, outer boundaries clockwise.
package dcel

import (
	"fmt"

	"github.com/geomlab/planar/geom"
)

// Vertex is a corner of the subdivision. Every vertex owns a half-edge; an
// isolated vertex carries a placeholder half-edge that is its own twin, which
// gets recycled when the first real edge arrives.
type Vertex struct {
	point geom.Point
	edge  *HalfEdge
}

func newVertex(p geom.Point) *Vertex {
	v := &Vertex{point: p}
	e := &HalfEdge{origin: v}
	e.twin = e
	e.prev = e
	e.next = e
	v.edge = e
	return v
}

func (v *Vertex) Point() geom.Point {
	return v.point
}

func (v *Vertex) X() float64 {
	return v.point.X
}

func (v *Vertex) Y() float64 {
	return v.point.Y
}

// Edge is some half-edge leaving the vertex, or its placeholder when the
// vertex is isolated.
func (v *Vertex) Edge() *HalfEdge {
	return v.edge
}

// IsIsolated reports whether the vertex has no real edges yet.
func (v *Vertex) IsIsolated() bool {
	return v.edge == v.edge.twin
}

// OutgoingEdges lists the half-edges leaving the vertex in rotational order.
// Empty for an isolated vertex.
func (v *Vertex) OutgoingEdges() []*HalfEdge {
	if v.IsIsolated() {
		return nil
	}
	var out []*HalfEdge
	e := v.edge
	out = append(out, e)
	for e = e.twin.next; e != v.edge; e = e.twin.next {
		out = append(out, e)
	}
	return out
}

// IncidentEdges lists the outgoing half-edges and their twins.
func (v *Vertex) IncidentEdges() []*HalfEdge {
	var incident []*HalfEdge
	for _, out := range v.OutgoingEdges() {
		incident = append(incident, out, out.twin)
	}
	return incident
}

func (v *Vertex) String() string {
	return fmt.Sprintf("vertex@%v", v.point)
}

// HalfEdge is one direction of an edge. The twin runs the opposite way, and
// prev/next chain the cycle around the incident face.
type HalfEdge struct {
	origin *Vertex
	twin   *HalfEdge
	prev   *HalfEdge
	next   *HalfEdge
	face   *Face
}

func (e *HalfEdge) Origin() *Vertex {
	return e.origin
}

func (e *HalfEdge) Destination() *Vertex {
	return e.twin.origin
}

func (e *HalfEdge) Twin() *HalfEdge {
	return e.twin
}

func (e *HalfEdge) Prev() *HalfEdge {
	return e.prev
}

func (e *HalfEdge) Next() *HalfEdge {
	return e.next
}

func (e *HalfEdge) IncidentFace() *Face {
	return e.face
}

func (e *HalfEdge) Length() float64 {
	return e.origin.point.Distance(e.Destination().point)
}

// Segment is the underlying undirected geometry of the half-edge.
func (e *HalfEdge) Segment() geom.LineSegment {
	return geom.MustLineSegment(e.origin.point, e.Destination().point)
}

// setTwin pairs e and twin symmetrically.
func (e *HalfEdge) setTwin(twin *HalfEdge) {
	e.twin = twin
	twin.twin = e
}

// setNext chains next after e and keeps the prev pointer in sync.
func (e *HalfEdge) setNext(next *HalfEdge) {
	e.next = next
	next.prev = e
}

// Cycle walks the next pointers once around and back to e.
func (e *HalfEdge) Cycle() []*HalfEdge {
	cycle := []*HalfEdge{e}
	for cur := e.next; cur != e; cur = cur.next {
		cycle = append(cycle, cur)
	}
	return cycle
}

// VertexOnCycle reports whether v is the origin of any half-edge on e's cycle.
func (e *HalfEdge) VertexOnCycle(v *Vertex) bool {
	for _, cur := range e.Cycle() {
		if cur.origin == v {
			return true
		}
	}
	return false
}

func (e *HalfEdge) updateFaceInCycle(f *Face) {
	for _, cur := range e.Cycle() {
		cur.face = f
	}
}

// IsCycleClockwise applies the shoelace formula to the cycle starting at e.
func (e *HalfEdge) IsCycleClockwise() bool {
	a := 0.0
	for _, cur := range e.Cycle() {
		o, d := cur.origin.point, cur.Destination().point
		a += (o.Y + d.Y) * (o.X - d.X)
	}
	return a < -geom.Epsilon
}

// UpperAndLower orders the endpoints by the sheared vertical order.
func (e *HalfEdge) UpperAndLower() (upper, lower *Vertex) {
	p, q := e.origin, e.Destination()
	if p.Y() > q.Y() || (p.Y() == q.Y() && p.X() < q.X()) {
		return p, q
	}
	return q, p
}

// LeftAndRight orders the endpoints by the sheared horizontal order.
func (e *HalfEdge) LeftAndRight() (left, right *Vertex) {
	p, q := e.origin, e.Destination()
	if p.X() < q.X() || (p.X() == q.X() && p.Y() < q.Y()) {
		return p, q
	}
	return q, p
}

func (e *HalfEdge) Left() *Vertex {
	left, _ := e.LeftAndRight()
	return left
}

func (e *HalfEdge) Right() *Vertex {
	_, right := e.LeftAndRight()
	return right
}

func (e *HalfEdge) String() string {
	return fmt.Sprintf("edge@%v->%v", e.origin.point, e.Destination().point)
}

// Face is a connected region of the subdivision. The single outer face has a
// nil outer component. Inner components are representatives of the hole
// cycles floating inside the face.
type Face struct {
	outerComponent  *HalfEdge
	isOuter         bool
	innerComponents []*HalfEdge
}

func (f *Face) OuterComponent() *HalfEdge {
	return f.outerComponent
}

func (f *Face) IsOuter() bool {
	return f.isOuter
}

func (f *Face) InnerComponents() []*HalfEdge {
	return f.innerComponents
}

// OuterHalfEdges lists the cycle around the outer component, empty for the
// outer face.
func (f *Face) OuterHalfEdges() []*HalfEdge {
	if f.outerComponent == nil {
		return nil
	}
	return f.outerComponent.Cycle()
}

func (f *Face) OuterVertices() []*Vertex {
	edges := f.OuterHalfEdges()
	vertices := make([]*Vertex, 0, len(edges))
	for _, e := range edges {
		vertices = append(vertices, e.origin)
	}
	return vertices
}

func (f *Face) OuterPoints() []geom.Point {
	edges := f.OuterHalfEdges()
	points := make([]geom.Point, 0, len(edges))
	for _, e := range edges {
		points = append(points, e.origin.point)
	}
	return points
}

func (f *Face) InnerHalfEdges() []*HalfEdge {
	var edges []*HalfEdge
	for _, component := range f.innerComponents {
		edges = append(edges, component.Cycle()...)
	}
	return edges
}

// Contains tests the point against the outer boundary by ray casting. The ray
// runs horizontally from just left of the face to the point. Points exactly on
// the boundary give no defined answer.
func (f *Face) Contains(p geom.Point) bool {
	outer := f.OuterHalfEdges()
	if len(outer) == 0 {
		return false
	}

	startX := outer[0].origin.X()
	for _, e := range outer {
		if e.origin.X() < startX {
			startX = e.origin.X()
		}
	}
	startX--
	if p.X <= startX {
		return false
	}

	ray := geom.MustLineSegment(geom.Pt(startX, p.Y), p)
	inside := false
	for _, e := range outer {
		hit := e.Segment().Intersection(ray)
		if hit.Kind != geom.PointIntersection {
			continue
		}
		// A vertex on the ray would be counted once per incident edge. Only
		// count the crossing for the edge that continues below the ray.
		o, d := e.origin.point, e.Destination().point
		if (!hit.Point.CloseTo(o) || d.Y < p.Y) && (!hit.Point.CloseTo(d) || o.Y < p.Y) {
			inside = !inside
		}
	}
	return inside
}

// IsConvex reports whether the outer boundary makes no right turns. Needs at
// least three vertices.
func (f *Face) IsConvex() bool {
	if len(f.OuterVertices()) < 3 {
		fatalf("convexity is ill-defined for %d boundary vertices", len(f.OuterVertices()))
	}
	for _, e := range f.OuterHalfEdges() {
		if e.next.Destination().point.Orientation(e.origin.point, e.Destination().point) == geom.Right {
			return false
		}
	}
	return true
}

func (f *Face) String() string {
	if f.isOuter {
		return fmt.Sprintf("outer face with %d inner components", len(f.innerComponents))
	}
	if f.outerComponent == nil {
		return "face without boundary"
	}
	return fmt.Sprintf("face at %v with %d inner components", f.outerComponent.origin.point, len(f.innerComponents))
}
