// Package pointloc answers point location queries against a planar
// subdivision. It maintains a trapezoidal decomposition of a bounding box and
// a search DAG over it, built by randomized incremental insertion of the
// subdivision's edges. Queries take expected logarithmic time.
package pointloc

import (
	"math/rand"
	"time"

	"github.com/geomlab/planar/dcel"
	"github.com/geomlab/planar/geom"
	"github.com/pkg/errors"
)

// PointLocation couples a trapezoidal decomposition with the subdivision it
// indexes. The subdivision stays in lockstep: segments inserted here are
// mirrored into it.
type PointLocation struct {
	box  geom.Rect
	subd *dcel.DCEL

	root           *Node
	top, bottom    *Segment
	trapezoidCount int
	segments       map[geom.LineSegment]*Segment
	rng            *rand.Rand
}

// New builds a point location structure over the subdivision, which may be
// nil for an initially empty one. All subdivision edges must lie strictly
// inside the box. The optional seed makes the insertion order, and with it
// the exact DAG shape, reproducible; without it the order is randomized from
// the clock. The answers do not depend on the order either way.
func New(box geom.Rect, subdivision *dcel.DCEL, seed ...int64) (*PointLocation, error) {
	if box.Width() <= 0 || box.Height() <= 0 {
		return nil, errors.Wrapf(geom.ErrDegenerate, "bounding box %v has no interior", box)
	}
	if subdivision == nil {
		subdivision = dcel.New()
	}

	s := int64(0)
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	pl := &PointLocation{
		box:  box,
		subd: subdivision,
		rng:  rand.New(rand.NewSource(s)),
	}
	pl.reset()

	// One segment per undirected edge: the half-edge directed left to right
	// carries the face above.
	var pending []*dcel.HalfEdge
	for _, e := range subdivision.Edges() {
		if e == e.Twin() {
			continue
		}
		if e.Origin() == e.Left() {
			pending = append(pending, e)
		}
	}
	pl.rng.Shuffle(len(pending), func(i, j int) {
		pending[i], pending[j] = pending[j], pending[i]
	})
	for _, e := range pending {
		if err := pl.insertHalfEdge(e); err != nil {
			return nil, err
		}
	}
	return pl, nil
}

// reset rebuilds the initial decomposition: the whole box as one trapezoid
// between its top and bottom walls.
func (pl *PointLocation) reset() {
	pl.top = newWallSegment(geom.MustLineSegment(pl.box.UpperLeft(), pl.box.UpperRight()), nil)
	pl.bottom = newWallSegment(geom.MustLineSegment(pl.box.LowerLeft(), pl.box.LowerRight()), pl.subd.OuterFace())
	pl.segments = make(map[geom.LineSegment]*Segment)
	pl.trapezoidCount = 0
	initial := pl.newTrapezoid(pl.top, pl.bottom, pl.box.UpperLeft(), pl.box.UpperRight())
	pl.root = initial.Leaf
}

// Box returns the bounding box of the decomposition.
func (pl *PointLocation) Box() geom.Rect {
	return pl.box
}

// Subdivision returns the underlying edge list.
func (pl *PointLocation) Subdivision() *dcel.DCEL {
	return pl.subd
}

// Segments lists the inserted segments, box walls excluded.
func (pl *PointLocation) Segments() []geom.LineSegment {
	out := make([]geom.LineSegment, 0, len(pl.segments))
	for ls := range pl.segments {
		out = append(out, ls)
	}
	return out
}

// Trapezoids lists the cells of the current decomposition.
func (pl *PointLocation) Trapezoids() []*Trapezoid {
	return leafTrapezoids(pl.root)
}

// Clear drops the decomposition and the underlying subdivision back to their
// empty states.
func (pl *PointLocation) Clear() {
	pl.subd.Clear()
	pl.reset()
}

// Insert adds a segment to the subdivision and the decomposition. Both
// endpoints must lie strictly inside the box, and the segment must not cross,
// overlap, or run through an endpoint of anything already inserted. On a
// degenerate input error, neither structure has changed.
func (pl *PointLocation) Insert(ls geom.LineSegment) error {
	crossed, err := pl.validate(ls)
	if err != nil {
		return err
	}

	pl.subd.AddVertex(ls.Left())
	pl.subd.AddVertex(ls.Right())
	if err := pl.subd.AddEdgeByPoints(ls.Left(), ls.Right()); err != nil {
		return err
	}
	he := pl.subd.FindHalfEdge(ls.Left(), ls.Right())
	if he == nil {
		fatalf("subdivision lost the edge %v right after inserting it", ls)
	}

	pl.splitAlong(newSegment(ls, he), crossed)
	return nil
}

// insertHalfEdge adds an edge that already exists in the subdivision.
func (pl *PointLocation) insertHalfEdge(he *dcel.HalfEdge) error {
	ls := he.Segment()
	crossed, err := pl.validate(ls)
	if err != nil {
		return err
	}
	pl.splitAlong(newSegment(ls, he), crossed)
	return nil
}

// Query returns the subdivision face containing the point. The face is
// resolved through the segment directly below the point's trapezoid.
func (pl *PointLocation) Query(p geom.Point) (*dcel.Face, error) {
	t, err := pl.Locate(p)
	if err != nil {
		return nil, err
	}
	face := t.Bottom.AboveFace()
	if face == nil {
		fatalf("no face bound to the segment below %v", p)
	}
	return face, nil
}

// QueryPath is Query plus the DAG nodes visited on the way down, root first.
func (pl *PointLocation) QueryPath(p geom.Point) (*dcel.Face, []*Node, error) {
	leaf, path, err := pl.locate(query{point: p})
	if err != nil {
		return nil, nil, err
	}
	face := leaf.Inner.(LeafNode).Trapezoid.Bottom.AboveFace()
	if face == nil {
		fatalf("no face bound to the segment below %v", p)
	}
	return face, path, nil
}

// Locate returns the trapezoid of the decomposition containing the point.
func (pl *PointLocation) Locate(p geom.Point) (*Trapezoid, error) {
	if !pl.box.ContainsStrict(p) {
		return nil, errors.Wrapf(geom.ErrDegenerate, "query point %v lies outside %v", p, pl.box)
	}
	leaf, _, err := pl.locate(query{point: p})
	if err != nil {
		return nil, err
	}
	return leaf.Inner.(LeafNode).Trapezoid, nil
}

// query is a point descending the DAG. During insertion it carries the
// segment it is the left endpoint of, which disambiguates descents through
// nodes keyed on already inserted geometry sharing that endpoint.
type query struct {
	point   geom.Point
	segment *geom.LineSegment
}

// locate descends from the root to the leaf whose trapezoid contains the
// query, collecting the path. Points on inserted segments are degenerate:
// for a plain query nothing sensible can be answered, and for an insertion
// it means overlapping or touching input.
func (pl *PointLocation) locate(q query) (*Node, []*Node, error) {
	node := pl.root
	var path []*Node
	for {
		path = append(path, node)
		switch inner := node.Inner.(type) {
		case LeafNode:
			return node, path, nil

		case XNode:
			if q.point.HorizontalOrientation(inner.Key) == geom.LeftOf {
				node = inner.Left
			} else {
				node = inner.Right
			}

		case YNode:
			switch q.point.VerticalOrientation(inner.Key.LineSegment) {
			case geom.Above:
				node = inner.Above
			case geom.Below:
				node = inner.Below
			default:
				next, err := pl.resolveOnSegment(q, inner)
				if err != nil {
					return nil, nil, err
				}
				node = next
			}

		default:
			fatalf("unknown node kind %T in the search structure", node.Inner)
		}
	}
}

// resolveOnSegment handles a query landing exactly on a Y node's segment.
// Only an insertion descending from a shared endpoint can continue: the
// steeper candidate passes above the key. Equal slopes mean the segments
// overlap.
func (pl *PointLocation) resolveOnSegment(q query, inner YNode) (*Node, error) {
	if q.segment == nil {
		return nil, errors.Wrapf(geom.ErrDegenerate, "query point %v lies on segment %v", q.point, inner.Key)
	}
	if !inner.Key.HasEndpoint(q.point) {
		return nil, errors.Wrapf(geom.ErrDegenerate,
			"endpoint %v of %v lies on segment %v", q.point, q.segment, inner.Key)
	}
	candidateSlope := q.segment.Slope()
	keySlope := inner.Key.Slope()
	if candidateSlope == keySlope {
		return nil, errors.Wrapf(geom.ErrDegenerate, "segment %v overlaps %v", q.segment, inner.Key)
	}
	if candidateSlope > keySlope {
		return inner.Above, nil
	}
	return inner.Below, nil
}
