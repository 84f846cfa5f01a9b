package pointloc

import (
	"github.com/geomlab/planar/geom"
	"github.com/pkg/errors"
)

// Insertion of a segment works in three stages. First the segment is
// validated against the current decomposition using reads only, so degenerate
// input leaves everything untouched. Then every trapezoid the segment crosses
// is cut along it, with cut pieces on the same side merged into maximal
// strips and all neighbor slots rewired. Finally the leaves of the crossed
// trapezoids are replaced in the DAG by Y nodes over the strips, wrapped in X
// nodes at whichever of the two endpoints did not have a wall yet.

func (pl *PointLocation) newTrapezoid(top, bottom *Segment, left, right geom.Point) *Trapezoid {
	t := &Trapezoid{Top: top, Bottom: bottom, Left: left, Right: right}
	t.Leaf = &Node{Inner: LeafNode{Trapezoid: t}}
	pl.trapezoidCount++
	return t
}

// validate locates the segment in the decomposition and returns the
// trapezoids it crosses, left to right. All degeneracy detection happens
// here, before any mutation.
func (pl *PointLocation) validate(ls geom.LineSegment) ([]*Trapezoid, error) {
	for _, p := range []geom.Point{ls.Left(), ls.Right()} {
		if !pl.box.ContainsStrict(p) {
			return nil, errors.Wrapf(geom.ErrDegenerate, "endpoint %v of %v lies outside %v", p, ls, pl.box)
		}
	}
	if _, ok := pl.segments[ls]; ok {
		return nil, errors.Wrapf(geom.ErrDegenerate, "segment %v was already inserted", ls)
	}

	leaf, _, err := pl.locate(query{point: ls.Left(), segment: &ls})
	if err != nil {
		return nil, err
	}
	first := leaf.Inner.(LeafNode).Trapezoid
	if first.Left != ls.Left() {
		// A fresh left endpoint must not sit on the boundary of its cell.
		if err := endpointClearOf(ls.Left(), first); err != nil {
			return nil, err
		}
	}

	crossed, err := pl.followSegment(first, ls)
	if err != nil {
		return nil, err
	}

	last := crossed[len(crossed)-1]
	if last.Right != ls.Right() {
		if err := endpointClearOf(ls.Right(), last); err != nil {
			return nil, err
		}
	}
	return crossed, nil
}

func endpointClearOf(p geom.Point, t *Trapezoid) error {
	if p.VerticalOrientation(t.Top.LineSegment) == geom.On {
		return errors.Wrapf(geom.ErrDegenerate, "endpoint %v lies on segment %v", p, t.Top)
	}
	if p.VerticalOrientation(t.Bottom.LineSegment) == geom.On {
		return errors.Wrapf(geom.ErrDegenerate, "endpoint %v lies on segment %v", p, t.Bottom)
	}
	return nil
}

// followSegment walks the neighbor links from the trapezoid holding the left
// endpoint to the one holding the right endpoint. Each step exits through the
// right wall: below the wall point if the segment passes under it, above
// otherwise.
func (pl *PointLocation) followSegment(first *Trapezoid, ls geom.LineSegment) ([]*Trapezoid, error) {
	crossed := []*Trapezoid{first}
	cur := first
	for ls.Right().HorizontalOrientation(cur.Right) == geom.RightOf {
		switch cur.Right.VerticalOrientation(ls) {
		case geom.Above:
			cur = cur.LowerRight
		case geom.Below:
			cur = cur.UpperRight
		default:
			return nil, errors.Wrapf(geom.ErrDegenerate, "segment %v runs through endpoint %v", ls, cur.Right)
		}
		if cur == nil {
			fatalf("segment %v escaped the decomposition", ls)
		}
		crossed = append(crossed, cur)
		if len(crossed) > pl.trapezoidCount {
			fatalf("segment walk for %v does not terminate", ls)
		}
	}
	return crossed, nil
}

// splitAlong cuts the crossed trapezoids along the segment and splices the
// replacements into the neighbor graph and the DAG.
func (pl *PointLocation) splitAlong(s *Segment, crossed []*Trapezoid) {
	first := crossed[0]
	last := crossed[len(crossed)-1]
	leftNew := first.Left != s.Left()
	rightNew := last.Right != s.Right()

	var leftPiece, rightPiece *Trapezoid
	if leftNew {
		leftPiece = pl.newTrapezoid(first.Top, first.Bottom, first.Left, s.Left())
	}
	if rightNew {
		rightPiece = pl.newTrapezoid(last.Top, last.Bottom, s.Right(), last.Right)
	}

	// Build the strips above and below the segment. A strip keeps growing
	// rightwards until a wall point caps it on its own side of the segment;
	// the other side's strip continues across.
	aboveFor := make([]*Trapezoid, len(crossed))
	belowFor := make([]*Trapezoid, len(crossed))
	curAbove := pl.newTrapezoid(first.Top, s, s.Left(), geom.Point{})
	curBelow := pl.newTrapezoid(s, first.Bottom, s.Left(), geom.Point{})
	aboveFor[0] = curAbove
	belowFor[0] = curBelow

	for i := 0; i+1 < len(crossed); i++ {
		cur, next := crossed[i], crossed[i+1]
		corner := cur.Right
		switch corner.VerticalOrientation(s.LineSegment) {
		case geom.Above:
			// The wall survives above the segment: cap the upper strip and
			// start the next one, inheriting the outer neighbors.
			curAbove.Right = corner
			curAbove.UpperRight = cur.UpperRight
			if cur.UpperRight != nil {
				cur.UpperRight.replaceLeftNeighbor(cur, curAbove)
			}
			capped := pl.newTrapezoid(next.Top, s, corner, geom.Point{})
			curAbove.LowerRight = capped
			capped.LowerLeft = curAbove
			capped.UpperLeft = next.UpperLeft
			if next.UpperLeft != nil {
				next.UpperLeft.replaceRightNeighbor(next, capped)
			}
			curAbove = capped

		case geom.Below:
			curBelow.Right = corner
			curBelow.LowerRight = cur.LowerRight
			if cur.LowerRight != nil {
				cur.LowerRight.replaceLeftNeighbor(cur, curBelow)
			}
			capped := pl.newTrapezoid(s, next.Bottom, corner, geom.Point{})
			curBelow.UpperRight = capped
			capped.UpperLeft = curBelow
			capped.LowerLeft = next.LowerLeft
			if next.LowerLeft != nil {
				next.LowerLeft.replaceRightNeighbor(next, capped)
			}
			curBelow = capped

		default:
			fatalf("wall point %v on segment %v slipped past validation", corner, s)
		}
		aboveFor[i+1] = curAbove
		belowFor[i+1] = curBelow
	}
	curAbove.Right = s.Right()
	curBelow.Right = s.Right()

	// Wire up the left end.
	above0, below0 := aboveFor[0], belowFor[0]
	if leftNew {
		leftPiece.UpperLeft = first.UpperLeft
		if first.UpperLeft != nil {
			first.UpperLeft.replaceRightNeighbor(first, leftPiece)
		}
		leftPiece.LowerLeft = first.LowerLeft
		if first.LowerLeft != nil {
			first.LowerLeft.replaceRightNeighbor(first, leftPiece)
		}
		leftPiece.UpperRight = above0
		above0.UpperLeft = leftPiece
		leftPiece.LowerRight = below0
		below0.LowerLeft = leftPiece
	} else {
		above0.UpperLeft = first.UpperLeft
		if first.UpperLeft != nil {
			first.UpperLeft.replaceRightNeighbor(first, above0)
		}
		below0.LowerLeft = first.LowerLeft
		if first.LowerLeft != nil {
			first.LowerLeft.replaceRightNeighbor(first, below0)
		}
	}

	// And the right end.
	aboveK, belowK := aboveFor[len(crossed)-1], belowFor[len(crossed)-1]
	if rightNew {
		rightPiece.UpperRight = last.UpperRight
		if last.UpperRight != nil {
			last.UpperRight.replaceLeftNeighbor(last, rightPiece)
		}
		rightPiece.LowerRight = last.LowerRight
		if last.LowerRight != nil {
			last.LowerRight.replaceLeftNeighbor(last, rightPiece)
		}
		rightPiece.UpperLeft = aboveK
		aboveK.UpperRight = rightPiece
		rightPiece.LowerLeft = belowK
		belowK.LowerRight = rightPiece
	} else {
		aboveK.UpperRight = last.UpperRight
		if last.UpperRight != nil {
			last.UpperRight.replaceLeftNeighbor(last, aboveK)
		}
		belowK.LowerRight = last.LowerRight
		if last.LowerRight != nil {
			last.LowerRight.replaceLeftNeighbor(last, belowK)
		}
	}

	// Retire the crossed trapezoids from the DAG. Swapping each leaf's Inner
	// repoints every parent at once; strips spanning several crossed
	// trapezoids end up under several Y nodes through their shared leaf.
	for i, t := range crossed {
		var inner NodeInner = YNode{Key: s, Above: aboveFor[i].Leaf, Below: belowFor[i].Leaf}
		if i == len(crossed)-1 && rightNew {
			inner = XNode{Key: s.Right(), Left: &Node{Inner: inner}, Right: rightPiece.Leaf}
		}
		if i == 0 && leftNew {
			inner = XNode{Key: s.Left(), Left: leftPiece.Leaf, Right: &Node{Inner: inner}}
		}
		t.Leaf.Inner = inner
	}

	pl.trapezoidCount -= len(crossed)
	pl.segments[s.LineSegment] = s
}
