package pointloc

import (
	"fmt"

	"github.com/geomlab/planar/dbg"
	"github.com/geomlab/planar/geom"
	"github.com/logrusorgru/aurora"
)

// Trapezoid is one cell of the decomposition: bounded above and below by
// segments, and on each side by the vertical wall through a point. The Left
// and Right points are the wall generators, not corners; a wall degenerates
// to nothing when the bounding segments meet there.
//
// Each side has up to two neighbors across its wall. The upper pair shares
// the trapezoid's Top segment, the lower pair its Bottom. A slot is nil
// exactly when its shared segment terminates at the wall point, or the wall
// lies on the bounding box.
type Trapezoid struct {
	Top, Bottom *Segment
	Left, Right geom.Point

	UpperLeft, LowerLeft   *Trapezoid
	UpperRight, LowerRight *Trapezoid

	// Leaf is the DAG position holding this trapezoid. Replacing Leaf.Inner
	// retires the trapezoid from the search structure through all parents at
	// once.
	Leaf *Node
}

// replaceLeftNeighbor rewrites any left slot pointing at orig to point at
// replacement.
func (t *Trapezoid) replaceLeftNeighbor(orig, replacement *Trapezoid) {
	if t.UpperLeft == orig {
		t.UpperLeft = replacement
	}
	if t.LowerLeft == orig {
		t.LowerLeft = replacement
	}
}

// replaceRightNeighbor rewrites any right slot pointing at orig to point at
// replacement.
func (t *Trapezoid) replaceRightNeighbor(orig, replacement *Trapezoid) {
	if t.UpperRight == orig {
		t.UpperRight = replacement
	}
	if t.LowerRight == orig {
		t.LowerRight = replacement
	}
}

// HasPoint reports whether p generates one of the walls or is an endpoint of
// a bounding segment.
func (t *Trapezoid) HasPoint(p geom.Point) bool {
	if p == t.Left || p == t.Right {
		return true
	}
	return t.Top.HasEndpoint(p) || t.Bottom.HasEndpoint(p)
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("trapezoid %s <L: %v, R: %v, T: %s, B: %s> { ↖ %s ↙ %s ↗ %s ↘ %s }",
		t.DbgName(),
		t.Left, t.Right,
		dbg.Name(t.Top), dbg.Name(t.Bottom),
		dbg.Name(t.UpperLeft), dbg.Name(t.LowerLeft),
		dbg.Name(t.UpperRight), dbg.Name(t.LowerRight),
	)
}

func (t *Trapezoid) DbgName() string {
	name := dbg.Name(t)
	// Trapezoids touching the bounding box in cyan, interior ones in green.
	if t.UpperLeft == nil && t.LowerLeft == nil || t.UpperRight == nil && t.LowerRight == nil {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}
