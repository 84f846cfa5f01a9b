package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Line is the infinite line through two distinct points.
type Line struct {
	P1, P2 Point
}

// NewLine builds a line through two points, degenerate if they coincide.
func NewLine(p, q Point) (Line, error) {
	if p == q {
		return Line{}, errors.Wrapf(ErrDegenerate, "line needs two distinct points, got %v twice", p)
	}
	return Line{P1: p, P2: q}, nil
}

// IsParallelTo reports whether the two lines have the same direction, which
// includes coincident lines.
func (l Line) IsParallelTo(other Line) bool {
	d := l.P2.Sub(l.P1)
	e := other.P2.Sub(other.P1)
	return math.Abs(d.PerpDot(e)) < Epsilon
}

// IsSameAs reports whether the two lines are coincident.
func (l Line) IsSameAs(other Line) bool {
	return l.IsParallelTo(other) &&
		math.Abs(other.P1.Sub(l.P1).PerpDot(l.P2.Sub(l.P1))) < Epsilon
}

// Intersection returns the crossing point of the two lines. ok is false for
// parallel lines, coincident ones included.
func (l Line) Intersection(other Line) (p Point, ok bool) {
	denom := (l.P1.X-l.P2.X)*(other.P1.Y-other.P2.Y) - (l.P1.Y-l.P2.Y)*(other.P1.X-other.P2.X)
	if math.Abs(denom) < Epsilon {
		return Point{}, false
	}
	selfCross := l.P1.X*l.P2.Y - l.P1.Y*l.P2.X
	otherCross := other.P1.X*other.P2.Y - other.P1.Y*other.P2.X
	x := (selfCross*(other.P1.X-other.P2.X) - (l.P1.X-l.P2.X)*otherCross) / denom
	y := (selfCross*(other.P1.Y-other.P2.Y) - (l.P1.Y-l.P2.Y)*otherCross) / denom
	return Point{x, y}, true
}

func (l Line) String() string {
	return fmt.Sprintf("line %v--%v", l.P1, l.P2)
}
