// Package geom provides the primitives that planar subdivision algorithms are
// built on: points, lines, line segments and axis-aligned rectangles, plus the
// orientation predicates that classify points against them.
//
// Equal y values are disambiguated lexicographically (the "symbolic shear"):
// whenever two points share a coordinate, the other coordinate breaks the tie.
// This lets the algorithms above assume general position without actually
// perturbing the input.
package geom

import "github.com/pkg/errors"

// Epsilon bounds the error tolerated by the predicates. Chosen by testing the
// algorithms built on top of them.
const Epsilon = 1e-9

// ErrDegenerate marks input the subdivision algorithms refuse to process, such
// as a zero-length segment, overlapping segments, or a query point exactly on
// a segment. Callers detect it with errors.Is.
var ErrDegenerate = errors.New("degenerate configuration")

// Orientation classifies a point against the directed line through two other
// points.
type Orientation int

const (
	Left Orientation = iota
	Right
	Between
	BeforeSource
	BehindTarget
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	case Between:
		return "between"
	case BeforeSource:
		return "before source"
	case BehindTarget:
		return "behind target"
	}
	return "invalid orientation"
}

// VerticalOrientation classifies a point against a segment along the vertical
// axis.
type VerticalOrientation int

const (
	Above VerticalOrientation = iota
	On
	Below
)

func (o VerticalOrientation) String() string {
	switch o {
	case Above:
		return "above"
	case On:
		return "on"
	case Below:
		return "below"
	}
	return "invalid vertical orientation"
}

// HorizontalOrientation classifies a point against another point along the
// sheared horizontal axis.
type HorizontalOrientation int

const (
	LeftOf HorizontalOrientation = iota
	RightOf
	Coincident
)

func (o HorizontalOrientation) String() string {
	switch o {
	case LeftOf:
		return "left of"
	case RightOf:
		return "right of"
	case Coincident:
		return "coincident"
	}
	return "invalid horizontal orientation"
}
