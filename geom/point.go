package geom

import (
	"fmt"
	"math"
)

// Point is a location in the plane. Points are small value types; compare them
// with ==. Exact equality is intentional: the subdivision structures use
// points as map keys and must never lose precision.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{s * p.X, s * p.Y}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot is the perpendicular dot product, twice the signed area of the
// triangle (origin, p, q).
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// CloseTo reports whether the two points are within Epsilon of each other.
func (p Point) CloseTo(q Point) bool {
	return p.Distance(q) < Epsilon
}

// Orientation locates p relative to the directed line from source to target.
// Off the line the answer is Left or Right; on the line it distinguishes
// whether p falls before, on, or behind the segment between them. The two
// reference points must differ.
func (p Point) Orientation(source, target Point) Orientation {
	if source == target {
		panic("orientation needs two distinct reference points")
	}

	pointDir := p.Sub(source)
	targetDir := target.Sub(source)
	signedArea := pointDir.PerpDot(targetDir)

	if signedArea < -Epsilon {
		return Left
	}
	if signedArea > Epsilon {
		return Right
	}

	// On the line. The parameter needs no epsilon: it is exactly 0 at the
	// source and exactly 1 at the target.
	a := pointDir.Dot(targetDir) / targetDir.Dot(targetDir)
	switch {
	case a < 0:
		return BeforeSource
	case a > 1:
		return BehindTarget
	}
	return Between
}

// VerticalOrientation locates p above, on, or below the line induced by the
// segment. A vertical segment is treated as sheared infinitesimally clockwise,
// so points left of it count as above and points right of it as below.
func (p Point) VerticalOrientation(s LineSegment) VerticalOrientation {
	if s.Left().X == s.Right().X {
		switch {
		case p.X < s.Left().X:
			return Above
		case p.X > s.Left().X:
			return Below
		}
		return On
	}
	y, _ := s.YFromX(p.X)
	switch {
	case y-p.Y < -Epsilon:
		return Above
	case y-p.Y > Epsilon:
		return Below
	}
	return On
}

// HorizontalOrientation locates p left or right of q in the sheared order:
// by x, then by y for equal x. Only identical points are Coincident.
func (p Point) HorizontalOrientation(q Point) HorizontalOrientation {
	if p == q {
		return Coincident
	}
	if p.X < q.X || (p.X == q.X && p.Y < q.Y) {
		return LeftOf
	}
	return RightOf
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
