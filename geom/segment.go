package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// LineSegment is a segment between two distinct endpoints. The endpoints are
// normalized at construction: upper is the endpoint with the greater y value,
// with the smaller x value breaking ties (the sheared order). Two segments
// with the same endpoints are == regardless of the order they were given in,
// which also makes LineSegment usable as a map key.
type LineSegment struct {
	upper, lower Point
}

// NewLineSegment builds a segment from two endpoints. Equal endpoints are a
// degenerate input.
func NewLineSegment(p, q Point) (LineSegment, error) {
	if p == q {
		return LineSegment{}, errors.Wrapf(ErrDegenerate, "line segment needs two distinct endpoints, got %v twice", p)
	}
	if p.Y > q.Y || (p.Y == q.Y && p.X < q.X) {
		return LineSegment{upper: p, lower: q}, nil
	}
	return LineSegment{upper: q, lower: p}, nil
}

// MustLineSegment is NewLineSegment for endpoints known to be distinct.
func MustLineSegment(p, q Point) LineSegment {
	s, err := NewLineSegment(p, q)
	if err != nil {
		panic(err)
	}
	return s
}

func (s LineSegment) Upper() Point {
	return s.upper
}

func (s LineSegment) Lower() Point {
	return s.lower
}

// Left is the endpoint that comes first in the sheared horizontal order.
func (s LineSegment) Left() Point {
	if s.upper.X < s.lower.X || (s.upper.X == s.lower.X && s.upper.Y < s.lower.Y) {
		return s.upper
	}
	return s.lower
}

// Right is the endpoint that comes last in the sheared horizontal order.
func (s LineSegment) Right() Point {
	if s.upper.X > s.lower.X || (s.upper.X == s.lower.X && s.upper.Y > s.lower.Y) {
		return s.upper
	}
	return s.lower
}

// HasEndpoint reports whether p is one of the two endpoints.
func (s LineSegment) HasEndpoint(p Point) bool {
	return p == s.upper || p == s.lower
}

// YFromX solves the induced line for y at the given x. Fails on vertical
// segments.
func (s LineSegment) YFromX(x float64) (float64, error) {
	if s.upper.X == s.lower.X {
		return 0, errors.Errorf("no unique y for vertical segment %v", s)
	}
	return (x-s.upper.X)/(s.lower.X-s.upper.X)*(s.lower.Y-s.upper.Y) + s.upper.Y, nil
}

// Slope of the induced line, +Inf for vertical segments.
func (s LineSegment) Slope() float64 {
	left, right := s.Left(), s.Right()
	if left.X == right.X {
		return math.Inf(1)
	}
	return (left.Y - right.Y) / (left.X - right.X)
}

func (s LineSegment) Length() float64 {
	return s.upper.Distance(s.lower)
}

// IntersectionKind tags the result of a segment intersection test.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	OverlapIntersection
)

// Intersection is the result of intersecting two segments. Point is set for
// PointIntersection, Overlap for OverlapIntersection (collinear segments that
// share more than a point).
type Intersection struct {
	Kind    IntersectionKind
	Point   Point
	Overlap LineSegment
}

// Intersection intersects s with other. Collinear touching segments report
// the shared endpoint as a PointIntersection.
func (s LineSegment) Intersection(other LineSegment) Intersection {
	selfDir := s.upper.Sub(s.lower)
	otherDir := other.upper.Sub(other.lower)
	lowerOffset := other.lower.Sub(s.lower)
	areaSelfOther := selfDir.PerpDot(otherDir)
	areaOffsetOther := lowerOffset.PerpDot(otherDir)
	areaOffsetSelf := lowerOffset.PerpDot(selfDir)

	if math.Abs(areaSelfOther) > Epsilon {
		a := areaOffsetOther / areaSelfOther
		b := areaOffsetSelf / areaSelfOther
		if -Epsilon <= a && a <= 1+Epsilon && -Epsilon <= b && b <= 1+Epsilon {
			return Intersection{Kind: PointIntersection, Point: s.lower.Add(selfDir.Mul(a))}
		}
		return Intersection{}
	}

	// Parallel. Check both signed areas for collinearity, for robustness.
	if math.Abs(areaOffsetOther) <= Epsilon || math.Abs(areaOffsetSelf) <= Epsilon {
		selfDirDot := selfDir.Dot(selfDir)
		upperOffset := other.upper.Sub(s.lower)
		aLower := lowerOffset.Dot(selfDir) / selfDirDot
		aUpper := upperOffset.Dot(selfDir) / selfDirDot

		// aLower < aUpper should hold in theory, but guard against float noise.
		aLo := math.Max(0, math.Min(aLower, aUpper))
		aHi := math.Min(1, math.Max(aLower, aUpper))
		if aLo > aHi {
			return Intersection{}
		}
		hi := s.lower.Add(selfDir.Mul(aHi))
		if aLo == aHi {
			return Intersection{Kind: PointIntersection, Point: hi}
		}
		lo := s.lower.Add(selfDir.Mul(aLo))
		return Intersection{Kind: OverlapIntersection, Overlap: MustLineSegment(lo, hi)}
	}

	return Intersection{}
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%v--%v", s.Left(), s.Right())
}
