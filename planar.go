// Package planar is the front door to the module: planar subdivisions as
// doubly connected edge lists, and expected-logarithmic point location over
// them through a trapezoidal decomposition.
//
// The heavy lifting lives in the subpackages. geom has the primitives and
// predicates, dcel the subdivision structure, pointloc the decomposition and
// search DAG. This package re-exports the main types and constructors so
// simple uses need a single import.
package planar

import (
	"github.com/geomlab/planar/dcel"
	"github.com/geomlab/planar/geom"
	"github.com/geomlab/planar/pointloc"
)

type (
	Point         = geom.Point
	LineSegment   = geom.LineSegment
	Rect          = geom.Rect
	DCEL          = dcel.DCEL
	Vertex        = dcel.Vertex
	HalfEdge      = dcel.HalfEdge
	Face          = dcel.Face
	PointLocation = pointloc.PointLocation
	Trapezoid     = pointloc.Trapezoid
)

// ErrDegenerate is returned, wrapped, for input the structures cannot
// represent: zero-length segments, points outside the bounding box, touching
// or overlapping geometry.
var ErrDegenerate = geom.ErrDegenerate

// Pt is shorthand for a point literal.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// NewSubdivision builds a subdivision from indexed points and the edges
// between them.
func NewSubdivision(points []Point, edges [][2]int) (*DCEL, error) {
	return dcel.FromPointsAndEdges(points, edges)
}

// NewLocator builds a point location structure over the subdivision, which
// may be nil for an initially empty one. Every subdivision edge must lie
// strictly inside the box.
func NewLocator(box Rect, subdivision *DCEL, seed ...int64) (*PointLocation, error) {
	return pointloc.New(box, subdivision, seed...)
}
