package geom

import "fmt"

// Rect is an axis-aligned rectangle, normalized so Left <= Right and
// Lower <= Upper.
type Rect struct {
	Left, Right, Lower, Upper float64
}

// NewRect builds a rectangle from two opposite corners, in any order.
func NewRect(p, q Point) Rect {
	r := Rect{Left: p.X, Right: q.X, Lower: p.Y, Upper: q.Y}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	return r
}

func (r Rect) UpperLeft() Point {
	return Point{r.Left, r.Upper}
}

func (r Rect) UpperRight() Point {
	return Point{r.Right, r.Upper}
}

func (r Rect) LowerLeft() Point {
	return Point{r.Left, r.Lower}
}

func (r Rect) LowerRight() Point {
	return Point{r.Right, r.Lower}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Upper - r.Lower
}

// ContainsStrict reports whether p lies strictly inside the rectangle.
func (r Rect) ContainsStrict(p Point) bool {
	return r.Left < p.X && p.X < r.Right && r.Lower < p.Y && p.Y < r.Upper
}

func (r Rect) String() string {
	return fmt.Sprintf("rect [%g, %g] x [%g, %g]", r.Left, r.Right, r.Lower, r.Upper)
}
