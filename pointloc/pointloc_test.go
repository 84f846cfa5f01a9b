package pointloc

import (
	"testing"

	"github.com/geomlab/planar/dcel"
	"github.com/geomlab/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLS(x1, y1, x2, y2 float64) geom.LineSegment {
	return geom.MustLineSegment(geom.Pt(x1, y1), geom.Pt(x2, y2))
}

func emptyOver(t *testing.T, box geom.Rect) *PointLocation {
	t.Helper()
	pl, err := New(box, nil, 1)
	require.NoError(t, err)
	return pl
}

func insertAll(t *testing.T, pl *PointLocation, segments ...geom.LineSegment) {
	t.Helper()
	for _, ls := range segments {
		require.NoError(t, pl.Insert(ls))
		require.NoError(t, pl.CheckConsistent())
	}
}

func TestInitialDecomposition(t *testing.T) {
	box := geom.NewRect(geom.Pt(0, 0), geom.Pt(40, 40))
	pl := emptyOver(t, box)

	trapezoids := pl.Trapezoids()
	require.Len(t, trapezoids, 1)
	initial := trapezoids[0]
	assert.Equal(t, box.UpperLeft(), initial.Left)
	assert.Equal(t, box.UpperRight(), initial.Right)
	assert.Nil(t, initial.UpperLeft)
	assert.Nil(t, initial.LowerLeft)
	assert.Nil(t, initial.UpperRight)
	assert.Nil(t, initial.LowerRight)
	assert.Empty(t, pl.Segments())
	assert.NoError(t, pl.CheckConsistent())

	// With nothing inserted every query lands in the outer face.
	face, err := pl.Query(geom.Pt(20, 20))
	require.NoError(t, err)
	assert.Same(t, pl.Subdivision().OuterFace(), face)
}

func TestDegenerateBox(t *testing.T) {
	_, err := New(geom.NewRect(geom.Pt(5, 0), geom.Pt(5, 10)), nil)
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestSingleSegment(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)))
	insertAll(t, pl, mustLS(2, 2, 10, 10))

	assert.Len(t, pl.Trapezoids(), 4)
	assert.Len(t, pl.Segments(), 1)

	above, err := pl.Locate(geom.Pt(6, 9))
	require.NoError(t, err)
	assert.Equal(t, mustLS(2, 2, 10, 10), above.Bottom.LineSegment)
	assert.Equal(t, geom.Pt(2, 2), above.Left)
	assert.Equal(t, geom.Pt(10, 10), above.Right)

	below, err := pl.Locate(geom.Pt(6, 3))
	require.NoError(t, err)
	assert.Equal(t, mustLS(2, 2, 10, 10), below.Top.LineSegment)
	assert.Same(t, above.Leaf.Inner.(LeafNode).Trapezoid, above)

	left, err := pl.Locate(geom.Pt(1, 10))
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(2, 2), left.Right)
	right, err := pl.Locate(geom.Pt(15, 10))
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(10, 10), right.Left)
}

// Three segments with staggered extents: a slanted one, a short horizontal one
// under it, and a long horizontal one over both.
func TestStaggeredSegments(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(40, 40)))
	insertAll(t, pl,
		mustLS(2, 6, 15, 4),
		mustLS(12, 2, 18, 2),
		mustLS(8, 8, 20, 8),
	)

	between, err := pl.Locate(geom.Pt(10, 7))
	require.NoError(t, err)
	assert.Equal(t, mustLS(8, 8, 20, 8), between.Top.LineSegment)
	assert.Equal(t, mustLS(2, 6, 15, 4), between.Bottom.LineSegment)
	assert.Equal(t, geom.Pt(8, 8), between.Left)
	assert.Equal(t, geom.Pt(15, 4), between.Right)

	// Past both lower segments: the cell reaches the bottom of the box.
	reaching, err := pl.Locate(geom.Pt(19, 5))
	require.NoError(t, err)
	assert.Equal(t, mustLS(8, 8, 20, 8), reaching.Top.LineSegment)
	assert.Same(t, pl.bottom, reaching.Bottom)
	assert.Equal(t, geom.Pt(18, 2), reaching.Left)
	assert.Equal(t, geom.Pt(20, 8), reaching.Right)
}

// The decomposition is canonical: whatever order the segments go in, queries
// land in cells with the same geometry.
func TestOrderIndependence(t *testing.T) {
	segments := []geom.LineSegment{
		mustLS(2, 6, 15, 4),
		mustLS(12, 2, 18, 2),
		mustLS(8, 8, 20, 8),
	}
	box := geom.NewRect(geom.Pt(0, 0), geom.Pt(40, 40))

	forward := emptyOver(t, box)
	insertAll(t, forward, segments...)
	backward := emptyOver(t, box)
	insertAll(t, backward, segments[2], segments[0], segments[1])

	probes := []geom.Point{
		{X: 10, Y: 7}, {X: 19, Y: 5}, {X: 5, Y: 5}, {X: 1, Y: 1},
		{X: 10, Y: 3}, {X: 13, Y: 1}, {X: 13, Y: 2.5}, {X: 16, Y: 5},
		{X: 10, Y: 20}, {X: 30, Y: 30}, {X: 25, Y: 3},
	}
	for _, p := range probes {
		a, err := forward.Locate(p)
		require.NoError(t, err)
		b, err := backward.Locate(p)
		require.NoError(t, err)
		assert.Equal(t, a.Top.LineSegment, b.Top.LineSegment, "probe %v", p)
		assert.Equal(t, a.Bottom.LineSegment, b.Bottom.LineSegment, "probe %v", p)
		assert.Equal(t, a.Left, b.Left, "probe %v", p)
		assert.Equal(t, a.Right, b.Right, "probe %v", p)
	}
}

func TestSharedLeftEndpoint(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)))
	insertAll(t, pl,
		mustLS(2, 2, 10, 10),
		mustLS(2, 2, 10, 4),
	)

	// The shared endpoint gets a single point node in the DAG.
	keyed := 0
	for _, node := range allNodes(pl.root) {
		if x, ok := node.Inner.(XNode); ok && x.Key == geom.Pt(2, 2) {
			keyed++
		}
	}
	assert.Equal(t, 1, keyed)

	wedge, err := pl.Locate(geom.Pt(6, 4.5))
	require.NoError(t, err)
	assert.Equal(t, mustLS(2, 2, 10, 10), wedge.Top.LineSegment)
	assert.Equal(t, mustLS(2, 2, 10, 4), wedge.Bottom.LineSegment)
}

func TestVerticalSegment(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(10, 10)))
	insertAll(t, pl, mustLS(5, 2, 5, 8))

	left, err := pl.Locate(geom.Pt(3, 5))
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(5, 2), left.Right)
	assert.Same(t, pl.top, left.Top)
	assert.Same(t, pl.bottom, left.Bottom)

	right, err := pl.Locate(geom.Pt(7, 5))
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(5, 8), right.Left)

	_, err = pl.Locate(geom.Pt(5, 5))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestDegenerateInserts(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)))
	insertAll(t, pl, mustLS(2, 2, 10, 10))

	for name, ls := range map[string]geom.LineSegment{
		"duplicate":             mustLS(2, 2, 10, 10),
		"outside the box":       mustLS(5, 1, 25, 1),
		"endpoint on interior":  mustLS(5, 5, 9, 3),
		"right endpoint on":     mustLS(1, 5, 5, 5),
		"through an endpoint":   mustLS(1, 3, 3, 1),
		"overlapping prefix":    mustLS(2, 2, 6, 6),
		"collinear from inside": mustLS(4, 4, 8, 8),
	} {
		t.Run(name, func(t *testing.T) {
			err := pl.Insert(ls)
			assert.ErrorIs(t, err, geom.ErrDegenerate)
			// Failed inserts leave both structures untouched.
			assert.NoError(t, pl.CheckConsistent())
			assert.Len(t, pl.Segments(), 1)
			assert.NoError(t, pl.Subdivision().CheckWellFormed())
		})
	}
}

func TestDegenerateQueries(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)))
	insertAll(t, pl, mustLS(2, 2, 10, 10))

	_, err := pl.Query(geom.Pt(5, 5))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	_, err = pl.Locate(geom.Pt(2, 2))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	_, err = pl.Locate(geom.Pt(30, 5))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	_, err = pl.Locate(geom.Pt(5, 0))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func diamond() *dcel.DCEL {
	points := []geom.Point{{X: 10, Y: 2}, {X: 18, Y: 10}, {X: 10, Y: 18}, {X: 2, Y: 10}}
	d, err := dcel.FromPointsAndEdges(points, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if err != nil {
		panic(err)
	}
	return d
}

func TestQueryAgainstSubdivision(t *testing.T) {
	d := diamond()
	pl, err := New(geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)), d, 7)
	require.NoError(t, err)
	require.NoError(t, pl.CheckConsistent())

	inner, err := pl.Query(geom.Pt(10, 10))
	require.NoError(t, err)
	assert.NotSame(t, d.OuterFace(), inner)
	assert.Same(t, d.FindContainingFace(geom.Pt(10, 10)), inner)

	outer, err := pl.Query(geom.Pt(1, 1))
	require.NoError(t, err)
	assert.Same(t, d.OuterFace(), outer)
	outer, err = pl.Query(geom.Pt(19, 19))
	require.NoError(t, err)
	assert.Same(t, d.OuterFace(), outer)
}

func TestSeedsAgree(t *testing.T) {
	box := geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20))
	one, err := New(box, diamond(), 1)
	require.NoError(t, err)
	two, err := New(box, diamond(), 2)
	require.NoError(t, err)

	for _, p := range []geom.Point{{X: 10, Y: 10}, {X: 1, Y: 1}, {X: 5, Y: 10}, {X: 10, Y: 16}} {
		a, err := one.Query(p)
		require.NoError(t, err)
		b, err := two.Query(p)
		require.NoError(t, err)
		assert.Equal(t, a == one.Subdivision().OuterFace(), b == two.Subdivision().OuterFace(), "probe %v", p)
	}
}

func TestInsertBuildsSubdivision(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)))
	insertAll(t, pl,
		mustLS(10, 2, 18, 10),
		mustLS(18, 10, 10, 18),
		mustLS(10, 18, 2, 10),
		mustLS(2, 10, 10, 2),
	)
	require.NoError(t, pl.Subdivision().CheckWellFormed())
	assert.Len(t, pl.Subdivision().Faces(), 2)

	face, err := pl.Query(geom.Pt(10, 10))
	require.NoError(t, err)
	assert.NotSame(t, pl.Subdivision().OuterFace(), face)

	face, path, err := pl.QueryPath(geom.Pt(10, 10))
	require.NoError(t, err)
	assert.NotSame(t, pl.Subdivision().OuterFace(), face)
	assert.NotEmpty(t, path)
	_, isLeaf := path[len(path)-1].Inner.(LeafNode)
	assert.True(t, isLeaf)
}

func TestClearResets(t *testing.T) {
	pl := emptyOver(t, geom.NewRect(geom.Pt(0, 0), geom.Pt(20, 20)))
	insertAll(t, pl, mustLS(2, 2, 10, 10), mustLS(2, 2, 10, 4))

	pl.Clear()
	assert.Len(t, pl.Trapezoids(), 1)
	assert.Empty(t, pl.Segments())
	assert.NoError(t, pl.CheckConsistent())
	face, err := pl.Query(geom.Pt(10, 10))
	require.NoError(t, err)
	assert.Same(t, pl.Subdivision().OuterFace(), face)
}
