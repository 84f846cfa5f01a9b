package dcel

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/geomlab/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixtures are SVG files holding a single polygon each. The loader is not
// a real SVG parser; it pulls the first polygon's points and panics on
// anything unexpected.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []geom.Point
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, geom.Pt(x, y))
	}
	return points
}

func TestPolygonFixtures(t *testing.T) {
	cases := []struct {
		name    string
		inside  []geom.Point
		outside []geom.Point
	}{
		{
			name:    "square",
			inside:  []geom.Point{geom.Pt(5, 5), geom.Pt(1, 9)},
			outside: []geom.Point{geom.Pt(-1, 5), geom.Pt(11, 11)},
		},
		{
			name:    "lshape",
			inside:  []geom.Point{geom.Pt(2, 8), geom.Pt(8, 2), geom.Pt(2, 2)},
			outside: []geom.Point{geom.Pt(8, 8), geom.Pt(5, 5), geom.Pt(-1, 1)},
		},
		{
			name:    "diamond",
			inside:  []geom.Point{geom.Pt(10, 10), geom.Pt(5, 10)},
			outside: []geom.Point{geom.Pt(1, 1), geom.Pt(19, 1)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			points := loadFixture(c.name)
			require.GreaterOrEqual(t, len(points), 3)

			d, err := FromPointsAndEdges(points, ringEdges(len(points)))
			require.NoError(t, err)
			require.Len(t, d.InnerFaces(), 1)

			inner := d.InnerFaces()[0]
			for _, p := range c.inside {
				assert.True(t, inner.Contains(p), "%v should be inside %s", p, c.name)
				assert.Equal(t, inner, d.FindContainingFace(p))
			}
			for _, p := range c.outside {
				assert.False(t, inner.Contains(p), "%v should be outside %s", p, c.name)
				assert.Equal(t, d.OuterFace(), d.FindContainingFace(p))
			}
		})
	}
}
