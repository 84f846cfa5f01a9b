package pointloc

import (
	"fmt"

	"github.com/geomlab/planar/dbg"
	"github.com/geomlab/planar/dcel"
	"github.com/geomlab/planar/geom"
)

// Segment ties a piece of decomposition geometry back to the subdivision it
// came from. The half-edge is the one directed left to right, whose incident
// face is the face above the segment; walls of the bounding box have no
// half-edge and carry their face directly.
type Segment struct {
	geom.LineSegment
	halfEdge  *dcel.HalfEdge
	aboveFace *dcel.Face
}

func newSegment(ls geom.LineSegment, he *dcel.HalfEdge) *Segment {
	return &Segment{LineSegment: ls, halfEdge: he}
}

func newWallSegment(ls geom.LineSegment, above *dcel.Face) *Segment {
	return &Segment{LineSegment: ls, aboveFace: above}
}

// AboveFace resolves the subdivision face directly above the segment. Going
// through the half-edge keeps the answer correct when later insertions split
// faces in the subdivision.
func (s *Segment) AboveFace() *dcel.Face {
	if s.halfEdge != nil {
		return s.halfEdge.IncidentFace()
	}
	return s.aboveFace
}

func (s *Segment) String() string {
	return fmt.Sprintf("%s %v", dbg.Name(s), s.LineSegment)
}
