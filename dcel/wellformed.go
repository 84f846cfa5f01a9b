package dcel

import (
	"github.com/geomlab/planar/geom"
	"github.com/pkg/errors"
)

// CheckWellFormed verifies every structural invariant of the subdivision. It
// is meant as a test oracle; a healthy DCEL never needs it at runtime.
func (d *DCEL) CheckWellFormed() error {
	if len(d.vertices) == 0 {
		if len(d.edges) != 0 || len(d.faces) != 1 {
			return errors.Errorf("empty subdivision should hold no edges and only the outer face")
		}
		return nil
	}

	for _, e := range d.edges {
		// Placeholder edges of isolated vertices carry no structure to check.
		if e == e.twin {
			continue
		}

		if e.prev.next != e {
			return errors.Errorf("%v: prev.next does not come back", e)
		}
		if e.next.prev != e {
			return errors.Errorf("%v: next.prev does not come back", e)
		}

		if e.prev.Destination().point != e.origin.point {
			return errors.Errorf("%v: prev does not end at the origin", e)
		}
		if e.next.origin.point != e.Destination().point {
			return errors.Errorf("%v: next does not start at the destination", e)
		}

		if e.Length() <= geom.Epsilon {
			return errors.Errorf("%v: zero length edge", e)
		}

		if e.twin.twin != e {
			return errors.Errorf("%v: twin.twin does not come back", e)
		}
		if e.origin.point != e.twin.Destination().point || e.Destination().point != e.twin.origin.point {
			return errors.Errorf("%v: twin endpoints do not mirror", e)
		}

		if e.face == nil {
			return errors.Errorf("%v: no incident face", e)
		}
		if !containsEdge(e.face.OuterHalfEdges(), e) && !containsEdge(e.face.InnerHalfEdges(), e) {
			return errors.Errorf("%v: not listed among the components of its incident face %v", e, e.face)
		}
	}

	for _, f := range d.faces {
		if f.isOuter && f.outerComponent != nil {
			return errors.Errorf("outer face has an outer component")
		}
		if f.isOuter && f != d.outerFace {
			return errors.Errorf("more than one outer face: %v", f)
		}

		for _, e := range f.OuterHalfEdges() {
			if e.face != f {
				return errors.Errorf("%v on the boundary of %v is incident to %v", e, f, e.face)
			}
		}
		for _, component := range f.innerComponents {
			if component.face != f {
				return errors.Errorf("inner component %v of %v is incident to %v", component, f, component.face)
			}
		}
	}

	return nil
}

func containsEdge(edges []*HalfEdge, target *HalfEdge) bool {
	for _, e := range edges {
		if e == target {
			return true
		}
	}
	return false
}
