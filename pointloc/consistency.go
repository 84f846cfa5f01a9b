package pointloc

import (
	"github.com/geomlab/planar/geom"
	"github.com/pkg/errors"
)

// CheckConsistent verifies the structural invariants of the DAG and the
// neighbor graph. It is meant for tests and debugging; a healthy structure
// never trips it.
func (pl *PointLocation) CheckConsistent() error {
	var leaves []*Trapezoid
	current := map[*Trapezoid]struct{}{}

	for _, node := range allNodes(pl.root) {
		switch inner := node.Inner.(type) {
		case XNode:
			if inner.Left == nil || inner.Right == nil {
				return errors.Errorf("point node at %v has a missing child", inner.Key)
			}
		case YNode:
			if inner.Key == nil {
				return errors.Errorf("segment node without a segment")
			}
			if inner.Above == nil || inner.Below == nil {
				return errors.Errorf("segment node at %v has a missing child", inner.Key)
			}
		case LeafNode:
			t := inner.Trapezoid
			if t == nil {
				return errors.Errorf("leaf without a trapezoid")
			}
			if t.Leaf != node {
				return errors.Errorf("%s does not point back at its leaf", t)
			}
			leaves = append(leaves, t)
			current[t] = struct{}{}
		default:
			return errors.Errorf("unknown node kind %T", node.Inner)
		}
	}

	if len(leaves) != pl.trapezoidCount {
		return errors.Errorf("%d leaves reachable, %d trapezoids accounted for",
			len(leaves), pl.trapezoidCount)
	}

	for _, t := range leaves {
		if err := pl.checkTrapezoid(t, current); err != nil {
			return err
		}
	}
	return nil
}

func (pl *PointLocation) checkTrapezoid(t *Trapezoid, current map[*Trapezoid]struct{}) error {
	if t.Top == nil || t.Bottom == nil {
		return errors.Errorf("%s is missing a bounding segment", t)
	}
	if t.Left.HorizontalOrientation(t.Right) != geom.LeftOf {
		return errors.Errorf("%s has its walls out of order", t)
	}

	for _, n := range []*Trapezoid{t.UpperLeft, t.LowerLeft, t.UpperRight, t.LowerRight} {
		if n == nil {
			continue
		}
		if _, ok := current[n]; !ok {
			return errors.Errorf("%s has a retired neighbor %s", t, n)
		}
	}

	// A side slot is populated exactly when its shared segment continues
	// across the wall, and a populated slot is mutual.
	onBox := t.Left.X == pl.box.Left
	if wantUpper := !onBox && t.Top.Left() != t.Left; wantUpper != (t.UpperLeft != nil) {
		return errors.Errorf("%s has a wrong upper left slot", t)
	}
	if wantLower := !onBox && t.Bottom.Left() != t.Left; wantLower != (t.LowerLeft != nil) {
		return errors.Errorf("%s has a wrong lower left slot", t)
	}
	onBox = t.Right.X == pl.box.Right
	if wantUpper := !onBox && t.Top.Right() != t.Right; wantUpper != (t.UpperRight != nil) {
		return errors.Errorf("%s has a wrong upper right slot", t)
	}
	if wantLower := !onBox && t.Bottom.Right() != t.Right; wantLower != (t.LowerRight != nil) {
		return errors.Errorf("%s has a wrong lower right slot", t)
	}

	if n := t.UpperLeft; n != nil && (n.Top != t.Top || n.Right != t.Left || n.UpperRight != t) {
		return errors.Errorf("%s and its upper left neighbor %s disagree", t, n)
	}
	if n := t.LowerLeft; n != nil && (n.Bottom != t.Bottom || n.Right != t.Left || n.LowerRight != t) {
		return errors.Errorf("%s and its lower left neighbor %s disagree", t, n)
	}
	if n := t.UpperRight; n != nil && (n.Top != t.Top || n.Left != t.Right || n.UpperLeft != t) {
		return errors.Errorf("%s and its upper right neighbor %s disagree", t, n)
	}
	if n := t.LowerRight; n != nil && (n.Bottom != t.Bottom || n.Left != t.Right || n.LowerLeft != t) {
		return errors.Errorf("%s and its lower right neighbor %s disagree", t, n)
	}

	return pl.checkLocatesItself(t)
}

// checkLocatesItself drops a probe point near the middle of the trapezoid and
// checks that the DAG finds the trapezoid again. Cells too thin to place a
// probe in safely are skipped.
func (pl *PointLocation) checkLocatesItself(t *Trapezoid) error {
	if t.Right.X-t.Left.X <= 4*geom.Epsilon {
		return nil
	}
	x := (t.Left.X + t.Right.X) / 2
	yTop, errTop := t.Top.YFromX(x)
	yBottom, errBottom := t.Bottom.YFromX(x)
	if errTop != nil || errBottom != nil || yTop-yBottom <= 4*geom.Epsilon {
		return nil
	}
	probe := geom.Pt(x, (yTop+yBottom)/2)
	leaf, _, err := pl.locate(query{point: probe})
	if err != nil {
		return errors.Wrapf(err, "probing %s at %v", t, probe)
	}
	if found := leaf.Inner.(LeafNode).Trapezoid; found != t {
		return errors.Errorf("probe %v inside %s located %s instead", probe, t, found)
	}
	return nil
}
