package pointloc

import "github.com/geomlab/planar/geom"

// The search structure is a DAG, not a tree: a trapezoid produced by merging
// along an inserted segment hangs under one Y node per merged piece. Leaves
// must therefore be replaceable through many parents in O(1). Instead of
// registering parents, every position in the DAG is a stable *Node whose
// Inner union is swapped in place; all parents see the replacement through
// the shared wrapper.

// NodeInner is the union of the node kinds.
type NodeInner interface {
	childNodes() []*Node

	// Dummy method keeping *Node itself out of the union, so a wrapper can
	// never be wrapped again by accident.
	nodeInnerTypeHint()
}

func (XNode) nodeInnerTypeHint()    {}
func (YNode) nodeInnerTypeHint()    {}
func (LeafNode) nodeInnerTypeHint() {}

type Node struct {
	Inner NodeInner
}

func (n *Node) childNodes() []*Node {
	return n.Inner.childNodes()
}

// XNode splits the plane at an endpoint: queries left of the key in the
// sheared horizontal order descend left, all others right.
type XNode struct {
	Key         geom.Point
	Left, Right *Node
}

func (n XNode) childNodes() []*Node {
	return []*Node{n.Left, n.Right}
}

// YNode splits at an inserted segment: queries above the key descend to
// Above, queries below to Below.
type YNode struct {
	Key          *Segment
	Above, Below *Node
}

func (n YNode) childNodes() []*Node {
	return []*Node{n.Above, n.Below}
}

// LeafNode holds a trapezoid of the current decomposition.
type LeafNode struct {
	Trapezoid *Trapezoid
}

func (n LeafNode) childNodes() []*Node {
	return nil
}

// graphIterator visits every node in the DAG exactly once. Traversal order is
// not defined, and neither is behavior if the DAG changes mid-iteration.
type graphIterator struct {
	stack []*Node
	seen  map[*Node]struct{}
}

func newGraphIterator(root *Node) *graphIterator {
	return &graphIterator{stack: []*Node{root}, seen: map[*Node]struct{}{}}
}

func (iter *graphIterator) next() *Node {
	for len(iter.stack) > 0 {
		node := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		if _, ok := iter.seen[node]; ok {
			continue
		}
		iter.seen[node] = struct{}{}
		iter.stack = append(iter.stack, node.childNodes()...)
		return node
	}
	return nil
}

// allNodes collects the DAG nodes reachable from root.
func allNodes(root *Node) []*Node {
	var nodes []*Node
	iter := newGraphIterator(root)
	for node := iter.next(); node != nil; node = iter.next() {
		nodes = append(nodes, node)
	}
	return nodes
}

// leafTrapezoids collects the trapezoids of the leaves reachable from root.
func leafTrapezoids(root *Node) []*Trapezoid {
	var trapezoids []*Trapezoid
	for _, node := range allNodes(root) {
		if leaf, ok := node.Inner.(LeafNode); ok {
			trapezoids = append(trapezoids, leaf.Trapezoid)
		}
	}
	return trapezoids
}
