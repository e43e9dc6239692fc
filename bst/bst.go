package bst

import (
	"github.com/npillmayer/pcoll"
	"golang.org/x/exp/constraints"
)

// Tree is a persistent binary search tree over an ordered element type.
// An empty instance is usable as an empty tree, i.e. this is legal:
//
//     tree := bst.Tree[int]{}.With(7)
//
// returning a tree containing the single element 7.
//
// A new modified incarnation of a tree always is reflected by a new
// tree value; the incarnation a With(…) was called on stays unchanged.
type Tree[E constraints.Ordered] struct {
	root *node[E]
}

// Immutable constructs an empty tree.
func Immutable[E constraints.Ordered]() Tree[E] {
	return Tree[E]{}
}

// Singleton constructs a tree holding a single element.
func Singleton[E constraints.Ordered](x E) Tree[E] {
	return Tree[E]{root: &node[E]{value: x}}
}

// --- API -------------------------------------------------------------------

// IsEmpty reports whether the tree holds no elements.
func (tree Tree[E]) IsEmpty() bool {
	return tree.root == nil
}

// Contains reports whether x is an element of the tree.
// Lookup descends a single root-to-leaf path, i.e. is bounded by the
// depth of the tree.
func (tree Tree[E]) Contains(x E) bool {
	return tree.root.contains(x)
}

// With returns a copy of a tree with x inserted. If an element equal to x
// is already present, With replaces it with x (in a new incarnation of the
// tree, nevertheless). For plain-valued elements this is a no-op in effect;
// it matters for element types carrying non-key payload.
func (tree Tree[E]) With(x E) Tree[E] {
	tracer().Debugf("tree.With(%v)", x)
	return Tree[E]{root: tree.root.with(x)}
}

// Reduce folds a tree bottom-up: it returns leafCase for an empty subtree
// and nodeCase(l, x, r) for a node holding x, where l and r are the already
// reduced left and right subtrees. Reduce is the single traversal primitive
// of this package; Elements and Size are derived from it.
//
// Reduce is a function rather than a method because Go methods cannot
// introduce additional type parameters.
func Reduce[E constraints.Ordered, A any](tree Tree[E], leafCase A, nodeCase func(A, E, A) A) A {
	return reduce(tree.root, leafCase, nodeCase)
}

// Size returns the number of elements in the tree. O(size).
func (tree Tree[E]) Size() int {
	return Reduce(tree, 0, func(l int, _ E, r int) int {
		return l + 1 + r
	})
}

// Elements returns all elements of the tree in ascending order.
// The returned slice is freshly allocated and safe for the caller to modify.
func (tree Tree[E]) Elements() []E {
	return Reduce(tree, []E{}, func(l []E, x E, r []E) []E {
		elems := make([]E, 0, len(l)+len(r)+1)
		elems = append(elems, l...)
		elems = append(elems, x)
		return append(elems, r...)
	})
}

// IsValid reports whether the search-tree ordering invariant holds: for
// every node, all elements to the left are strictly less and all elements
// to the right strictly greater than the node's element (duplicates are
// never valid). Trees built exclusively with Immutable, Singleton and With
// always satisfy this; IsValid is a diagnostic for hand-built trees and
// test assertions, not a hot path.
func (tree Tree[E]) IsValid() bool {
	n := tree.root
	if n == nil {
		return true
	}
	x := n.value
	left := Tree[E]{root: n.left}
	right := Tree[E]{root: n.right}
	return pcoll.All(left.Elements(), func(y E) bool { return y < x }) &&
		pcoll.All(right.Elements(), func(y E) bool { return y > x }) &&
		left.IsValid() && right.IsValid()
}
