package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is a non-empty subtree; a nil *node is the empty subtree. The
// pointer indirection gives the recursive type a finite size and lets
// multiple tree incarnations share unmodified subtrees.
type node[E constraints.Ordered] struct {
	left, right *node[E]
	value       E
}

// compare is an explicit three-way comparison, returning -1, 0 or +1.
// The catch-all is unreachable for a total order on E; if it ever triggers
// (e.g. for a NaN-like element value), the ordering is broken and we treat
// it as a hard invariant failure.
func compare[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	case a > b:
		return +1
	}
	assertThat(false, "ordering of element type is not total: cannot compare %v with %v", a, b)
	return 0
}

func (n *node[E]) contains(x E) bool {
	if n == nil {
		return false
	}
	switch cmp := compare(x, n.value); cmp {
	case -1:
		return n.left.contains(x)
	case 0:
		return true
	default:
		return n.right.contains(x)
	}
}

// with returns the root of a new subtree with x inserted. Only nodes on
// the path from n to the insertion point are allocated; every untouched
// subtree is shared with the original incarnation.
func (n *node[E]) with(x E) *node[E] {
	if n == nil {
		return &node[E]{value: x}
	}
	cow := *n // copy-on-write
	switch cmp := compare(x, n.value); cmp {
	case -1:
		cow.left = n.left.with(x)
	case 0:
		tracer().Debugf("insert: replacing element at existing node ⟨%v⟩", n.value)
		cow.value = x
	default:
		cow.right = n.right.with(x)
	}
	return &cow
}

func reduce[E constraints.Ordered, A any](n *node[E], leafCase A, nodeCase func(A, E, A) A) A {
	if n == nil {
		return leafCase
	}
	l := reduce(n.left, leafCase, nodeCase)
	r := reduce(n.right, leafCase, nodeCase)
	return nodeCase(l, n.value, r)
}

// depth returns the length of the longest root-to-leaf path.
func (n *node[E]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
