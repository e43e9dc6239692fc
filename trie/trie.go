package trie

import (
	"github.com/npillmayer/pcoll"
	"github.com/npillmayer/pcoll/maybe"
)

// Trie is a persistent prefix tree over keys which are sequences of
// elements of type E. An empty instance is usable as an empty trie, i.e.
// this is legal:
//
//     t := trie.Trie[rune]{}.With([]rune("car"))
//
// returning a trie storing the single key "car".
type Trie[E comparable] struct {
	terminal bool // the empty key is a member of the set rooted here
	children map[E]*Trie[E]
}

// Immutable constructs an empty trie.
func Immutable[E comparable]() Trie[E] {
	return Trie[E]{}
}

// Singleton constructs a trie containing just the given key: a straight
// chain of single-child nodes ending in a terminal node.
func Singleton[E comparable](key []E) Trie[E] {
	head, tail, ok := pcoll.Uncons(key)
	if !ok {
		return Trie[E]{terminal: true}
	}
	sub := Singleton(tail)
	return Trie[E]{children: map[E]*Trie[E]{head: &sub}}
}

// Build folds With over keys, starting from an empty trie.
func Build[E comparable](keys [][]E) Trie[E] {
	return pcoll.FoldL(keys, Immutable[E](), func(t Trie[E], key []E) Trie[E] {
		return t.With(key)
	})
}

// --- API -------------------------------------------------------------------

// IsEmpty reports whether the trie stores no keys.
func (trie Trie[E]) IsEmpty() bool {
	return !trie.terminal && len(trie.children) == 0
}

// Contains reports whether key is stored in the trie. A stored key's
// proper prefixes are not themselves members unless stored explicitly.
func (trie Trie[E]) Contains(key []E) bool {
	head, tail, ok := pcoll.Uncons(key)
	if !ok {
		return trie.terminal
	}
	child, present := trie.children[head]
	if !present {
		return false
	}
	return child.Contains(tail)
}

// Descend walks the trie along prefix and returns the sub-trie rooted at
// the prefix's end point, or Nothing if the path leaves the trie. The
// returned sub-trie holds all suffixes of stored keys starting with prefix.
func (trie Trie[E]) Descend(prefix []E) maybe.Maybe[Trie[E]] {
	head, tail, ok := pcoll.Uncons(prefix)
	if !ok {
		return maybe.Just(trie)
	}
	child, present := trie.children[head]
	if !present {
		return maybe.Nothing[Trie[E]]()
	}
	return child.Descend(tail)
}

// Complete returns the suffixes of every stored key beginning with
// prefix, i.e. the elements of the sub-trie Descend(prefix) leads to.
// A prefix not present in the trie completes to nothing.
func (trie Trie[E]) Complete(prefix []E) [][]E {
	sub, found := trie.Descend(prefix).Value()
	if !found {
		return nil
	}
	return sub.Elements()
}

// Elements returns every key stored in the trie, reconstructed from root
// to leaf. The order of keys is unspecified.
func (trie Trie[E]) Elements() [][]E {
	var keys [][]E
	if trie.terminal {
		keys = append(keys, []E{})
	}
	for head, child := range trie.children {
		for _, rest := range child.Elements() {
			key := make([]E, 0, len(rest)+1)
			key = append(key, head)
			keys = append(keys, append(key, rest...))
		}
	}
	return keys
}

// Size returns the number of keys stored in the trie. O(node count).
func (trie Trie[E]) Size() int {
	n := 0
	if trie.terminal {
		n = 1
	}
	for _, child := range trie.children {
		n += child.Size()
	}
	return n
}

// With returns a copy of the trie with key inserted. Only nodes along the
// key's path are newly allocated; every sibling sub-trie is shared with
// the original incarnation. Inserting a key twice is a no-op in effect.
func (trie Trie[E]) With(key []E) Trie[E] {
	head, tail, ok := pcoll.Uncons(key)
	if !ok { // end of key: mark this node terminal, children unchanged
		return Trie[E]{terminal: true, children: trie.children}
	}
	cow := Trie[E]{ // copy-on-write: clone the children mapping, share the sub-tries
		terminal: trie.terminal,
		children: make(map[E]*Trie[E], len(trie.children)+1),
	}
	for k, child := range trie.children {
		cow.children[k] = child
	}
	var sub Trie[E]
	if child, present := trie.children[head]; present {
		sub = child.With(tail)
	} else {
		tracer().Debugf("insert: new branch for %v, chain length %d", head, len(tail))
		sub = Singleton(tail)
	}
	cow.children[head] = &sub
	return cow
}
