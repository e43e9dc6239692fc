/*
Package bst implements a persistent (immutable) binary search tree.

An immutable persistent tree has copy-on-write behaviour: each “modification”
of the tree creates a copy, leaving the original unmodified. Under the hood,
copy-on-write allocates new nodes only along the path from the root to the
point of change, and the new incarnation of the tree shares every untouched
subtree with the original, transparently to clients.

The tree performs no balancing: its shape is determined entirely by the
order of insertions, and a sorted insertion sequence degrades lookups to
linear time. Clients needing guaranteed logarithmic behaviour should reach
for a B-tree instead.

Immutable trees are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.bst'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.bst")
}
