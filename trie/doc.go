/*
Package trie implements a persistent (immutable) prefix tree over
sequences of elements. Each path from the root spells out a prefix, and
a flag per node marks whether that prefix is itself a complete stored
key. Tries are the natural backing structure for completion ("given the
characters typed so far, which stored words match?"); package-level
helpers wrap the generic container for the common case of words over
runes.

Like its siblings in this module, the trie has copy-on-write behaviour:
inserting a key creates new nodes only along the key's path, and the new
incarnation shares every sibling sub-trie with the original.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.trie'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.trie")
}
