package trie

// Convenience layer for the most common use of a trie: completion of
// words over runes.

// FromWords builds a trie over the runes of the given words.
func FromWords(words []string) Trie[rune] {
	keys := make([][]rune, len(words))
	for i, w := range words {
		keys[i] = []rune(w)
	}
	return Build(keys)
}

// Words returns every word stored in t. The order of words is unspecified.
func Words(t Trie[rune]) []string {
	keys := t.Elements()
	words := make([]string, len(keys))
	for i, key := range keys {
		words[i] = string(key)
	}
	return words
}

// CompleteWord returns all stored words beginning with prefix, with the
// prefix prepended back onto each completed suffix.
func CompleteWord(t Trie[rune], prefix string) []string {
	var words []string
	for _, suffix := range t.Complete([]rune(prefix)) {
		words = append(words, prefix+string(suffix))
	}
	return words
}
