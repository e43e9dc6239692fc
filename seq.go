package pcoll

// Uncons decomposes a sequence into its first element and the remainder.
// The remainder is a view onto seq's backing storage, not a copy, making
// repeated decomposition O(1) per step. ok is false for an empty sequence,
// in which case head is the zero value for E.
func Uncons[E any](seq []E) (head E, rest []E, ok bool) {
	if len(seq) == 0 {
		return
	}
	return seq[0], seq[1:], true
}

// All reports whether pred holds for every element of seq.
// All is vacuously true for an empty sequence.
func All[E any](seq []E, pred func(E) bool) bool {
	for _, x := range seq {
		if !pred(x) {
			return false
		}
	}
	return true
}

// FoldL reduces seq from the left, starting out with zero.
func FoldL[E, A any](seq []E, zero A, f func(A, E) A) A {
	r := zero
	for _, x := range seq {
		r = f(r, x)
	}
	return r
}
