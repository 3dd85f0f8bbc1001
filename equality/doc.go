// Package equality compares iter.Seq sequences element by element.
//
// A SequenceComparer is built around an item Comparer (Equal + Hash). Equal
// walks both sequences in lockstep and stops at the first mismatch or length
// difference, so it terminates on infinite sequences that differ early. Hash
// folds only the first four items, which keeps it O(1) and consistent with
// Equal: equal sequences share their prefix and therefore their hash.
//
//	c := equality.NewDefault[int]()
//	c.Equal(slices.Values([]int{1, 2}), slices.Values([]int{1, 2})) // true
package equality
