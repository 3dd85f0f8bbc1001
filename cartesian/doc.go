// Package cartesian computes cartesian products of sequences.
//
// 🚀 What is a cartesian product?
//
//	Given N input sequences, the product is the list of every N-tuple that
//	takes one element from each input, in order. Tuples are listed in
//	odometer order: the first input varies slowest, the last one fastest.
//
//	  [[a1 a2] [b1] [c1 c2 c3]] →
//	    (a1 b1 c1) (a1 b1 c2) (a1 b1 c3) (a2 b1 c1) (a2 b1 c2) (a2 b1 c3)
//
// ✨ Entry points:
//   - Product(collections): canonical form over a sequence of sequences
//   - Power(source, n):    n copies of one sequence
//   - Pair(first, second): two sequences
//   - Odometer(lists...):  lazy stream over already materialized slices
//
// ⚙️ Evaluation policy:
//
//	Product, Power and Pair are eager: every input is read exactly once
//	before they return, and the result is a fresh [][]T that never reads
//	the inputs again. An empty input, or no inputs at all, gives an empty
//	result. Power(source, 0) is therefore empty too, not the single empty
//	tuple.
//
// Complexity:
//
//   - Time:   O(N·P) where P is the product of the input lengths
//   - Memory: O(N·P) for the result
package cartesian
