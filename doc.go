// SPDX-License-Identifier: MIT

// Package corelib is a small toolbox of generic sequence utilities built on
// Go's range-over-func iterators (iter.Seq).
//
// 🚀 What is inside?
//
//	• seq/       — lazy insertion of an item into a sequence, draining helpers,
//	               array-segment enumeration
//	• cartesian/ — eager cartesian products (canonical, power, pair) and a
//	               streaming odometer over slices
//	• equality/  — pluggable item comparers and a short-circuiting sequence
//	               comparer with a bounded-prefix hash
//
// ✨ Ground rules shared by every package:
//
//   - Sequences are plain iter.Seq values; a nil iter.Seq plays the role of an
//     absent argument and is rejected with ErrNilArgument.
//   - Argument problems are returned as *ArgumentError values that wrap one of
//     the sentinels below, so callers branch with errors.Is and recover the
//     parameter name with errors.As.
//   - Laziness is part of the contract: seq.Insert does no work until the first
//     pull, while cartesian.Product reads all of its inputs before returning.
//
// Quick example:
//
//	tuples, err := cartesian.Pair(slices.Values([]int{1, 2}), slices.Values([]int{3}))
//	// tuples == [[1 3] [2 3]]
//
// The cmd/seqtool command exposes the same operations on the command line.
package corelib
