// SPDX-License-Identifier: MIT

package seq

import (
	"iter"

	"github.com/katalvlaran/corelib"
)

const opInsert = "seq.Insert"

// Insert returns a new sequence that yields source with item spliced in at
// position insertAt.
//
// Contract:
//   - source == nil → ErrNilArgument for "source", returned immediately.
//   - insertAt < 0  → ErrOutOfRange for "insertAt", returned immediately.
//   - source is not read until the result is pulled.
//   - insertAt > len(source) is detected only when the source runs dry before
//     the insertion point; the result then yields (zero, ErrOutOfRange) once
//     and stops.
//
// On success the result holds len(source)+1 elements:
// result[:insertAt] == source[:insertAt], result[insertAt] == item and
// result[insertAt+1:] == source[insertAt:].
//
// Each call builds a fresh closure; pulling one result never affects another.
func Insert[T any](source iter.Seq[T], insertAt int, item T) (iter.Seq2[T, error], error) {
	if source == nil {
		return nil, corelib.NilArgument(opInsert, "source")
	}
	if insertAt < 0 {
		return nil, corelib.OutOfRange(opInsert, "insertAt", insertAt, "must not be negative")
	}

	return func(yield func(T, error) bool) {
		index := 0
		for v := range source {
			if index == insertAt {
				if !yield(item, nil) {
					return
				}
			}
			index++
			if !yield(v, nil) {
				return
			}
		}

		switch {
		case index == insertAt:
			yield(item, nil)
		case index < insertAt:
			var zero T
			yield(zero, corelib.OutOfRange(opInsert, "insertAt", insertAt, "greater than the sequence length"))
		}
	}, nil
}

// InsertSeq is Insert for callers that have already established
// insertAt ≤ len(source). It returns a plain iter.Seq; reaching the deferred
// out-of-range condition panics with the *corelib.ArgumentError.
func InsertSeq[T any](source iter.Seq[T], insertAt int, item T) (iter.Seq[T], error) {
	inserted, err := Insert(source, insertAt, item)
	if err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		for v, err := range inserted {
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}
