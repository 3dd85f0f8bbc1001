// SPDX-License-Identifier: MIT

package seq

import (
	"iter"

	"github.com/katalvlaran/corelib"
)

const opSegment = "seq.Segment"

// Segment enumerates array[offset:offset+count].
//
// A nil array is an empty segment regardless of offset and count. Bounds are
// validated up front; elements are read from the backing array on every pass,
// so writes to array made between passes are observed.
func Segment[T any](array []T, offset, count int) (iter.Seq[T], error) {
	if array == nil {
		return func(func(T) bool) {}, nil
	}
	if offset < 0 {
		return nil, corelib.OutOfRange(opSegment, "offset", offset, "must not be negative")
	}
	if count < 0 {
		return nil, corelib.OutOfRange(opSegment, "count", count, "must not be negative")
	}
	if offset > len(array)-count {
		return nil, corelib.OutOfRange(opSegment, "count", count, "segment exceeds array length")
	}

	return func(yield func(T) bool) {
		limit := offset + count
		for i := offset; i < limit; i++ {
			if !yield(array[i]) {
				return
			}
		}
	}, nil
}
