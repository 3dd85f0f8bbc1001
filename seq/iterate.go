// SPDX-License-Identifier: MIT

package seq

import (
	"iter"

	"github.com/katalvlaran/corelib"
)

// Iterate pulls every element of source once and discards it.
// Useful to force the side effects (or the deferred errors) of a lazy sequence.
func Iterate[T any](source iter.Seq[T]) error {
	if source == nil {
		return corelib.NilArgument("seq.Iterate", "source")
	}
	for range source {
	}
	return nil
}

// IterateE drains a failing sequence and returns its first error.
// Iteration stops at that error.
func IterateE[T any](source iter.Seq2[T, error]) error {
	if source == nil {
		return corelib.NilArgument("seq.IterateE", "source")
	}
	for _, err := range source {
		if err != nil {
			return err
		}
	}
	return nil
}

// Collect materializes a failing sequence. On error it returns the elements
// gathered so far together with the error.
func Collect[T any](source iter.Seq2[T, error]) ([]T, error) {
	if source == nil {
		return nil, corelib.NilArgument("seq.Collect", "source")
	}
	var out []T
	for v, err := range source {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
