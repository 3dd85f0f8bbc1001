// SPDX-License-Identifier: MIT

package cartesian

import (
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/corelib"
	"github.com/katalvlaran/corelib/seq"
)

const (
	opProduct = "cartesian.Product"
	opPower   = "cartesian.Power"
	opPair    = "cartesian.Pair"
)

// Product returns the cartesian product of collections.
//
// Steps:
//  1. Read collections in order, each inner sequence once (eager).
//     A nil inner sequence fails with ErrNilElement for "collections".
//  2. No collections, or any empty collection → empty result. Reading
//     stops at the first empty collection, so a later nil is not reported.
//  3. Start from the empty product [[]] and fold left to right: every
//     accumulated tuple is extended with every element of the next input.
//
// The returned slice and all tuples are freshly allocated.
func Product[T any](collections iter.Seq[iter.Seq[T]]) ([][]T, error) {
	if collections == nil {
		return nil, corelib.NilArgument(opProduct, "collections")
	}

	lists, err := materialize(collections)
	if err != nil {
		return nil, err
	}

	return fold(lists)
}

// Power returns the cartesian product of power copies of source.
// source is read once. power == 0 gives an empty result.
func Power[T any](source iter.Seq[T], power int) ([][]T, error) {
	if source == nil {
		return nil, corelib.NilArgument(opPower, "source")
	}
	if power < 0 {
		return nil, corelib.OutOfRange(opPower, "power", power, "must not be negative")
	}

	values := slices.Collect(source)
	lists := make([][]T, power)
	for i := range lists {
		lists[i] = values
	}

	return fold(lists)
}

// Pair returns the cartesian product of first and second, identical to
// Product over [first, second].
func Pair[T any](first, second iter.Seq[T]) ([][]T, error) {
	if first == nil {
		return nil, corelib.NilArgument(opPair, "first")
	}
	if second == nil {
		return nil, corelib.NilArgument(opPair, "second")
	}

	return Product(slices.Values([]iter.Seq[T]{first, second}))
}

// Sequences adapts slices to the sequence-of-sequences shape Product expects.
func Sequences[T any](lists ...[]T) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for _, list := range lists {
			if !yield(slices.Values(list)) {
				return
			}
		}
	}
}

// Count returns the number of tuples a product of inputs with the given
// lengths holds: 0 for no inputs. Negative lengths count as 0, and a product
// that does not fit in an int saturates at math.MaxInt.
func Count(lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	total := 1
	for _, n := range lengths {
		if n <= 0 {
			return 0
		}
		if total > math.MaxInt/n {
			total = math.MaxInt
			continue
		}
		total *= n
	}
	return total
}

// materialize reads every inner sequence once, rejecting nil elements.
// It stops at the first empty collection and returns no lists: later
// collections, nil or not, cannot change an empty product.
func materialize[T any](collections iter.Seq[iter.Seq[T]]) ([][]T, error) {
	var lists [][]T
	index := 0
	for collection := range collections {
		if collection == nil {
			return nil, corelib.NilElement(opProduct, "collections", index)
		}
		list := slices.Collect(collection)
		if len(list) == 0 {
			return nil, nil
		}
		lists = append(lists, list)
		index++
	}
	return lists, nil
}

// fold runs the left-to-right cross-join starting from the empty product.
func fold[T any](lists [][]T) ([][]T, error) {
	if len(lists) == 0 {
		return [][]T{}, nil
	}
	for _, list := range lists {
		if len(list) == 0 {
			// Multiplying by an empty input absorbs everything.
			return [][]T{}, nil
		}
	}

	accumulator := [][]T{{}}
	for _, list := range lists {
		next := make([][]T, 0, len(accumulator)*len(list))
		for _, tuple := range accumulator {
			for _, item := range list {
				extended, err := extend(tuple, item)
				if err != nil {
					return nil, err
				}
				next = append(next, extended)
			}
		}
		accumulator = next
	}

	return accumulator, nil
}

// extend appends item to a copy of tuple through seq.InsertSeq at len(tuple).
func extend[T any](tuple []T, item T) ([]T, error) {
	inserted, err := seq.InsertSeq(slices.Values(tuple), len(tuple), item)
	if err != nil {
		return nil, err
	}
	return slices.AppendSeq(make([]T, 0, len(tuple)+1), inserted), nil
}
