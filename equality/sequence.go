// SPDX-License-Identifier: MIT

package equality

import (
	"iter"
	"unsafe"

	"github.com/katalvlaran/corelib"
)

// hashPrefix is the number of leading items folded into a sequence hash.
const hashPrefix = 4

// SequenceComparer compares sequences of T on a by-element basis.
type SequenceComparer[T any] struct {
	item Comparer[T]
}

// New returns a SequenceComparer that compares items with item.
// A nil item comparer fails with ErrNilArgument for "itemComparer".
func New[T any](item Comparer[T]) (*SequenceComparer[T], error) {
	if item == nil {
		return nil, corelib.NilArgument("equality.New", "itemComparer")
	}
	return &SequenceComparer[T]{item: item}, nil
}

// NewDefault returns a SequenceComparer using Default[T].
func NewDefault[T comparable]() *SequenceComparer[T] {
	return &SequenceComparer[T]{item: Default[T]()}
}

// ItemComparer returns the comparer the instance was built with.
func (c *SequenceComparer[T]) ItemComparer() Comparer[T] {
	return c.item
}

// Equal reports whether x and y hold pairwise-equal items and have the same
// length.
//
// The same sequence value compared with itself is equal without consulting
// the item comparer. Exactly one nil sequence is never equal. Otherwise both
// sequences are pulled in lockstep until the first difference.
func (c *SequenceComparer[T]) Equal(x, y iter.Seq[T]) bool {
	if same(x, y) {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	next, stop := iter.Pull(y)
	defer stop()

	for vx := range x {
		vy, ok := next()
		if !ok || !c.item.Equal(vx, vy) {
			return false
		}
	}
	_, more := next()
	return !more
}

// Hash combines the hashes of at most the first four items of s as
// acc = acc<<8 ^ Hash(item), starting from 0. Items past the fourth are
// never pulled. A nil s fails with ErrNilArgument for "obj".
func (c *SequenceComparer[T]) Hash(s iter.Seq[T]) (int, error) {
	if s == nil {
		return 0, corelib.NilArgument("equality.SequenceComparer.Hash", "obj")
	}

	acc, n := 0, 0
	for v := range s {
		acc = (acc << 8) ^ c.item.Hash(v)
		n++
		if n == hashPrefix {
			break
		}
	}
	return acc, nil
}

// Nested exposes c as an item Comparer over whole sequences, so sequences of
// sequences can be compared with New(c.Nested()). The nil sequence hashes to 0.
func (c *SequenceComparer[T]) Nested() Comparer[iter.Seq[T]] {
	return nested[T]{c}
}

type nested[T any] struct{ c *SequenceComparer[T] }

func (n nested[T]) Equal(x, y iter.Seq[T]) bool { return n.c.Equal(x, y) }

func (n nested[T]) Hash(s iter.Seq[T]) int {
	h, err := n.c.Hash(s)
	if err != nil {
		return 0
	}
	return h
}

// same reports whether x and y are the same sequence value. A func value is a
// pointer to its closure record, so two values share identity iff those
// pointers match; both nil counts as the same.
func same[T any](x, y iter.Seq[T]) bool {
	return *(*unsafe.Pointer)(unsafe.Pointer(&x)) == *(*unsafe.Pointer)(unsafe.Pointer(&y))
}
