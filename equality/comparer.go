// SPDX-License-Identifier: MIT

package equality

import "hash/maphash"

// Comparer decides item equality and supplies a hash consistent with it:
// Equal(x, y) implies Hash(x) == Hash(y).
type Comparer[T any] interface {
	Equal(x, y T) bool
	Hash(v T) int
}

// seed is shared by every default comparer so hashes agree within a process.
var seed = maphash.MakeSeed()

type defaultComparer[T comparable] struct{}

func (defaultComparer[T]) Equal(x, y T) bool { return x == y }

func (defaultComparer[T]) Hash(v T) int { return int(maphash.Comparable(seed, v)) }

// Default returns the natural comparer for T: == and maphash.Comparable.
func Default[T comparable]() Comparer[T] {
	return defaultComparer[T]{}
}

type funcComparer[T any] struct {
	equal func(x, y T) bool
	hash  func(v T) int
}

func (f funcComparer[T]) Equal(x, y T) bool { return f.equal(x, y) }

func (f funcComparer[T]) Hash(v T) int {
	if f.hash == nil {
		return 0
	}
	return f.hash(v)
}

// ComparerFunc adapts plain functions to a Comparer.
// A nil hash hashes every item to 0. Panics if equal is nil.
func ComparerFunc[T any](equal func(x, y T) bool, hash func(v T) int) Comparer[T] {
	if equal == nil {
		panic("equality: ComparerFunc(nil equal)")
	}
	return funcComparer[T]{equal: equal, hash: hash}
}
