// SPDX-License-Identifier: MIT

package cartesian

import "iter"

// Odometer streams the cartesian product of lists without building it.
// Ordering matches Product. Each yielded tuple is a fresh slice the caller
// may keep. No lists, or any empty list, yields nothing.
func Odometer[T any](lists ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(lists) == 0 {
			return
		}

		indices := make([]int, len(lists))
		combination := make([]T, len(lists))
		for i, list := range lists {
			if len(list) == 0 {
				return
			}
			combination[i] = list[0]
		}

		last := len(lists) - 1
		for {
			if !yield(clone(combination)) {
				return
			}

			// Advance the rightmost wheel; carry to the left on rollover.
			i := last
			for ; i >= 0; i-- {
				indices[i]++
				if indices[i] == len(lists[i]) {
					indices[i] = 0
				}
				combination[i] = lists[i][indices[i]]
				if indices[i] > 0 {
					break
				}
			}
			if i < 0 {
				// every wheel rolled over
				return
			}
		}
	}
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
