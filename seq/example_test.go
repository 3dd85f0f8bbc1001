package seq_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/corelib"
	"github.com/katalvlaran/corelib/seq"
)

// ExampleInsert splices a letter into the middle of a sequence.
func ExampleInsert() {
	out, err := seq.Insert(slices.Values([]string{"a", "c", "d"}), 1, "b")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	got, err := seq.Collect(out)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got)
	// Output:
	// [a b c d]
}

// ExampleInsert_pastEnd shows the deferred out-of-range error.
func ExampleInsert_pastEnd() {
	out, err := seq.Insert(slices.Values([]int{1, 2}), 4, 0)
	fmt.Println("call error:", err)

	got, err := seq.Collect(out)
	fmt.Println(got, errors.Is(err, corelib.ErrOutOfRange))
	// Output:
	// call error: <nil>
	// [1 2] true
}

// ExampleSegment enumerates a window of an array.
func ExampleSegment() {
	s, _ := seq.Segment([]int{10, 20, 30, 40}, 1, 2)
	fmt.Println(slices.Collect(s))
	// Output:
	// [20 30]
}
