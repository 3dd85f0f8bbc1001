// Package seq provides lazy helpers over iter.Seq sequences.
//
// 🚀 What is here?
//
//	Insert splices one item into a sequence at a given index without touching
//	the source until the result is pulled. The only check that needs the
//	source (index ≤ length) is deferred: it surfaces as the error half of the
//	returned iter.Seq2 exactly at the pull that would cross the bound.
//
// ✨ Key features:
//   - Insert / InsertSeq: lazy insertion, O(1) extra memory
//   - Iterate / IterateE: drain a sequence once
//   - Collect:           materialize a failing sequence up to its first error
//   - Segment:           enumerate array[offset:offset+count] lazily
//
// ⚙️ Usage:
//
//	out, err := seq.Insert(slices.Values([]string{"a", "c"}), 1, "b")
//	if err != nil {
//	  // nil source or negative index
//	}
//	for v, err := range out {
//	  if err != nil {
//	    // index was past the end of the source
//	  }
//	  fmt.Println(v) // a b c
//	}
//
// Complexity:
//
//   - Insert: O(n) time over a full pull, O(1) memory
//   - Segment: O(count) time, O(1) memory
package seq
