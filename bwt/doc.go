// Package bwt implements the Burrows-Wheeler Transform (BWT), a reversible
// permutation of a finite symbol sequence that groups recurring contexts
// together.
//
// 🚀 What is the BWT?
//
//	Write down every cyclic rotation of the input, sort them, and keep the
//	last column. Equal contexts end up next to each other, so the last column
//	tends to contain long runs of the same symbol. That makes it a popular
//	preprocessing stage for run-length and entropy coders (bzip2, FM-index).
//
//	  banana        abanan
//	  ananab        anaban
//	  nanaba  sort  ananab   last column: "nnbaaa"
//	  anaban  ───►  banana ◄─ row 3 is the input
//	  nabana        nabana
//	  abanan        nanaba
//
// ✨ Key features:
//   - generic over any cmp.Ordered symbol type ([]byte, []rune, []int, …)
//   - rotations are never materialised; comparison wraps with modular indexing
//   - deterministic tie-breaking for equal rotations (by starting position)
//   - O(N) inversion through the standard permutation, no linear searches
//   - explicit errors for out-of-range offsets and corrupted input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/betwixt/bwt"
//
//	last, start := bwt.TransformString("banana")
//	back, err := bwt.InvertString(last, start)
//	// last == "nnbaaa", start == 3, back == "banana"
//
// Origin convention:
//
//	The start offset names the sorted row of one particular rotation. By
//	default (OriginFirst) that is the rotation beginning at offset 0, i.e.
//	the input itself. OriginSecond names the rotation beginning at offset 1
//	and reproduces the offsets of the original betwixt tool. Invert must be
//	called with the same origin as Transform.
//
// Performance:
//
//   - Transform: O(N log N) comparisons, each up to O(N) symbols.
//   - Invert:    O(N log N) time, O(N) memory.
//
// All functions are pure and safe for concurrent use on independent inputs.
package bwt
