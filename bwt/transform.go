package bwt

import (
	"cmp"
	"slices"
)

// Transform applies the Burrows-Wheeler Transform to s.
// Returns the last column of the sorted rotation matrix and the start offset,
// the sorted row of the rotation selected by the origin option.
//
// Algorithm:
//  1. If len(s) < 2 there is nothing to permute: return a copy and 0.
//  2. perm := SortRotations(s).
//  3. For each row r, last[r] = s[(perm[r]-1) mod n], the symbol preceding the
//     rotation's start.
//  4. start = r such that perm[r] == origin offset (0 or 1).
//
// s is never modified; the result does not alias it.
//
// Example:
//
//	last, start := Transform([]byte("banana"))
//	// string(last) == "nnbaaa", start == 3
func Transform[E cmp.Ordered](s []E, opts ...Option) (last []E, start int) {
	o := buildOptions(opts)

	n := len(s)
	if n < 2 {
		return slices.Clone(s), 0
	}

	perm := SortRotations(s)
	origin := o.Origin.offset()

	last = make([]E, n)
	for r, p := range perm {
		if p == origin {
			start = r
		}
		if p == 0 {
			p = n
		}
		last[r] = s[p-1]
	}

	return last, start
}

// TransformString is Transform over the bytes of s.
func TransformString(s string, opts ...Option) (string, int) {
	last, start := Transform([]byte(s), opts...)
	return string(last), start
}
