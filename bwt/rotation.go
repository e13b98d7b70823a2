package bwt

import (
	"cmp"
	"slices"
)

// SortRotations returns the starting positions of every cyclic rotation of s,
// ordered by the lexicographic order of the rotations.
//
// Rotation a is compared with rotation b symbol by symbol, wrapping around the
// end of s, for at most len(s) symbols:
//
//	s[a], s[(a+1)%n], …, s[(a+n-1)%n]   vs   s[b], s[(b+1)%n], …
//
// Equal rotations (periodic inputs such as "abab" or "aaaa") are ordered by
// starting position, so the result is a deterministic total order.
//
// Rotations are never copied; the comparator indexes into s directly.
//
// Complexity: O(N log N) comparisons, each O(N) in the worst case.
func SortRotations[E cmp.Ordered](s []E) []int {
	n := len(s)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n < 2 {
		return perm
	}

	slices.SortFunc(perm, func(a, b int) int {
		if c := compareRotations(s, a, b); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return perm
}

// compareRotations compares the rotations of s starting at a and b.
func compareRotations[E cmp.Ordered](s []E, a, b int) int {
	n := len(s)
	for k := 0; k < n; k++ {
		if c := cmp.Compare(s[a], s[b]); c != 0 {
			return c
		}
		if a++; a == n {
			a = 0
		}
		if b++; b == n {
			b = 0
		}
	}
	return 0
}
