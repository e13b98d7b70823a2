package bwt

import (
	"cmp"
	"fmt"
	"slices"
)

// firstEntry is one row of the first column: an occurrence plus the row where
// the identical occurrence sits in the last column.
type firstEntry[E cmp.Ordered] struct {
	occurrence[E]
	row int
}

// Invert reconstructs the sequence that Transform turned into (last, start).
// The origin option must match the one used by Transform.
//
// Algorithm:
//  1. Tag every symbol of last with its 1-based occurrence rank among equal
//     symbols, scanning left to right (the last column, Last).
//  2. Sort the tags by (symbol, rank) to obtain the first column, First.
//  3. From row i the walk moves to the row whose Last tag equals First[i].
//     Tags are unique, so the match is exact; each First entry records that
//     row directly.
//  4. Starting at row start, emit one symbol per step for len(last) steps:
//     First[i].symbol for OriginFirst, Last[i].symbol for OriginSecond.
//
// Periodic inputs (e.g. "abab") split the walk into several equal cycles.
// When the walk returns to start after d < n rows, the cycle is repeated n/d
// times and accepted only if transforming the result reproduces (last, start).
//
// Errors:
//   - ErrOutOfRange     — start ∉ [0, len(last)); for empty input only 0 is valid.
//   - ErrMalformedInput — (last, start) is not the output of any Transform call.
//
// Complexity: O(N log N) time, O(N) memory for the regular case.
func Invert[E cmp.Ordered](last []E, start int, opts ...Option) ([]E, error) {
	o := buildOptions(opts)

	n := len(last)
	if start < 0 || start >= max(n, 1) {
		return nil, fmt.Errorf("%w: start %d, length %d", ErrOutOfRange, start, n)
	}
	if n < 2 {
		return slices.Clone(last), nil
	}

	tagged, first := tagColumns(last)

	out := make([]E, 0, n)
	row := start
	for len(out) < n {
		if o.Origin == OriginSecond {
			out = append(out, tagged[row].symbol)
		} else {
			out = append(out, first[row].symbol)
		}
		row = first[row].row
		if row == start {
			break
		}
	}

	d := len(out)
	if d == n {
		return out, nil
	}

	// Returned to start early: only a periodic sequence may do that.
	if n%d != 0 {
		return nil, fmt.Errorf("%w: walk closed after %d of %d rows", ErrMalformedInput, d, n)
	}
	for len(out) < n {
		out = append(out, out[:d]...)
	}
	again, s := Transform(out, opts...)
	if s != start || !slices.EqualFunc(again, last, func(a, b E) bool { return cmp.Compare(a, b) == 0 }) {
		return nil, fmt.Errorf("%w: walk closed after %d of %d rows", ErrMalformedInput, d, n)
	}

	return out, nil
}

// InvertString is Invert over the bytes of last.
func InvertString(last string, start int, opts ...Option) (string, error) {
	out, err := Invert([]byte(last), start, opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// StandardPermutation returns the row transitions of the inverse transform:
// next[i] is the row whose last-column occurrence equals the first-column
// occurrence of row i. Following next from the start row visits the rotations
// of the original sequence in order.
//
// Example:
//
//	StandardPermutation([]byte("nnbaaa")) // [3 4 5 2 0 1]
func StandardPermutation[E cmp.Ordered](last []E) []int {
	_, first := tagColumns(last)
	next := make([]int, len(first))
	for i, f := range first {
		next[i] = f.row
	}
	return next
}

// tagColumns tags the last column with occurrence ranks and derives the first
// column from it.
//
// A stable sort of the row indices by symbol lists equal symbols in scan
// order, which is exactly rank order; the k-th entry of that order is
// First[k]. Ranks are assigned while walking the order, so no symbol-keyed
// counter is needed (and float NaN symbols still get distinct ranks).
func tagColumns[E cmp.Ordered](last []E) (tagged []occurrence[E], first []firstEntry[E]) {
	n := len(last)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(last[a], last[b])
	})

	tagged = make([]occurrence[E], n)
	first = make([]firstEntry[E], n)
	rank := 0
	for k, row := range order {
		if k > 0 && cmp.Compare(last[order[k-1]], last[row]) == 0 {
			rank++
		} else {
			rank = 1
		}
		occ := occurrence[E]{symbol: last[row], rank: rank}
		tagged[row] = occ
		first[k] = firstEntry[E]{occurrence: occ, row: row}
	}

	return tagged, first
}
