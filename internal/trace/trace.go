// Package trace renders the intermediate state of the forward and inverse
// transforms as text: the rotation matrix before and after sorting, and the
// first/last column pairing used by the inversion walk.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/betwixt/bwt"
)

// Symbol is a text symbol that can be printed as a character.
type Symbol interface {
	~byte | ~rune
}

// Forward writes every rotation of s in position order, then the sorted
// rotation starts and the rotations in sorted order:
//
//	banana
//	ananab
//	…
//
//	[5 3 1 0 4 2]
//
//	abanan
//	anaban
//	…
func Forward[E Symbol](w io.Writer, s []E) error {
	var b strings.Builder
	for i := range s {
		writeRotation(&b, s, i)
	}

	perm := bwt.SortRotations(s)
	fmt.Fprintf(&b, "\n%v\n\n", perm)
	for _, p := range perm {
		writeRotation(&b, s, p)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Inverse writes the pairing table of the inverse transform, one row per
// line: first-column symbol and rank, last-column symbol and rank, and a "*"
// on the start row. Each line is indented by four spaces; for "nnbaaa" at 3
// the table begins
//
//	a 1 <---> n 1
//	a 2 <---> n 2
//	a 3 <---> b 1
//	b 1 <---> a 1 *
func Inverse[E Symbol](w io.Writer, last []E, start int) error {
	ranks := make([]int, len(last))
	seen := make(map[E]int)
	for i, c := range last {
		seen[c]++
		ranks[i] = seen[c]
	}

	var b strings.Builder
	for i, j := range bwt.StandardPermutation(last) {
		mark := ""
		if i == start {
			mark = "*"
		}
		fmt.Fprintf(&b, "    %c %d <---> %c %d %s\n",
			rune(last[j]), ranks[j], rune(last[i]), ranks[i], mark)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRotation[E Symbol](b *strings.Builder, s []E, start int) {
	for k := range s {
		b.WriteRune(rune(s[(start+k)%len(s)]))
	}
	b.WriteByte('\n')
}
