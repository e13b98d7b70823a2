package bwt

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearInvert is the textbook walk: tag by scanning with a counter, sort a
// copy for the first column and look up every transition by searching the
// pairs. Used to check that the indexed walk yields identical output.
func linearInvert(last []byte, start int, origin Origin) []byte {
	n := len(last)
	seen := map[byte]int{}
	lastCol := make([]occurrence[byte], n)
	for i, c := range last {
		seen[c]++
		lastCol[i] = occurrence[byte]{symbol: c, rank: seen[c]}
	}
	firstCol := slices.Clone(lastCol)
	slices.SortFunc(firstCol, func(a, b occurrence[byte]) int { return a.compare(b) })

	find := func(v occurrence[byte]) int {
		for i := range lastCol {
			if lastCol[i] == v {
				return i
			}
		}
		return -1
	}

	out := make([]byte, 0, n)
	row := start
	for range n {
		if origin == OriginSecond {
			out = append(out, lastCol[row].symbol)
		} else {
			out = append(out, firstCol[row].symbol)
		}
		row = find(firstCol[row])
	}
	return out
}

func TestTagColumns_UniqueAndSorted(t *testing.T) {
	last := []byte("mississippi")
	tagged, first := tagColumns(last)

	seen := map[occurrence[byte]]bool{}
	for i, occ := range tagged {
		assert.Equal(t, last[i], occ.symbol)
		assert.False(t, seen[occ], "duplicate occurrence %v", occ)
		seen[occ] = true
	}

	for k := 1; k < len(first); k++ {
		assert.Negative(t, first[k-1].compare(first[k].occurrence), "first column must be strictly increasing")
	}
	for _, f := range first {
		assert.Equal(t, f.occurrence, tagged[f.row], "first entry must point at its last-column twin")
	}
}

func TestTagColumns_ScanRanks(t *testing.T) {
	tagged, _ := tagColumns([]byte("abaab"))
	want := []occurrence[byte]{{'a', 1}, {'b', 1}, {'a', 2}, {'a', 3}, {'b', 2}}
	assert.Equal(t, want, tagged)
}

func TestTagColumns_NaN(t *testing.T) {
	nan := math.NaN()
	tagged, first := tagColumns([]float64{nan, 1, nan})
	assert.Equal(t, 1, tagged[0].rank)
	assert.Equal(t, 2, tagged[2].rank)
	assert.Equal(t, []int{0, 2, 1}, []int{first[0].row, first[1].row, first[2].row})
}

func TestInvert_MatchesLinearSearch(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := range 300 {
		s := make([]byte, 2+i%40)
		for j := range s {
			s[j] = byte('a' + r.IntN(1+i%6))
		}
		for _, o := range []Origin{OriginFirst, OriginSecond} {
			last, start := Transform(s, WithOrigin(o))
			got, err := Invert(last, start, WithOrigin(o))
			require.NoError(t, err)
			assert.Equal(t, linearInvert(last, start, o), got, "input %q origin %s", s, o)
		}
	}
}

func TestOrigin_Offset(t *testing.T) {
	assert.Equal(t, 0, OriginFirst.offset())
	assert.Equal(t, 1, OriginSecond.offset())
	assert.Equal(t, OriginFirst, buildOptions(nil).Origin)
}
