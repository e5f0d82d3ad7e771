package search_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/algoerr"
	"github.com/katalvlaran/algolab/search"
)

// odds is the reference fixture: eight odd numbers 1..15.
var odds = []int{1, 3, 5, 7, 9, 11, 13, 15}

// binaryFn lets the same table run against both bisection variants.
type binaryFn func([]int, int, ...search.Option) (int, error)

func variants() map[string]binaryFn {
	return map[string]binaryFn{
		"iterative": search.Binary[int],
		"recursive": search.BinaryRecursive[int],
	}
}

// ------------------------------------------------------------------------
// 1. Concrete scenarios.
// ------------------------------------------------------------------------

func TestBinary_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		seq    []int
		target int
		want   int
	}{
		{"present middle", odds, 7, 3},
		{"absent between", odds, 6, search.NotFound},
		{"single hit", []int{5}, 5, 0},
		{"single miss", []int{5}, 4, search.NotFound},
		{"first", odds, 1, 0},
		{"last", odds, 15, 7},
		{"below range", odds, -10, search.NotFound},
		{"above range", odds, 99, search.NotFound},
	}
	for name, fn := range variants() {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got, err := fn(tc.seq, tc.target)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestBinary_EmptySequence(t *testing.T) {
	for name, fn := range variants() {
		t.Run(name, func(t *testing.T) {
			idx, err := fn(nil, 1)
			assert.ErrorIs(t, err, search.ErrEmptySequence)
			assert.ErrorIs(t, err, algoerr.ErrInvalidArgument)
			assert.Equal(t, search.NotFound, idx)

			_, err = fn([]int{}, 1)
			assert.ErrorIs(t, err, search.ErrEmptySequence)
		})
	}
}

func TestLinear(t *testing.T) {
	assert.Equal(t, 3, search.Linear(odds, 7))
	assert.Equal(t, search.NotFound, search.Linear(odds, 6))
	assert.Equal(t, search.NotFound, search.Linear([]int(nil), 6))
	// no ordering precondition; first match wins
	assert.Equal(t, 1, search.Linear([]string{"b", "a", "c", "a"}, "a"))
}

// ------------------------------------------------------------------------
// 2. Properties over random sorted input (fixed seed for reproducibility).
// ------------------------------------------------------------------------

func randomSorted(r *rand.Rand, n, spread int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(spread)
	}
	slices.Sort(s)

	return s
}

func TestBinary_PresentAndAbsentProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		seq := randomSorted(r, 1+r.Intn(64), 50)
		for v := -1; v <= 50; v++ {
			it, err := search.Binary(seq, v)
			require.NoError(t, err)
			rec, err := search.BinaryRecursive(seq, v)
			require.NoError(t, err)

			// identical probe paths give identical answers, duplicates included
			require.Equal(t, it, rec, "seq=%v v=%d", seq, v)

			if slices.Contains(seq, v) {
				require.NotEqual(t, search.NotFound, it, "seq=%v v=%d", seq, v)
				require.Equal(t, v, seq[it])
			} else {
				require.Equal(t, search.NotFound, it, "seq=%v v=%d", seq, v)
			}
		}
	}
}

func TestBinary_ProbePathMatchesAcrossVariants(t *testing.T) {
	type probe struct{ lo, mid, hi int }
	record := func(dst *[]probe) search.Option {
		return search.WithOnProbe(func(lo, mid, hi int) {
			*dst = append(*dst, probe{lo, mid, hi})
		})
	}

	for _, target := range []int{0, 1, 6, 7, 15, 16} {
		var a, b []probe
		_, err := search.Binary(odds, target, record(&a))
		require.NoError(t, err)
		_, err = search.BinaryRecursive(odds, target, record(&b))
		require.NoError(t, err)
		assert.Equal(t, a, b, "target=%d", target)
		// 8 elements: never more than floor(log2 8)+1 probes
		assert.LessOrEqual(t, len(a), 4)
		assert.NotEmpty(t, a)
	}
}

func TestWithOnProbe_NilIsIgnored(t *testing.T) {
	idx, err := search.Binary(odds, 9, search.WithOnProbe(nil))
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
}

func TestBinary_LargeIndicesDoNotOverflow(t *testing.T) {
	seq := make([]int32, 1<<16)
	for i := range seq {
		seq[i] = int32(i * 2)
	}
	idx, err := search.Binary(seq, int32(2*(len(seq)-1)))
	require.NoError(t, err)
	assert.Equal(t, len(seq)-1, idx)
}

func TestVariant_StringAndParse(t *testing.T) {
	for _, v := range []search.Variant{search.VariantBinary, search.VariantBinaryRecursive, search.VariantLinear} {
		got, err := search.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := search.ParseVariant("ternary")
	assert.ErrorIs(t, err, search.ErrUnknownVariant)
	assert.Equal(t, "Variant(9)", search.Variant(9).String())
}
