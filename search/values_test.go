package search_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/algoerr"
	"github.com/katalvlaran/algolab/search"
)

func TestValues_Dispatch(t *testing.T) {
	all := []search.Variant{search.VariantBinary, search.VariantBinaryRecursive, search.VariantLinear}
	for _, v := range all {
		t.Run(v.String(), func(t *testing.T) {
			idx, err := search.Values([]int{1, 3, 5, 7, 9, 11, 13, 15}, 7, v)
			require.NoError(t, err)
			assert.Equal(t, 3, idx)

			idx, err = search.Values([...]uint8{2, 4, 8}, uint8(8), v)
			require.NoError(t, err)
			assert.Equal(t, 2, idx)

			idx, err = search.Values([]float64{0.5, 1.5, 2.5}, 2.0, v)
			require.NoError(t, err)
			assert.Equal(t, search.NotFound, idx)

			idx, err = search.Values([]string{"ant", "bee", "cat"}, "bee", v)
			require.NoError(t, err)
			assert.Equal(t, 1, idx)
		})
	}
}

func TestValues_MixedWidthsWithinFamily(t *testing.T) {
	idx, err := search.Values([]int16{-3, 0, 3}, int64(3), search.VariantBinary)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestValues_TypeMismatch(t *testing.T) {
	cases := []struct {
		name   string
		seq    any
		target any
		want   error
	}{
		{"nil sequence", nil, 1, search.ErrNotSequence},
		{"scalar sequence", 5, 5, search.ErrNotSequence},
		{"map sequence", map[int]int{0: 1}, 1, search.ErrNotSequence},
		{"bool elements", []bool{false, true}, true, search.ErrElementType},
		{"int vs string", []int{1, 2}, "2", search.ErrTargetType},
		{"int vs float", []int{1, 2}, 2.0, search.ErrTargetType},
		{"signed vs unsigned", []int{1, 2}, uint(2), search.ErrTargetType},
		{"nil target", []int{1}, nil, search.ErrTargetType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := search.Values(tc.seq, tc.target, search.VariantBinary)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, algoerr.ErrTypeMismatch)
			assert.Equal(t, search.NotFound, idx)
		})
	}
}

func TestValues_InvalidArgument(t *testing.T) {
	_, err := search.Values([]int{}, 1, search.VariantBinary)
	assert.ErrorIs(t, err, search.ErrEmptySequence)

	idx, err := search.Values([]int{}, 1, search.VariantLinear)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, idx)

	_, err = search.Values([]int{1}, 1, search.Variant(42))
	assert.ErrorIs(t, err, search.ErrUnknownVariant)
	assert.ErrorIs(t, err, algoerr.ErrInvalidArgument)
}

func TestValues_DecodedJSON(t *testing.T) {
	var seq any
	require.NoError(t, json.Unmarshal([]byte(`[1,3,5,7,9,11,13,15]`), &seq))

	for _, v := range []search.Variant{search.VariantBinary, search.VariantBinaryRecursive, search.VariantLinear} {
		idx, err := search.Values(seq, 7.0, v)
		require.NoError(t, err, v.String())
		assert.Equal(t, 3, idx, v.String())
	}

	idx, err := search.Values([]any{1.0, 3.0, 7.0}, 7.0, search.VariantBinary)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = search.Values([]any{"ant", "bee"}, "cat", search.VariantBinary)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, idx)
}

func TestValues_BoxedErrors(t *testing.T) {
	_, err := search.Values([]any{1, "a"}, 1, search.VariantBinary)
	assert.ErrorIs(t, err, search.ErrElementType)
	assert.ErrorIs(t, err, algoerr.ErrTypeMismatch)

	_, err = search.Values([]any{1.0, 3.0}, 3, search.VariantBinary)
	assert.ErrorIs(t, err, search.ErrTargetType)

	_, err = search.Values([]any{}, 3, search.VariantBinary)
	assert.ErrorIs(t, err, search.ErrEmptySequence)

	idx, err := search.Values([]any{}, 3, search.VariantLinear)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, idx)

	_, err = search.Values([]any{}, nil, search.VariantLinear)
	assert.ErrorIs(t, err, search.ErrTargetType)
}
