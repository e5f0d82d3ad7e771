// Package sorting implements bubble sort over ordered element types.
//
// Bubble never mutates its input: it sorts a copy and returns it.
//
// Complexity:
//
//   - Time:  O(n²) worst and average case; O(n) best case with WithEarlyExit.
//   - Space: O(n) for the copy, O(1) auxiliary beyond it.
package sorting

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/algolab/internal/ordered"
)

// Bubble returns a new slice holding the elements of seq in non-decreasing
// order. Pass i compares every adjacent pair in the unsorted prefix
// seq[0:n-i] and swaps pairs that are out of order, so after pass i the
// largest i+1 elements are in their final positions.
//
// A nil or empty seq returns an empty, non-nil slice.
func Bubble[T cmp.Ordered](seq []T, opts ...Option) []T {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]T, len(seq))
	copy(out, seq)

	n := len(out)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			o.OnCompare(j, j+1)
			if cmp.Less(out[j+1], out[j]) {
				out[j], out[j+1] = out[j+1], out[j]
				o.OnSwap(j, j+1)
				swapped = true
			}
		}
		if o.EarlyExit && !swapped {
			break
		}
	}

	return out
}

// Values sorts an untyped slice or array of an ordered kind and returns a new
// slice of the same type (arrays become slices of their element type). A
// []any whose elements share one family is sorted as that family and
// returned as []any. The input is not mutated.
func Values(seq any, opts ...Option) (any, error) {
	s, err := ordered.Collect(seq)
	if err != nil {
		if errors.Is(err, ordered.ErrNotSequence) {
			return nil, fmt.Errorf("%w: %T", ErrNotSequence, seq)
		}
		return nil, fmt.Errorf("%w: %T", ErrElementType, seq)
	}

	switch s.Family {
	case ordered.Signed:
		s.Ints = Bubble(s.Ints, opts...)
	case ordered.Unsigned:
		s.Uints = Bubble(s.Uints, opts...)
	case ordered.Float:
		s.Floats = Bubble(s.Floats, opts...)
	case ordered.String:
		s.Strings = Bubble(s.Strings, opts...)
	}

	return s.Rebuild(), nil
}
