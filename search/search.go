package search

import "cmp"

// Binary returns the index of an element equal to target in seq, or NotFound.
//
// seq must be sorted in non-decreasing order; the result on unsorted input is
// unspecified but never out of range. An empty seq yields ErrEmptySequence.
//
// Complexity: O(log n) time, O(1) extra space.
func Binary[T cmp.Ordered](seq []T, target T, opts ...Option) (int, error) {
	if len(seq) == 0 {
		return NotFound, ErrEmptySequence
	}
	o := buildOptions(opts)

	low, high := 0, len(seq)-1
	for low <= high {
		mid := low + (high-low)/2
		o.OnProbe(low, mid, high)
		switch c := cmp.Compare(seq[mid], target); {
		case c == 0:
			return mid, nil
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound, nil
}

// BinaryRecursive is Binary expressed as tail recursion over the half-open
// range [lo, hi). It probes the same midpoints as Binary.
//
// Complexity: O(log n) time, O(log n) call depth.
func BinaryRecursive[T cmp.Ordered](seq []T, target T, opts ...Option) (int, error) {
	if len(seq) == 0 {
		return NotFound, ErrEmptySequence
	}
	o := buildOptions(opts)

	return bisect(seq, target, 0, len(seq), &o), nil
}

// bisect searches seq[lo:hi]. The midpoint is taken over the inclusive
// bounds [lo, hi-1] so that the probe sequence matches Binary.
func bisect[T cmp.Ordered](seq []T, target T, lo, hi int, o *Options) int {
	if lo >= hi {
		return NotFound
	}
	mid := lo + (hi-1-lo)/2
	o.OnProbe(lo, mid, hi-1)
	switch c := cmp.Compare(seq[mid], target); {
	case c == 0:
		return mid
	case c < 0:
		return bisect(seq, target, mid+1, hi, o)
	default:
		return bisect(seq, target, lo, mid, o)
	}
}

// Linear returns the index of the first element equal to target, or NotFound.
// There is no ordering precondition; an empty seq simply yields NotFound.
//
// Complexity: O(n) time, O(1) extra space.
func Linear[T comparable](seq []T, target T) int {
	for i, v := range seq {
		if v == target {
			return i
		}
	}

	return NotFound
}
