// Package search locates a target value in a sequence.
//
// Overview:
//
//   - Binary bisects a sequence sorted in non-decreasing order, keeping
//     inclusive bounds low/high and probing mid = low + (high-low)/2 so the
//     midpoint never overflows.
//   - BinaryRecursive expresses the same bisection as tail recursion on a
//     half-open range [lo, hi). It probes exactly the same indices as Binary
//     and therefore returns the same result for every input.
//   - Linear scans from index 0 forward and is the O(n) baseline.
//   - Values is the dynamic entry point for callers holding untyped data
//     (decoded JSON, CLI arguments). It validates the container and element
//     kinds before dispatching to one of the generic variants.
//
// Result contract:
//
//   - The index of an element equal to target, or NotFound (-1).
//   - With duplicates of target, the index is whichever one the bisection
//     lands on first. It is NOT guaranteed to be the leftmost or rightmost
//     occurrence.
//
// Complexity:
//
//   - Binary:          O(log n) comparisons, O(1) extra space.
//   - BinaryRecursive: O(log n) comparisons, O(log n) call depth.
//   - Linear:          O(n) comparisons, O(1) extra space.
//
// Errors:
//
//   - ErrEmptySequence   binary variants on an empty sequence (InvalidArgument).
//   - ErrUnknownVariant  Values with an unrecognised Variant (InvalidArgument).
//   - ErrNotSequence     Values on something that is not a slice/array (TypeMismatch).
//   - ErrElementType     Values on a sequence of unordered elements (TypeMismatch).
//   - ErrTargetType      Values with a target of another kind family (TypeMismatch).
//
// Example:
//
//	idx, err := search.Binary([]int{1, 3, 5, 7, 9}, 7)
//	// idx == 3, err == nil
package search
