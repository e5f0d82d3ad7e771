// Package algolab is a playground of classic interview algorithms, each with
// a precise contract and its cost made measurable.
//
// What is inside?
//
//	• search        binary search (iterative and recursive) and linear search
//	• sorting       bubble sort on a copy, with optional early exit
//	• fibonacci     naive, iterative, memoized and tabulated F(n)
//	• socialgraph   friendship network, BFS, degrees of separation, suggestions
//	• complexity    side-by-side probe/compare/call counts for all of the above
//	• algoerr       the InvalidArgument and TypeMismatch error kinds
//
// The search, sort and Fibonacci functions are pure: nothing is retained
// between calls and inputs are never mutated. Generic entry points accept any
// cmp.Ordered element type; the Values functions accept untyped data and
// report TypeMismatch when it is not an ordered sequence.
//
// Quick example:
//
//	idx, _ := search.Binary([]int{1, 3, 5, 7, 9, 11, 13, 15}, 7) // 3
//	out := sorting.Bubble([]int{64, 34, 25, 12, 22, 11, 90})     // [11 12 22 25 34 64 90]
//	f, _ := fibonacci.Iterative(10)                              // 55
//
// The algolab command (cmd/algolab) exposes the same operations on the
// terminal and can record complexity reports in a local SQLite history.
//
//	go install github.com/katalvlaran/algolab/cmd/algolab@latest
package algolab
