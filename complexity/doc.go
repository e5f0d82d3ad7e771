// Package complexity measures the algorithms of this module side by side so
// their asymptotic costs can be compared on concrete inputs: probes of binary
// versus linear search, comparisons and swaps of bubble sort with and without
// early exit, and recursive calls of naive Fibonacci versus iterative steps.
//
// Every case is also an invariant check. A run that observes a wrong search
// index, an unsorted result or disagreeing Fibonacci values fails with
// ErrInvariant instead of producing a report.
//
// Cases are independent, so Run measures them concurrently on at most
// Config.Workers goroutines. Results land in preallocated slots and the
// report is identical for identical configs regardless of scheduling.
package complexity
