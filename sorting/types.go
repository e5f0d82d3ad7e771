// Package sorting provides options and error definitions for the
// comparison sorts in this package.
package sorting

import "github.com/katalvlaran/algolab/algoerr"

// Sentinel errors for Values.
var (
	// ErrNotSequence indicates the argument is not a slice or array.
	ErrNotSequence = algoerr.New("sorting", algoerr.ErrTypeMismatch, "argument is not a sequence")

	// ErrElementType indicates the sequence elements are not an ordered kind.
	ErrElementType = algoerr.New("sorting", algoerr.ErrTypeMismatch, "sequence elements are not ordered")
)

// Option configures a sort via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks for Bubble.
type Options struct {
	// EarlyExit stops after the first pass that performs no swap.
	// Off by default: the classic algorithm always runs n-1 passes.
	EarlyExit bool

	// OnCompare is called before comparing positions i and j (j == i+1).
	OnCompare func(i, j int)

	// OnSwap is called after positions i and j have been exchanged.
	OnSwap func(i, j int)
}

// DefaultOptions returns Options with early exit disabled and no-op hooks.
func DefaultOptions() Options {
	return Options{
		EarlyExit: false,
		OnCompare: func(int, int) {},
		OnSwap:    func(int, int) {},
	}
}

// WithEarlyExit enables the no-swap short circuit, turning the best case
// (already sorted input) into a single O(n) pass.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithOnCompare registers a callback invoked for every adjacent comparison.
func WithOnCompare(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnSwap registers a callback invoked for every swap.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}
