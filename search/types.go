package search

import (
	"fmt"

	"github.com/katalvlaran/algolab/algoerr"
)

// NotFound is the sentinel index returned when target is absent.
const NotFound = -1

// Sentinel errors for search operations.
var (
	// ErrEmptySequence indicates a binary search over an empty sequence.
	ErrEmptySequence = algoerr.New("search", algoerr.ErrInvalidArgument, "sequence must be non-empty")

	// ErrUnknownVariant indicates a Variant outside the declared constants.
	ErrUnknownVariant = algoerr.New("search", algoerr.ErrInvalidArgument, "unknown variant")

	// ErrNotSequence indicates the argument is not a slice or array.
	ErrNotSequence = algoerr.New("search", algoerr.ErrTypeMismatch, "argument is not a sequence")

	// ErrElementType indicates the sequence elements are not an ordered kind.
	ErrElementType = algoerr.New("search", algoerr.ErrTypeMismatch, "sequence elements are not ordered")

	// ErrTargetType indicates the target does not share the elements' kind family.
	ErrTargetType = algoerr.New("search", algoerr.ErrTypeMismatch, "target does not match element type")
)

// Variant selects the algorithm used by Values.
type Variant int

const (
	// VariantBinary runs the iterative bisection.
	VariantBinary Variant = iota

	// VariantBinaryRecursive runs the recursive bisection.
	VariantBinaryRecursive

	// VariantLinear runs the forward scan.
	VariantLinear
)

// String returns the lower-case name used by the CLI.
func (v Variant) String() string {
	switch v {
	case VariantBinary:
		return "binary"
	case VariantBinaryRecursive:
		return "recursive"
	case VariantLinear:
		return "linear"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "binary", "recursive" or "linear" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "binary", "":
		return VariantBinary, nil
	case "recursive":
		return VariantBinaryRecursive, nil
	case "linear":
		return VariantLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Option configures a binary search via functional arguments.
type Option func(*Options)

// Options holds the hooks of a binary search.
type Options struct {
	// OnProbe is called once per comparison with the current inclusive
	// bounds and the probed midpoint.
	OnProbe func(low, mid, high int)
}

// DefaultOptions returns Options with a no-op OnProbe hook.
func DefaultOptions() Options {
	return Options{
		OnProbe: func(int, int, int) {},
	}
}

// WithOnProbe registers a callback invoked on every probe.
func WithOnProbe(fn func(low, mid, high int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
