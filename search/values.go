package search

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/algolab/internal/ordered"
)

// Values searches an untyped sequence for an untyped target using variant.
//
// seq must be a slice or array whose element kind is an integer, float or
// string kind, and target must belong to the same family (signed, unsigned,
// float, string). A []any such as json.Unmarshal produces is accepted when
// every element belongs to one family; an empty one takes the target's.
// Mismatches fail with a TypeMismatch error before any comparison is made.
func Values(seq, target any, variant Variant, opts ...Option) (int, error) {
	if variant < VariantBinary || variant > VariantLinear {
		return NotFound, fmt.Errorf("%w: %d", ErrUnknownVariant, int(variant))
	}
	s, err := ordered.Collect(seq)
	if err != nil {
		switch {
		case errors.Is(err, ordered.ErrNotSequence):
			return NotFound, fmt.Errorf("%w: %T", ErrNotSequence, seq)
		default:
			return NotFound, fmt.Errorf("%w: %T", ErrElementType, seq)
		}
	}
	t := ordered.ScalarOf(target)
	if s.Boxed && s.Len() == 0 {
		s.Family = t.Family
	}
	if t.Family == ordered.Invalid || t.Family != s.Family {
		return NotFound, fmt.Errorf("%w: %T is %s, elements are %s", ErrTargetType, target, t.Family, s.Family)
	}

	switch s.Family {
	case ordered.Signed:
		return dispatch(s.Ints, t.Int, variant, opts)
	case ordered.Unsigned:
		return dispatch(s.Uints, t.Uint, variant, opts)
	case ordered.Float:
		return dispatch(s.Floats, t.Float, variant, opts)
	default:
		return dispatch(s.Strings, t.String, variant, opts)
	}
}

func dispatch[T cmp.Ordered](seq []T, target T, variant Variant, opts []Option) (int, error) {
	switch variant {
	case VariantBinaryRecursive:
		return BinaryRecursive(seq, target, opts...)
	case VariantLinear:
		return Linear(seq, target), nil
	default:
		return Binary(seq, target, opts...)
	}
}
