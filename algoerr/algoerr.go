// Package algoerr defines the error kinds shared by every algolab package.
//
// Each package declares its own sentinel errors (e.g. search.ErrEmptySequence).
// Sentinels describing a caller's input wrap exactly one of the kinds below,
// so a caller can either match the precise sentinel or the broader kind:
//
//	idx, err := search.Binary(nil, 3)
//	errors.Is(err, search.ErrEmptySequence)      // true
//	errors.Is(err, algoerr.ErrInvalidArgument)   // true
//
// Sentinels that report a fault of the library itself, such as
// complexity.ErrInvariant, wrap no kind and Kind returns nil for them.
//
// Failures are atomic: an operation either returns a complete result or an
// error, never a partial value.
package algoerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks values that are well-typed but unusable,
	// such as an empty sequence handed to binary search or a negative index.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch marks arguments whose semantic type does not match the
	// expected container contract, such as a map passed where a sequence
	// is required.
	ErrTypeMismatch = errors.New("type mismatch")
)

// New returns a package sentinel "<pkg>: <msg>" that wraps kind.
func New(pkg string, kind error, msg string) error {
	return fmt.Errorf("%s: %s: %w", pkg, msg, kind)
}

// Kind reports which of the shared kinds err belongs to, or nil.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrInvalidArgument
	case errors.Is(err, ErrTypeMismatch):
		return ErrTypeMismatch
	default:
		return nil
	}
}
