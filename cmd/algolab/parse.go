package main

import (
	"strconv"

	"github.com/katalvlaran/algolab/internal/ordered"
)

// parseValues infers one element type for every token: int64 when all parse
// as integers, else float64 when all parse as floats, else string.
func parseValues(tokens []string) (any, ordered.Family) {
	if ints, ok := parseAll(tokens, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }); ok {
		return ints, ordered.Signed
	}
	if floats, ok := parseAll(tokens, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }); ok {
		return floats, ordered.Float
	}

	return append([]string{}, tokens...), ordered.String
}

func parseAll[T any](tokens []string, parse func(string) (T, error)) ([]T, bool) {
	out := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

// parseTarget reads tok in the family of the values when possible. A token
// that does not fit keeps its own inferred type, so the search reports the
// mismatch instead of silently converting.
func parseTarget(tok string, family ordered.Family) any {
	switch family {
	case ordered.Signed:
		if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return v
		}
	case ordered.Float:
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return v
		}
	case ordered.String:
		return tok
	}
	if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v
	}

	return tok
}
