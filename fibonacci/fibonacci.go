package fibonacci

import (
	"fmt"

	"github.com/katalvlaran/algolab/algoerr"
)

// MaxIndex is the largest n with F(n) <= math.MaxInt64.
// F(92) = 7540113804746346429, F(93) overflows.
const MaxIndex = 92

var (
	// ErrNegativeIndex indicates n < 0.
	ErrNegativeIndex = algoerr.New("fibonacci", algoerr.ErrInvalidArgument, "index must be non-negative")

	// ErrOverflow indicates F(n) does not fit in an int64.
	ErrOverflow = algoerr.New("fibonacci", algoerr.ErrInvalidArgument, fmt.Sprintf("index exceeds %d", MaxIndex))
)

func validate(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: n=%d", ErrNegativeIndex, n)
	case n > MaxIndex:
		return fmt.Errorf("%w: n=%d", ErrOverflow, n)
	}

	return nil
}

// Naive returns F(n) by direct recursion without memoization.
func Naive(n int) (int64, error) {
	if err := validate(n); err != nil {
		return 0, err
	}

	return naive(n), nil
}

func naive(n int) int64 {
	if n < 2 {
		return int64(n)
	}

	return naive(n-1) + naive(n-2)
}

// NaiveCalls returns how many invocations Naive(n) makes, 2·F(n+1) - 1,
// without making them. It saturates at the uint64 maximum for huge n and is
// 0 for negative n.
func NaiveCalls(n int) uint64 {
	if n < 0 {
		return 0
	}
	var a, b uint64 = 1, 1 // F(1), F(2)
	for i := 0; i < n; i++ {
		if b > (^uint64(0))/2 {
			return ^uint64(0)
		}
		a, b = b, a+b
	}

	return 2*a - 1
}

// Iterative returns F(n) accumulating two rolling values.
func Iterative(n int) (int64, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	var a, b int64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a, nil
}

// Memoized returns F(n) by top-down recursion over a memo table.
func Memoized(n int) (int64, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	memo := make(map[int]int64, n+1)

	var rec func(int) int64
	rec = func(k int) int64 {
		if k < 2 {
			return int64(k)
		}
		if v, ok := memo[k]; ok {
			return v
		}
		v := rec(k-1) + rec(k-2)
		memo[k] = v
		return v
	}

	return rec(n), nil
}

// Tabulated returns F(n) from a bottom-up table.
func Tabulated(n int) (int64, error) {
	if err := validate(n); err != nil {
		return 0, err
	}
	if n < 2 {
		return int64(n), nil
	}
	table := make([]int64, n+1)
	table[1] = 1
	for i := 2; i <= n; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table[n], nil
}

// Sequence returns the first count terms F(0), ..., F(count-1).
// count == 0 yields an empty slice; count must not exceed MaxIndex+1.
func Sequence(count int) ([]int64, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: count=%d", ErrNegativeIndex, count)
	case count == 0:
		return []int64{}, nil
	}
	if err := validate(count - 1); err != nil {
		return nil, err
	}
	out := make([]int64, count)
	var a, b int64 = 0, 1
	for i := range out {
		out[i] = a
		a, b = b, a+b
	}

	return out, nil
}
