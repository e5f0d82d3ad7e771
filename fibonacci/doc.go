// Package fibonacci computes F(n) with F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2)
// using several strategies that share one contract and differ only in cost.
//
// Strategies:
//
//   - Naive      plain recursion, no memo. Time O(2^n), stack depth O(n).
//     Exists to contrast with the others; large n is slow on purpose.
//   - Iterative  two rolling variables. Time O(n), space O(1).
//   - Memoized   top-down recursion with a memo table. Time O(n), space O(n).
//   - Tabulated  bottom-up table. Time O(n), space O(n).
//
// Every strategy returns the same int64 for every n in [0, MaxIndex]; MaxIndex
// is the largest n whose F(n) fits in an int64.
//
// Errors:
//
//   - ErrNegativeIndex  n < 0.
//   - ErrOverflow       n > MaxIndex.
//
// Both wrap algoerr.ErrInvalidArgument.
package fibonacci
