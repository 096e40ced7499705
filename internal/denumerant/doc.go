// Package denumerant computes the restricted partition function (Sylvester
// denumerant): for a fixed multiset of positive integers A, the number of
// ways a nonnegative integer t can be written as a sum of elements of A.
//
// The representation is an exact quasi-polynomial: a degree-(n-1) polynomial
// in t whose coefficients are periodic rational-valued functions of t. It is
// built incrementally, one restriction-list element at a time, using only
// exact rational arithmetic, after which evaluation at any t costs O(n)
// big-number operations regardless of the magnitude of t.
//
// Construction and evaluation are single-threaded pure computations; a
// finished RestrictedPartitionFunction is immutable and may be evaluated
// concurrently.
package denumerant
