// Package percentile computes weighted medians and arbitrary
// percentiles directly over cluster lists, without expanding counted
// duplicates into a flat sequence.
//
// # Weighted positions
//
// A list with total weight n describes n weighted positions 0..n-1 in
// value order. For a fraction p/q the engine locates the position
// target = n*p/q (integer arithmetic). When q divides n*p exactly the
// percentile straddles a boundary and the result is the mean of the
// elements at positions target-1 and target; otherwise it is the
// single element at position target. With p/q = 1/2 this reduces to
// the familiar median: the middle element for odd n, the mean of the
// two middle elements for even n.
//
// When the straddled boundary sits at the very start of the list
// (target = 0), the first element serves as both bounds and the
// result is its value. The reference behavior for this corner is
// ambiguous; this policy is the defined choice here.
//
// # Sorted contract
//
// Median and Percentile require the list to be sorted ascending by
// value; they walk it once and trust the ordering. PercentileRand is
// the exception: it selects by randomized pivoting (expected O(n))
// and accepts any ordering.
//
// # Results
//
// Computations return a MeanValue carrying one or two boundary
// values. Resolve collapses it to a single float64. Keeping both
// bounds lets callers distinguish an exact weighted element from a
// boundary average.
package percentile
