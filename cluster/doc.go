// Package cluster provides the weighted sample representation used by
// the statkit engines: a Cluster is a (value, count) pair standing for
// count repeated observations of value, and a List is an ordered
// sequence of clusters with a cached total weight.
//
// Representing repeated observations as clusters lets the statistics
// engines run in O(distinct values) instead of O(total observations)
// without ever materializing a flat expanded sequence.
//
// # Sorted contract
//
// Statistic-computing callers (the percentile engine in particular)
// require the list to be sorted ascending by value. The list does not
// sort itself; callers own that contract and can use Sort where
// needed. Operations that do not depend on order (Sum, Weight,
// Optimize, Fingerprint) accept any ordering.
//
// # Bit-identical deduplication
//
// Optimize merges clusters whose values share the exact IEEE-754 bit
// pattern by summing their counts. Values that are mathematically
// equal but bit-distinct, such as +0.0 and -0.0 or NaNs with
// different payloads, are deliberately not merged. This is a sharp
// but intentional edge of the value model, shared with Fingerprint.
//
// # Determinism
//
// Sum and SumSquaredDiff accumulate in cluster iteration order, so
// results are reproducible for a fixed input ordering. Reordering the
// list may change low-order bits of the sums; that is a determinism
// contract, not a correctness guarantee of bit-identical reductions.
package cluster
