package cluster

import (
	"fmt"
	"math"
	"slices"

	"github.com/statkit/statkit/errs"
	"github.com/statkit/statkit/internal/hash"
)

// Cluster is a value together with the number of times it was
// observed. Count must be at least 1.
type Cluster struct {
	Value float64
	Count int
}

// List is an ordered sequence of clusters with a cached total weight
// (the sum of all counts). The zero value is an empty list.
//
// List headers are value-like: copying a List shares the underlying
// cluster storage, the same way slices do.
type List struct {
	clusters []Cluster
	weight   int
}

// New creates a list from the given clusters, taking ownership of the
// slice. It returns an error if any cluster has a count below 1.
func New(clusters []Cluster) (List, error) {
	weight := 0
	for i, c := range clusters {
		if c.Count < 1 {
			return List{}, fmt.Errorf("%w: cluster %d has count %d", errs.ErrInvalidCount, i, c.Count)
		}
		weight += c.Count
	}

	return List{clusters: clusters, weight: weight}, nil
}

// FromValues creates a list of single-count clusters, one per value,
// preserving the input order.
func FromValues(values []float64) List {
	clusters := make([]Cluster, len(values))
	for i, v := range values {
		clusters[i] = Cluster{Value: v, Count: 1}
	}

	return List{clusters: clusters, weight: len(values)}
}

// Clusters returns the underlying cluster sequence. The slice is
// shared with the list; callers must not grow it.
func (l List) Clusters() []Cluster {
	return l.clusters
}

// Weight returns the total weight, the sum of all counts. O(1).
func (l List) Weight() int {
	return l.weight
}

// IsEmpty reports whether the list holds no clusters. O(1).
func (l List) IsEmpty() bool {
	return len(l.clusters) == 0
}

// Sum returns the weighted sum of all values, accumulated in cluster
// iteration order.
func (l List) Sum() float64 {
	sum := 0.0
	for _, c := range l.clusters {
		sum += c.Value * float64(c.Count)
	}

	return sum
}

// SumSquaredDiff returns the weighted sum of squared deviations from
// base, accumulated in cluster iteration order.
func (l List) SumSquaredDiff(base float64) float64 {
	sum := 0.0
	for _, c := range l.clusters {
		diff := c.Value - base
		sum += diff * diff * float64(c.Count)
	}

	return sum
}

// Sort sorts the clusters ascending by value, in place. NaN values
// sort before all others. This establishes the ordering contract the
// percentile engine requires.
func (l List) Sort() {
	slices.SortFunc(l.clusters, func(a, b Cluster) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		case math.IsNaN(a.Value) && !math.IsNaN(b.Value):
			return -1
		case math.IsNaN(b.Value) && !math.IsNaN(a.Value):
			return 1
		default:
			return 0
		}
	})
}

// SplitStart returns the leading sub-list whose total weight is
// exactly n, splitting the boundary cluster's count if n falls inside
// it. It fails if n exceeds the total weight.
func (l List) SplitStart(n int) (List, error) {
	if n > l.weight {
		return List{}, fmt.Errorf("%w: split weight %d exceeds total %d", errs.ErrInsufficientData, n, l.weight)
	}

	sum := 0
	var out []Cluster
	for _, c := range l.clusters {
		sum += c.Count
		if sum >= n {
			if keep := c.Count - (sum - n); keep > 0 {
				out = append(out, Cluster{Value: c.Value, Count: keep})
			}
			break
		}
		out = append(out, c)
	}

	return List{clusters: out, weight: n}, nil
}

// SplitEnd returns the trailing sub-list whose total weight is
// exactly n, splitting the boundary cluster's count if n falls inside
// it. It fails if n exceeds the total weight.
func (l List) SplitEnd(n int) (List, error) {
	if n > l.weight {
		return List{}, fmt.Errorf("%w: split weight %d exceeds total %d", errs.ErrInsufficientData, n, l.weight)
	}

	sum := 0
	var out []Cluster
	for i := len(l.clusters) - 1; i >= 0; i-- {
		c := l.clusters[i]
		sum += c.Count
		if sum >= n {
			if keep := c.Count - (sum - n); keep > 0 {
				out = append(out, Cluster{Value: c.Value, Count: keep})
			}
			break
		}
		out = append(out, c)
	}
	slices.Reverse(out)

	return List{clusters: out, weight: n}, nil
}

// Optimize merges clusters whose values are bit-identical by summing
// their counts, returning a compacted list. First-appearance order of
// distinct values is preserved, and the total weight is unchanged.
// Values that compare equal but differ in bit pattern (+0.0 vs -0.0,
// NaN payloads) are not merged. O(n).
func (l List) Optimize() List {
	index := make(map[uint64]int, len(l.clusters))
	out := make([]Cluster, 0, len(l.clusters))
	for _, c := range l.clusters {
		key := math.Float64bits(c.Value)
		if at, ok := index[key]; ok {
			out[at].Count += c.Count
			continue
		}
		index[key] = len(out)
		out = append(out, c)
	}

	return List{clusters: out, weight: l.weight}
}

// Fingerprint returns a stable xxHash64 identity of the list's exact
// bit content: value bit patterns and counts in iteration order. Two
// lists fingerprint equal only if they are bit-identical, cluster for
// cluster.
func (l List) Fingerprint() uint64 {
	values := make([]float64, len(l.clusters))
	counts := make([]int, len(l.clusters))
	for i, c := range l.clusters {
		values[i] = c.Value
		counts[i] = c.Count
	}

	return hash.Weighted(values, counts)
}
