package percentile

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/statkit/statkit/cluster"
	"github.com/statkit/statkit/errs"
)

// Fraction identifies a percentile as a numerator/denominator pair.
// The median is 1/2, the quartiles 1/4 and 3/4. Using integer
// arithmetic keeps boundary detection exact where a float percentile
// would be subject to rounding.
type Fraction struct {
	Numerator   int
	Denominator int
}

// NewFraction creates a percentile fraction.
func NewFraction(numerator, denominator int) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// Common percentile fractions.
var (
	Half          = Fraction{Numerator: 1, Denominator: 2}
	FirstQuartile = Fraction{Numerator: 1, Denominator: 4}
	ThirdQuartile = Fraction{Numerator: 3, Denominator: 4}
)

func (f Fraction) validate() error {
	if f.Denominator <= 0 || f.Numerator < 0 || f.Numerator > f.Denominator {
		return fmt.Errorf("%w: %d/%d", errs.ErrInvalidFraction, f.Numerator, f.Denominator)
	}

	return nil
}

// MeanValue is the outcome of a percentile computation: either a
// single weighted element, or the two elements straddling a boundary
// whose arithmetic mean is the percentile.
type MeanValue struct {
	lo, hi float64
}

// NewSingle wraps one exact weighted element.
func NewSingle(v float64) MeanValue {
	return MeanValue{lo: v, hi: v}
}

// NewMean wraps the two elements straddling a boundary.
func NewMean(lo, hi float64) MeanValue {
	return MeanValue{lo: lo, hi: hi}
}

// Resolve collapses the result to a single value, averaging the two
// bounds when a boundary was straddled.
func (m MeanValue) Resolve() float64 {
	return (m.lo + m.hi) / 2
}

// Bounds returns the lower and upper boundary elements. They are
// equal for an exact single element.
func (m MeanValue) Bounds() (lo, hi float64) {
	return m.lo, m.hi
}

// IsMean reports whether the result averages two distinct elements.
func (m MeanValue) IsMean() bool {
	return m.lo != m.hi
}

// Median returns the weighted median of a list sorted ascending by
// value. Odd total weight yields the middle element; even total
// weight yields the mean of the two middle elements. O(distinct
// values).
func Median(list cluster.List) (MeanValue, error) {
	return Percentile(list, Half)
}

// Percentile returns the weighted percentile identified by fraction
// over a list sorted ascending by value. O(distinct values).
func Percentile(list cluster.List, fraction Fraction) (MeanValue, error) {
	lo, hi, err := targets(list.Weight(), fraction, list.IsEmpty())
	if err != nil {
		return MeanValue{}, err
	}

	loVal, hiVal := walk2(list.Clusters(), lo, hi)

	return MeanValue{lo: loVal, hi: hiVal}, nil
}

// PercentileRand returns the same result as Percentile but accepts an
// unsorted list, selecting elements with randomized quickselect.
// Expected O(distinct values) per call.
func PercentileRand(list cluster.List, fraction Fraction) (MeanValue, error) {
	lo, hi, err := targets(list.Weight(), fraction, list.IsEmpty())
	if err != nil {
		return MeanValue{}, err
	}

	clusters := slices.Clone(list.Clusters())
	loVal := selectWeighted(clusters, lo)
	hiVal := loVal
	if hi != lo {
		hiVal = selectWeighted(clusters, hi)
	}

	return MeanValue{lo: loVal, hi: hiVal}, nil
}

// targets maps a fraction over total weight n to the one or two
// weighted positions whose elements form the result. A boundary hit
// at the start of the list resolves to position 0 for both bounds.
func targets(n int, fraction Fraction, empty bool) (lo, hi int, err error) {
	if empty {
		return 0, 0, fmt.Errorf("%w: no clusters", errs.ErrEmptyInput)
	}
	if err := fraction.validate(); err != nil {
		return 0, 0, err
	}

	product := n * fraction.Numerator
	target := product / fraction.Denominator
	if product%fraction.Denominator == 0 {
		// Exact boundary: average the elements on either side.
		lo, hi = target-1, target
	} else {
		lo, hi = target, target
	}
	lo = clampIndex(lo, n)
	hi = clampIndex(hi, n)

	return lo, hi, nil
}

func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}

	return idx
}

// walk2 returns the values at weighted positions lo and hi (lo <= hi)
// in a single pass over sorted clusters.
func walk2(clusters []cluster.Cluster, lo, hi int) (loVal, hiVal float64) {
	cum := 0
	loDone := false
	for _, c := range clusters {
		cum += c.Count
		if !loDone && lo < cum {
			loVal = c.Value
			loDone = true
		}
		if hi < cum {
			hiVal = c.Value
			return loVal, hiVal
		}
	}
	// hi is clamped below the total weight, so the loop always
	// returns; this is unreachable for well-formed lists.
	return loVal, hiVal
}

// selectWeighted returns the value at weighted position k using
// randomized three-way partitioning.
func selectWeighted(clusters []cluster.Cluster, k int) float64 {
	for {
		if len(clusters) == 1 {
			return clusters[0].Value
		}
		pivot := clusters[rand.Intn(len(clusters))].Value

		var less, greater []cluster.Cluster
		lessWeight, equalWeight := 0, 0
		for _, c := range clusters {
			switch {
			case c.Value < pivot:
				less = append(less, c)
				lessWeight += c.Count
			case c.Value > pivot:
				greater = append(greater, c)
			default:
				equalWeight += c.Count
			}
		}

		switch {
		case k < lessWeight:
			clusters = less
		case k < lessWeight+equalWeight:
			return pivot
		default:
			k -= lessWeight + equalWeight
			clusters = greater
		}
	}
}

// MedianFloat64s returns the unweighted median of values, sorting a
// copy. O(n log n).
func MedianFloat64s(values []float64) (MeanValue, error) {
	return PercentileFloat64s(values, Half)
}

// PercentileFloat64s returns the unweighted percentile of values,
// sorting a copy. O(n log n).
func PercentileFloat64s(values []float64, fraction Fraction) (MeanValue, error) {
	return PercentileFloat64sInPlace(slices.Clone(values), fraction)
}

// PercentileFloat64sInPlace is PercentileFloat64s without the copy:
// it sorts the given slice in place. Useful when the caller owns a
// scratch slice, such as the candidate slopes of a robust fit.
func PercentileFloat64sInPlace(values []float64, fraction Fraction) (MeanValue, error) {
	lo, hi, err := targets(len(values), fraction, len(values) == 0)
	if err != nil {
		return MeanValue{}, err
	}
	slices.Sort(values)

	return MeanValue{lo: values[lo], hi: values[hi]}, nil
}
