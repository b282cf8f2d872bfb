// Package statkit computes descriptive statistics and fits regression
// models to numeric samples.
//
// Repeated observations are represented as weighted clusters, so the
// percentile engine never expands duplicates into a flat sequence.
// The regression side fits linear, polynomial, power, exponential,
// and robust Theil-Sen models, and can pick the best one by a
// heuristically weighted coefficient of determination.
//
// # Core Features
//
//   - Weighted median, arbitrary percentiles, and quartiles over
//     clustered samples (cluster + percentile packages)
//   - Sample mean and standard deviation, clustered or flat
//   - OLS polynomial fitting of arbitrary degree, with an optional
//     arbitrary-precision backend (regression package)
//   - Robust Theil-Sen linear estimation
//   - Log-linearized power and exponential fits
//   - Automatic best-fit model selection
//
// # Basic Usage
//
// Descriptive statistics:
//
//	stats, _ := statkit.StandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9})
//	fmt.Printf("mean=%.1f sd=%.3f\n", stats.Mean, stats.StandardDeviation)
//
//	pct, _ := statkit.Percentiles([]float64{1, 2, 3, 4, 5, 6, 7, 8})
//	fmt.Printf("median=%.1f\n", pct.Median)
//
// Regression:
//
//	result, _ := statkit.RegressionBestFit(xs, ys)
//	fmt.Println(result.Model.Formula())
//
// This package provides convenient top-level wrappers around the
// cluster, percentile, and regression packages, simplifying the most
// common use cases. For fine-grained control (split sub-lists, custom
// fractions, explicit estimators, fit options), use those packages
// directly.
package statkit

import (
	"fmt"
	"math"

	"github.com/statkit/statkit/cluster"
	"github.com/statkit/statkit/errs"
	"github.com/statkit/statkit/percentile"
	"github.com/statkit/statkit/regression"
)

// StandardDeviationOutput is returned from StandardDeviation and
// StandardDeviationClusters. The mean rides along because computing
// the deviation requires it anyway.
type StandardDeviationOutput struct {
	StandardDeviation float64
	Mean              float64
}

// PercentilesOutput is returned from Percentiles and
// PercentilesClusters. The quartiles are nil when the total weight is
// below 5, where they carry no meaning.
type PercentilesOutput struct {
	Median         float64
	LowerQuartile  *float64
	HigherQuartile *float64
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	return MeanClusters(cluster.FromValues(values))
}

// MeanClusters returns the weighted arithmetic mean of the list.
// Runs in O(m), where m is the number of clusters.
func MeanClusters(list cluster.List) (float64, error) {
	if list.IsEmpty() {
		return 0, fmt.Errorf("%w: mean of no samples", errs.ErrEmptyInput)
	}

	return list.Sum() / float64(list.Weight()), nil
}

// StandardDeviation returns the sample standard deviation of values,
// using the n-1 denominator, along with their mean.
func StandardDeviation(values []float64) (StandardDeviationOutput, error) {
	return StandardDeviationClusters(cluster.FromValues(values))
}

// StandardDeviationClusters is StandardDeviation over a weighted
// list. Runs in O(m), where m is the number of clusters.
func StandardDeviationClusters(list cluster.List) (StandardDeviationOutput, error) {
	if list.Weight() < 2 {
		return StandardDeviationOutput{}, fmt.Errorf("%w: standard deviation needs at least 2 samples, got %d", errs.ErrInsufficientData, list.Weight())
	}

	mean, err := MeanClusters(list)
	if err != nil {
		return StandardDeviationOutput{}, err
	}
	variance := list.SumSquaredDiff(mean) / float64(list.Weight()-1)

	return StandardDeviationOutput{
		StandardDeviation: math.Sqrt(variance),
		Mean:              mean,
	}, nil
}

// Percentiles returns the median and, when the sample count is at
// least 5, the quartiles of values. The input is cloned and may
// arrive in any order.
func Percentiles(values []float64) (PercentilesOutput, error) {
	list := cluster.FromValues(values)
	list.Sort()

	return PercentilesClusters(list.Optimize())
}

// PercentilesClusters is Percentiles over a weighted list, which must
// already be sorted ascending by value.
//
// The quartiles use the randomized selection algorithm, so they run
// in expected O(m) without ordering the whole list twice more.
func PercentilesClusters(list cluster.List) (PercentilesOutput, error) {
	median, err := percentile.Median(list)
	if err != nil {
		return PercentilesOutput{}, err
	}

	out := PercentilesOutput{Median: median.Resolve()}
	if list.Weight() < 5 {
		return out, nil
	}

	lower, err := percentile.PercentileRand(list, percentile.FirstQuartile)
	if err != nil {
		return PercentilesOutput{}, err
	}
	higher, err := percentile.PercentileRand(list, percentile.ThirdQuartile)
	if err != nil {
		return PercentilesOutput{}, err
	}

	lo, hi := lower.Resolve(), higher.Resolve()
	out.LowerQuartile = &lo
	out.HigherQuartile = &hi

	return out, nil
}

// RegressionBestFit fits the candidate model families to the samples
// with ordinary least squares and returns the best one. See
// regression.BestFit for the selection heuristics and options.
func RegressionBestFit(predictors, outcomes []float64) (*regression.Result, error) {
	return regression.BestFit(predictors, outcomes)
}

// RegressionBestFitTheilSen is RegressionBestFit with the robust
// Theil-Sen estimator backing the linear, power, and exponential
// candidates.
func RegressionBestFitTheilSen(predictors, outcomes []float64) (*regression.Result, error) {
	return regression.BestFit(predictors, outcomes, regression.WithEstimator(regression.TheilSen{}))
}
