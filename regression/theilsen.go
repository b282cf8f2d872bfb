package regression

import (
	"fmt"

	"github.com/statkit/statkit/errs"
	"github.com/statkit/statkit/percentile"
)

// TheilSen fits lines with the Theil-Sen estimator: the slope is the
// median of the slopes of every unique sample pair, the intercept is
// median(y) − slope·median(x). It implements LinearEstimator.
//
// The estimator is robust: up to roughly 29% of the samples can be
// outliers without large distortion of the result. Time and space are
// O(n²) in the sample count.
//
// Pairs with equal predictor values carry no slope information and
// are skipped; if every pair is degenerate the fit fails with
// errs.ErrInsufficientSpread.
type TheilSen struct{}

// FitLinear models a line through the samples.
func (TheilSen) FitLinear(predictors, outcomes []float64) (LinearCoefficients, error) {
	n := len(predictors)
	if n != len(outcomes) {
		return LinearCoefficients{}, fmt.Errorf("%w: %d predictors vs %d outcomes", errs.ErrLengthMismatch, n, len(outcomes))
	}
	if n < 2 {
		return LinearCoefficients{}, fmt.Errorf("%w: need at least 2 samples, got %d", errs.ErrInsufficientData, n)
	}

	slopes := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := predictors[i] - predictors[j]
			if dx == 0 {
				continue
			}
			slopes = append(slopes, (outcomes[i]-outcomes[j])/dx)
		}
	}
	if len(slopes) == 0 {
		return LinearCoefficients{}, fmt.Errorf("%w: all sample pairs share a predictor value", errs.ErrInsufficientSpread)
	}

	slopeMedian, err := percentile.PercentileFloat64sInPlace(slopes, percentile.Half)
	if err != nil {
		return LinearCoefficients{}, err
	}
	slope := slopeMedian.Resolve()

	predictorMedian, err := percentile.MedianFloat64s(predictors)
	if err != nil {
		return LinearCoefficients{}, err
	}
	outcomeMedian, err := percentile.MedianFloat64s(outcomes)
	if err != nil {
		return LinearCoefficients{}, err
	}

	// y = kx + m, so m = median(y) - k*median(x).
	return LinearCoefficients{
		K: slope,
		M: outcomeMedian.Resolve() - slope*predictorMedian.Resolve(),
	}, nil
}

// Fit is FitLinear with the result tagged as a Theil-Sen model.
func (ts TheilSen) Fit(predictors, outcomes []float64) (TheilSenCoefficients, error) {
	coeffs, err := ts.FitLinear(predictors, outcomes)
	if err != nil {
		return TheilSenCoefficients{}, err
	}

	return TheilSenCoefficients{LinearCoefficients: coeffs}, nil
}
