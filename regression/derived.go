package regression

import (
	"fmt"
	"math"

	"github.com/statkit/statkit/errs"
)

// The power and exponential fits are derived models: the samples are
// mapped into log space, a line is fitted there, and the line's
// coefficients are transformed back. Any LinearEstimator can back the
// fit, so the robust Theil-Sen variant comes for free.
//
// Logarithms require positive values. When the smallest predictor or
// outcome is below 1 the samples are shifted by an additive constant
// 1-min before transforming, and the resulting model subtracts the
// shift again in Predict. The correction keeps the fit defined but the
// model no longer follows a pure power or exponential law, so treat
// results on shifted data as approximations.

// PowerOLS fits y = kx^e using ordinary least squares in log space.
func PowerOLS(predictors, outcomes []float64) (PowerCoefficients, error) {
	return Power(OLS{}, predictors, outcomes)
}

// Power fits y = kx^e with the given linear estimator. It requires
// more than 2 samples.
func Power(est LinearEstimator, predictors, outcomes []float64) (PowerCoefficients, error) {
	if err := checkDerived(predictors, outcomes); err != nil {
		return PowerCoefficients{}, err
	}

	predictorAdditive := domainShift(predictors)
	outcomeAdditive := domainShift(outcomes)

	logPredictors := make([]float64, len(predictors))
	logOutcomes := make([]float64, len(outcomes))
	for i, x := range predictors {
		logPredictors[i] = math.Log2(x + predictorAdditive)
	}
	for i, y := range outcomes {
		logOutcomes[i] = math.Log2(y + outcomeAdditive)
	}

	line, err := est.FitLinear(logPredictors, logOutcomes)
	if err != nil {
		return PowerCoefficients{}, err
	}

	// log2(y) = e*log2(x) + log2(k), so k = 2^m and e = slope.
	return PowerCoefficients{
		K:                 math.Exp2(line.M),
		E:                 line.K,
		PredictorAdditive: predictorAdditive,
		OutcomeAdditive:   outcomeAdditive,
	}, nil
}

// ExponentialOLS fits y = k*b^x using ordinary least squares in log
// space.
func ExponentialOLS(predictors, outcomes []float64) (ExponentialCoefficients, error) {
	return Exponential(OLS{}, predictors, outcomes)
}

// Exponential fits y = k*b^x with the given linear estimator. It
// requires more than 2 samples.
func Exponential(est LinearEstimator, predictors, outcomes []float64) (ExponentialCoefficients, error) {
	if err := checkDerived(predictors, outcomes); err != nil {
		return ExponentialCoefficients{}, err
	}

	predictorAdditive := domainShift(predictors)
	outcomeAdditive := domainShift(outcomes)

	shiftedPredictors := make([]float64, len(predictors))
	logOutcomes := make([]float64, len(outcomes))
	for i, x := range predictors {
		shiftedPredictors[i] = x + predictorAdditive
	}
	for i, y := range outcomes {
		logOutcomes[i] = math.Log2(y + outcomeAdditive)
	}

	line, err := est.FitLinear(shiftedPredictors, logOutcomes)
	if err != nil {
		return ExponentialCoefficients{}, err
	}

	// log2(y) = log2(b)*x + log2(k), so k = 2^m and b = 2^slope.
	return ExponentialCoefficients{
		K:                 math.Exp2(line.M),
		B:                 math.Exp2(line.K),
		PredictorAdditive: predictorAdditive,
		OutcomeAdditive:   outcomeAdditive,
	}, nil
}

func checkDerived(predictors, outcomes []float64) error {
	if len(predictors) != len(outcomes) {
		return fmt.Errorf("%w: %d predictors vs %d outcomes", errs.ErrLengthMismatch, len(predictors), len(outcomes))
	}
	if len(predictors) <= 2 {
		return fmt.Errorf("%w: need more than 2 samples, got %d", errs.ErrInsufficientData, len(predictors))
	}

	return nil
}

// domainShift returns the additive constant that moves the smallest
// value to 1, or 0 when the values are already at least 1.
func domainShift(values []float64) float64 {
	if lo := sliceMin(values); lo < 1 {
		return 1 - lo
	}

	return 0
}

func sliceMin(values []float64) float64 {
	lo := values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo
}
