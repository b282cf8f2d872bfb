package regression

import (
	"fmt"

	"github.com/statkit/statkit/errs"
)

// LinearEstimator is implemented by every method yielding a
// two-variable linear fit (a line). The derived power/exponential
// fitters and the best-fit selector are parameterized over it, so the
// robust Theil-Sen estimator can be swapped in for OLS everywhere a
// line is fitted.
type LinearEstimator interface {
	// FitLinear models the slope and intercept of a line through the
	// samples. The two slices must have the same length.
	FitLinear(predictors, outcomes []float64) (LinearCoefficients, error)
}

// OLS fits lines by ordinary least squares via the polynomial engine
// at degree 1. It implements LinearEstimator.
type OLS struct{}

// FitLinear models a line by ordinary least squares.
func (OLS) FitLinear(predictors, outcomes []float64) (LinearCoefficients, error) {
	coeffs, err := Polynomial(predictors, outcomes, 1)
	if err != nil {
		return LinearCoefficients{}, err
	}
	flat := coeffs.Coefficients()

	return LinearCoefficients{K: flat[1], M: flat[0]}, nil
}

// asModel tags a line fitted by est with the estimator's model type,
// so a Theil-Sen line is distinguishable from an OLS one.
func asModel(est LinearEstimator, coeffs LinearCoefficients) Model {
	if _, ok := est.(TheilSen); ok {
		return TheilSenCoefficients{LinearCoefficients: coeffs}
	}

	return coeffs
}

// NewModel creates a fitted model by type name and coefficients.
//
// Supported names and layouts:
//   - "linear", "theil-sen": [m, k] (index = power of x)
//   - "polynomial": coefficients by ascending power, at least 1
//   - "power": [k, e]
//   - "exponential": [k, b]
//
// This is the runtime factory counterpart of Model.Coefficients: a
// model round-trips through (Type().String(), Coefficients()).
func NewModel(name string, coeffs []float64) (Model, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, supportedModelTypes())
	}

	switch modelType {
	case ModelTypeLinear:
		if len(coeffs) != 2 {
			return nil, fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
		}

		return LinearCoefficients{M: coeffs[0], K: coeffs[1]}, nil
	case ModelTypeTheilSen:
		if len(coeffs) != 2 {
			return nil, fmt.Errorf("theil-sen model expects exactly 2 coefficients, got %d", len(coeffs))
		}

		return TheilSenCoefficients{LinearCoefficients{M: coeffs[0], K: coeffs[1]}}, nil
	case ModelTypePolynomial:
		if len(coeffs) == 0 {
			return nil, fmt.Errorf("%w: polynomial model expects at least 1 coefficient", errs.ErrEmptyInput)
		}

		return NewPolynomialCoefficients(coeffs), nil
	case ModelTypePower:
		if len(coeffs) != 2 {
			return nil, fmt.Errorf("power model expects exactly 2 coefficients, got %d", len(coeffs))
		}

		return PowerCoefficients{K: coeffs[0], E: coeffs[1]}, nil
	case ModelTypeExponential:
		if len(coeffs) != 2 {
			return nil, fmt.Errorf("exponential model expects exactly 2 coefficients, got %d", len(coeffs))
		}

		return ExponentialCoefficients{K: coeffs[0], B: coeffs[1]}, nil
	default:
		return nil, fmt.Errorf("unknown model type: %s", name)
	}
}
