package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/statkit/errs"
)

// Polynomial fits a polynomial of the given degree to the samples by
// ordinary least squares. Degree 1 is a simple linear fit.
//
// The fit builds a len × (degree+1) design matrix X whose column j
// holds predictorᵢʲ (column 0 is all ones) and solves the normal
// equations:
//
//	coefficients = (XᵗX)⁻¹ Xᵗ y
//
// Preconditions: the slices must have equal length and degree must be
// smaller than the sample count. Collinear or degenerate predictors
// make XᵗX uninvertible and fail with errs.ErrSingularMatrix.
//
// Design matrices of high degree (around 10 and above) become
// ill-conditioned in double precision; pass WithPrecision to run the
// solve on the big.Float backend instead.
func Polynomial(predictors, outcomes []float64, degree int, opts ...FitOption) (PolynomialCoefficients, error) {
	if len(predictors) != len(outcomes) {
		return PolynomialCoefficients{}, fmt.Errorf("%w: %d predictors vs %d outcomes", errs.ErrLengthMismatch, len(predictors), len(outcomes))
	}
	if len(predictors) == 0 {
		return PolynomialCoefficients{}, fmt.Errorf("%w: no samples", errs.ErrEmptyInput)
	}
	if degree < 0 {
		return PolynomialCoefficients{}, fmt.Errorf("%w: negative degree %d", errs.ErrInsufficientData, degree)
	}
	if degree >= len(predictors) {
		return PolynomialCoefficients{}, fmt.Errorf("%w: degree %d needs more than %d samples", errs.ErrInsufficientData, degree, len(predictors))
	}

	cfg, err := newFitConfig(opts...)
	if err != nil {
		return PolynomialCoefficients{}, err
	}
	if cfg.precision > 0 {
		return polynomialBig(predictors, outcomes, degree, cfg.precision)
	}

	return polynomialFloat(predictors, outcomes, degree)
}

// polynomialFloat solves the normal equations in double precision.
func polynomialFloat(predictors, outcomes []float64, degree int) (PolynomialCoefficients, error) {
	n := len(predictors)
	cols := degree + 1

	design := mat.NewDense(n, cols, nil)
	for i, x := range predictors {
		power := 1.0
		for j := 0; j < cols; j++ {
			design.Set(i, j, power)
			power *= x
		}
	}

	var xtx mat.Dense
	xtx.Mul(design.T(), design)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		// A finite Condition error flags ill-conditioning but still
		// carries a usable result; an infinite condition number means
		// the matrix is singular and the result is garbage.
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return PolynomialCoefficients{}, fmt.Errorf("%w: %v", errs.ErrSingularMatrix, err)
		}
	}

	var xty mat.VecDense
	xty.MulVec(design.T(), mat.NewVecDense(n, outcomes))

	var beta mat.VecDense
	beta.MulVec(&inv, &xty)

	coeffs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		coeffs[j] = beta.AtVec(j)
	}

	return PolynomialCoefficients{coeffs: coeffs}, nil
}
