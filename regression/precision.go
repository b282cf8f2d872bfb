package regression

import (
	"fmt"
	"math/big"

	"github.com/statkit/statkit/errs"
)

// polynomialBig solves the normal equations in big.Float arithmetic
// at the given precision. Vandermonde-style design matrices are
// ill-conditioned at high degree; extended precision keeps the
// accumulated products and the elimination stable where float64
// breaks down.
//
// The (degree+1)×(degree+1) system XᵗX·β = Xᵗy is accumulated
// directly from predictor powers and solved by Gaussian elimination
// with partial pivoting.
func polynomialBig(predictors, outcomes []float64, degree int, prec uint) (PolynomialCoefficients, error) {
	n := len(predictors)
	cols := degree + 1

	newF := func() *big.Float { return new(big.Float).SetPrec(prec) }

	// powers[i][j] = predictors[i]^j
	powers := make([][]*big.Float, n)
	for i, x := range predictors {
		row := make([]*big.Float, cols)
		xf := newF().SetFloat64(x)
		row[0] = newF().SetFloat64(1)
		for j := 1; j < cols; j++ {
			row[j] = newF().Mul(row[j-1], xf)
		}
		powers[i] = row
	}

	// a = XᵗX augmented with b = Xᵗy in the last column.
	a := make([][]*big.Float, cols)
	for r := 0; r < cols; r++ {
		a[r] = make([]*big.Float, cols+1)
		for c := 0; c <= cols; c++ {
			a[r][c] = newF()
		}
	}
	tmp := newF()
	for i := 0; i < n; i++ {
		yf := newF().SetFloat64(outcomes[i])
		for r := 0; r < cols; r++ {
			for c := 0; c < cols; c++ {
				tmp.Mul(powers[i][r], powers[i][c])
				a[r][c].Add(a[r][c], tmp)
			}
			tmp.Mul(powers[i][r], yf)
			a[r][cols].Add(a[r][cols], tmp)
		}
	}

	// Gaussian elimination with partial pivoting.
	for col := 0; col < cols; col++ {
		pivot := col
		pivotAbs := newF().Abs(a[col][col])
		for r := col + 1; r < cols; r++ {
			abs := newF().Abs(a[r][col])
			if abs.Cmp(pivotAbs) > 0 {
				pivot = r
				pivotAbs = abs
			}
		}
		if pivotAbs.Sign() == 0 {
			return PolynomialCoefficients{}, fmt.Errorf("%w: zero pivot at column %d", errs.ErrSingularMatrix, col)
		}
		a[col], a[pivot] = a[pivot], a[col]

		factor := newF()
		for r := col + 1; r < cols; r++ {
			factor.Quo(a[r][col], a[col][col])
			for c := col; c <= cols; c++ {
				tmp.Mul(factor, a[col][c])
				a[r][c].Sub(a[r][c], tmp)
			}
		}
	}

	// Back substitution.
	coeffs := make([]float64, cols)
	solution := make([]*big.Float, cols)
	for r := cols - 1; r >= 0; r-- {
		sum := newF().Set(a[r][cols])
		for c := r + 1; c < cols; c++ {
			tmp.Mul(a[r][c], solution[c])
			sum.Sub(sum, tmp)
		}
		solution[r] = sum.Quo(sum, a[r][r])
		coeffs[r], _ = solution[r].Float64()
	}

	return PolynomialCoefficients{coeffs: coeffs}, nil
}
