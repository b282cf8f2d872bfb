package regression

import (
	"fmt"

	"github.com/statkit/statkit/errs"
)

// Determination calculates the R² (coefficient of determination) of a
// model against observed data: the proportion of outcome variance the
// model explains.
//
//	R² = 1 − Σ(residual²) / Σ((y − mean(y))²)
//
// A perfect fit yields exactly 1.0. The predictors and outcomes must
// have the same non-zero length. Summation runs in array iteration
// order. O(n).
func Determination(model Model, predictors, outcomes []float64) (float64, error) {
	if len(predictors) != len(outcomes) {
		return 0, fmt.Errorf("%w: %d predictors vs %d outcomes", errs.ErrLengthMismatch, len(predictors), len(outcomes))
	}
	if len(outcomes) == 0 {
		return 0, fmt.Errorf("%w: no samples", errs.ErrEmptyInput)
	}

	mean := 0.0
	for _, y := range outcomes {
		mean += y
	}
	mean /= float64(len(outcomes))

	ssRes := 0.0
	ssTot := 0.0
	for i, y := range outcomes {
		residual := y - model.Predict(predictors[i])
		ssRes += residual * residual

		diff := y - mean
		ssTot += diff * diff
	}

	// Guard the perfect fit before dividing: constant outcomes that
	// are reproduced exactly must yield 1.0, not 0/0.
	if ssRes == 0 {
		return 1.0, nil
	}

	return 1.0 - ssRes/ssTot, nil
}
