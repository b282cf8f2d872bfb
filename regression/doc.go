// Package regression fits models to numeric samples and selects the
// best-fitting one through heuristic scoring.
//
// # Vocabulary
//
//   - predictors: the independent values (usually x)
//   - outcomes: the dependent values (usually y or f(x))
//   - model: a fitted equation predicting outcomes from predictors
//
// # Key Features
//
//   - **Multiple Model Types**: linear, polynomial of arbitrary
//     degree, power, exponential, and robust Theil-Sen fits
//   - **Automatic Model Selection**: BestFit evaluates guarded
//     candidates and scores them with weighted R² heuristics
//   - **Pluggable Linear Estimators**: the power/exponential fitters
//     and the selector accept any LinearEstimator (OLS or Theil-Sen)
//   - **Selectable Precision**: polynomial fits can run on a
//     big.Float backend for ill-conditioned high-degree problems
//
// # Basic Usage
//
// Fit a single model:
//
//	coeffs, err := regression.OLS{}.FitLinear(xs, ys)
//	if err != nil {
//	    return err
//	}
//	predicted := coeffs.Predict(10)
//
// Let the selector choose:
//
//	result, err := regression.BestFit(xs, ys)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s (R²=%.4f)\n", result.Model.Formula(), result.RSquared)
//
// # Model Comparison
//
// BestFit keeps every scored candidate, so the full field can be
// inspected:
//
//	for _, c := range result.Candidates {
//	    fmt.Printf("%s: R²=%.4f score=%.4f\n", c.Model.Type(), c.RSquared, c.Score)
//	}
//
// # Power & exponential derivation
//
// Both are derived fits: the data is log₂-linearized, the chosen
// linear estimator runs on the transformed arrays, and the line's
// coefficients are transformed back (k = 2^intercept, with the slope
// becoming the exponent or log₂ of the base). When raw data contains
// values below 1, an additive offset of 1−min keeps the logarithms
// defined; the offset is replayed inside Predict. Log-linearization
// compresses the influence of large values relative to small ones —
// a known modeling bias of the method, not a defect.
//
// # Errors
//
// Precondition violations (mismatched lengths, degree ≥ sample count,
// fewer than 3 samples for derived fits) and numerical failures
// (singular design matrix, no predictor spread) are reported through
// the sentinel values in the errs package and can be distinguished
// with errors.Is.
package regression
