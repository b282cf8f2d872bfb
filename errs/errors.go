// Package errs defines sentinel errors shared across statkit packages.
//
// All errors are wrapped with context at call sites using
// fmt.Errorf("%w: ...", errs.ErrXxx), so callers can match the
// category with errors.Is while still getting a descriptive message.
//
// The errors fall into two groups:
//
//   - Precondition violations (ErrEmptyInput, ErrLengthMismatch,
//     ErrInsufficientData, ErrInvalidFraction, ErrInvalidCount,
//     ErrInvalidPrecision, ErrInvalidEstimator): contract errors on
//     the caller's side.
//     Retrying with the same input will fail again.
//   - Numerical failures (ErrSingularMatrix, ErrInsufficientSpread):
//     the input was well-formed but numerically degenerate. Retrying
//     with fewer parameters or different data may succeed.
//
// Conditions that are valid outcomes rather than failures, such as
// quartiles over fewer than 5 weighted samples, are represented as
// explicit absence by the engines and never surface as errors.
package errs

import "errors"

var (
	// ErrEmptyInput indicates an operation received no samples.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch indicates predictor and outcome slices have
	// different lengths.
	ErrLengthMismatch = errors.New("predictors and outcomes length mismatch")

	// ErrInsufficientData indicates too few samples for the requested
	// fit, e.g. polynomial degree >= sample count, or fewer than 3
	// samples for a power or exponential fit.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrInsufficientSpread indicates every sample pair shares the
	// same predictor value, leaving no slope to estimate.
	ErrInsufficientSpread = errors.New("insufficient predictor spread")

	// ErrSingularMatrix indicates the normal-equations matrix is not
	// invertible, typically from collinear or degenerate predictors.
	ErrSingularMatrix = errors.New("singular design matrix")

	// ErrInvalidFraction indicates a percentile fraction with a zero
	// denominator or a value outside [0, 1].
	ErrInvalidFraction = errors.New("invalid percentile fraction")

	// ErrInvalidCount indicates a cluster with count < 1.
	ErrInvalidCount = errors.New("invalid cluster count")

	// ErrInvalidPrecision indicates a big.Float precision of 0 bits.
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrInvalidEstimator indicates a nil linear estimator was passed
	// as a fit option.
	ErrInvalidEstimator = errors.New("invalid estimator")
)
