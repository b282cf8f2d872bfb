package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: y = kx + m
	ModelTypeLinear ModelType = iota
	// ModelTypePolynomial represents a polynomial model of arbitrary degree.
	ModelTypePolynomial
	// ModelTypePower represents the power model: y = k * x^e
	ModelTypePower
	// ModelTypeExponential represents the exponential model: y = k * b^x
	ModelTypeExponential
	// ModelTypeTheilSen represents a linear model fitted by the
	// robust Theil-Sen estimator.
	ModelTypeTheilSen
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypePolynomial:  "polynomial",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypeTheilSen:    "theil-sen",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"linear":      ModelTypeLinear,
	"polynomial":  ModelTypePolynomial,
	"power":       ModelTypePower,
	"exponential": ModelTypeExponential,
	"theil-sen":   ModelTypeTheilSen,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

// supportedModelTypes returns the known type names, sorted, for error
// messages.
func supportedModelTypes() string {
	names := make([]string, 0, len(modelTypeNames))
	for _, name := range modelTypeNames {
		names = append(names, name)
	}
	slices.Sort(names)

	return strings.Join(names, ", ")
}

// Model is implemented by every fitted model. A model is created once
// per fit and immutable thereafter; Predict is a pure function
// defined for any real predictor (it may produce NaN or Inf for
// out-of-domain offsets).
//
// Model is the type-erased handle over the concrete coefficient
// types: callers can hold and compare fits without knowing which
// variant produced them.
type Model interface {
	// Predict calculates the predicted outcome of predictor.
	Predict(predictor float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the fitted parameters. For linear and
	// polynomial models the index is the power of x; derived models
	// document their own layout.
	Coefficients() []float64
	// Formula returns a human-readable rendering of the equation.
	Formula() string
}

// LinearCoefficients is a fitted line.
type LinearCoefficients struct {
	// K is the slope, the x coefficient.
	K float64
	// M is the y intercept, the additive term.
	M float64
}

// Predict calculates the outcome k*x + m.
func (c LinearCoefficients) Predict(predictor float64) float64 {
	return c.K*predictor + c.M
}

// Type returns ModelTypeLinear.
func (c LinearCoefficients) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns [m, k]; the index is the power of x.
func (c LinearCoefficients) Coefficients() []float64 {
	return []float64{c.M, c.K}
}

// Formula renders the line, e.g. "2x + 1".
func (c LinearCoefficients) Formula() string {
	return fmt.Sprintf("%.5gx + %.5g", c.K, c.M)
}

func (c LinearCoefficients) String() string {
	return c.Formula()
}

// TheilSenCoefficients is a line fitted by the Theil-Sen estimator.
// It predicts and renders exactly like LinearCoefficients but keeps
// its own model type so callers can tell the robust fit apart.
type TheilSenCoefficients struct {
	LinearCoefficients
}

// Type returns ModelTypeTheilSen.
func (c TheilSenCoefficients) Type() ModelType {
	return ModelTypeTheilSen
}

// PolynomialCoefficients is a fitted polynomial. The coefficient
// index is the power of x: [0, 2, 1] means y = 1x² + 2x + 0.
type PolynomialCoefficients struct {
	coeffs []float64
}

// NewPolynomialCoefficients creates a polynomial from coefficients
// ordered by ascending power.
func NewPolynomialCoefficients(coeffs []float64) PolynomialCoefficients {
	return PolynomialCoefficients{coeffs: slices.Clone(coeffs)}
}

// Predict evaluates the polynomial at predictor.
func (c PolynomialCoefficients) Predict(predictor float64) float64 {
	out := 0.0
	power := 1.0
	for _, coeff := range c.coeffs {
		out += coeff * power
		power *= predictor
	}

	return out
}

// Type returns ModelTypePolynomial.
func (c PolynomialCoefficients) Type() ModelType {
	return ModelTypePolynomial
}

// Coefficients returns a copy of the coefficients, index = power.
func (c PolynomialCoefficients) Coefficients() []float64 {
	return slices.Clone(c.coeffs)
}

// Degree returns the polynomial degree.
func (c PolynomialCoefficients) Degree() int {
	return len(c.coeffs) - 1
}

// Formula renders the polynomial from the highest degree down, e.g.
// "1.5x^2 + 2x - 0.5".
func (c PolynomialCoefficients) Formula() string {
	var b strings.Builder
	first := true
	for degree := len(c.coeffs) - 1; degree >= 0; degree-- {
		coeff := c.coeffs[degree]
		if !first {
			if coeff < 0 {
				b.WriteString(" - ")
				coeff = -coeff
			} else {
				b.WriteString(" + ")
			}
		}

		switch degree {
		case 0:
			fmt.Fprintf(&b, "%.5g", coeff)
		case 1:
			fmt.Fprintf(&b, "%.5gx", coeff)
		default:
			fmt.Fprintf(&b, "%.5gx^%d", coeff, degree)
		}

		first = false
	}

	return b.String()
}

func (c PolynomialCoefficients) String() string {
	return c.Formula()
}

// PowerCoefficients is a fitted power curve y = k * x^e. When the raw
// data contained values below 1, the additive offsets record the
// domain correction applied before the logarithmic transform; a zero
// offset means none was needed.
type PowerCoefficients struct {
	// K is the constant factor.
	K float64
	// E is the exponent.
	E float64
	// PredictorAdditive is added to the predictor before
	// exponentiation.
	PredictorAdditive float64
	// OutcomeAdditive is subtracted from the predicted outcome.
	OutcomeAdditive float64
}

// Predict calculates k * (x + predictorAdditive)^e - outcomeAdditive.
func (c PowerCoefficients) Predict(predictor float64) float64 {
	return c.K*math.Pow(predictor+c.PredictorAdditive, c.E) - c.OutcomeAdditive
}

// Type returns ModelTypePower.
func (c PowerCoefficients) Type() ModelType {
	return ModelTypePower
}

// Coefficients returns [k, e].
func (c PowerCoefficients) Coefficients() []float64 {
	return []float64{c.K, c.E}
}

// Formula renders the curve, e.g. "2 * x^2" or
// "2 * (x + 1.5)^2 - 0.25" with offsets.
func (c PowerCoefficients) Formula() string {
	x := "x"
	if c.PredictorAdditive != 0 {
		x = fmt.Sprintf("(x + %.5g)", c.PredictorAdditive)
	}
	formula := fmt.Sprintf("%.5g * %s^%.5g", c.K, x, c.E)
	if c.OutcomeAdditive != 0 {
		formula += fmt.Sprintf(" - %.5g", c.OutcomeAdditive)
	}

	return formula
}

func (c PowerCoefficients) String() string {
	return c.Formula()
}

// ExponentialCoefficients is a fitted exponential curve y = k * b^x,
// with the same optional domain-correction offsets as
// PowerCoefficients.
type ExponentialCoefficients struct {
	// K is the constant factor.
	K float64
	// B is the base.
	B float64
	// PredictorAdditive is added to the predictor in the exponent.
	PredictorAdditive float64
	// OutcomeAdditive is subtracted from the predicted outcome.
	OutcomeAdditive float64
}

// Predict calculates k * b^(x + predictorAdditive) - outcomeAdditive.
func (c ExponentialCoefficients) Predict(predictor float64) float64 {
	return c.K*math.Pow(c.B, predictor+c.PredictorAdditive) - c.OutcomeAdditive
}

// Type returns ModelTypeExponential.
func (c ExponentialCoefficients) Type() ModelType {
	return ModelTypeExponential
}

// Coefficients returns [k, b].
func (c ExponentialCoefficients) Coefficients() []float64 {
	return []float64{c.K, c.B}
}

// Formula renders the curve, e.g. "3 * 2^x".
func (c ExponentialCoefficients) Formula() string {
	x := "x"
	if c.PredictorAdditive != 0 {
		x = fmt.Sprintf("(x + %.5g)", c.PredictorAdditive)
	}
	formula := fmt.Sprintf("%.5g * %.5g^%s", c.K, c.B, x)
	if c.OutcomeAdditive != 0 {
		formula += fmt.Sprintf(" - %.5g", c.OutcomeAdditive)
	}

	return formula
}

func (c ExponentialCoefficients) String() string {
	return c.Formula()
}
