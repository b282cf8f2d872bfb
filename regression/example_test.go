package regression_test

import (
	"fmt"
	"log"

	"github.com/statkit/statkit/regression"
)

// ExampleBestFit demonstrates automatic model selection.
func ExampleBestFit() {
	// Samples generated by y = 2x^2.
	predictors := []float64{1, 2, 3, 4}
	outcomes := []float64{2, 8, 18, 32}

	result, err := regression.BestFit(predictors, outcomes)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Model type: %s\n", result.Model.Type())
	fmt.Printf("Formula: %s\n", result.Model.Formula())
	fmt.Printf("R²: %.4f\n", result.RSquared)
	fmt.Printf("Predict(5): %.1f\n", result.Model.Predict(5))

	// Output:
	// Model type: power
	// Formula: 2 * x^2
	// R²: 1.0000
	// Predict(5): 50.0
}

// ExamplePolynomial demonstrates fitting a polynomial of chosen degree.
func ExamplePolynomial() {
	predictors := []float64{-2, -1, 0, 1, 2}
	outcomes := []float64{9, 4, 1, 0, 1}

	coeffs, err := regression.Polynomial(predictors, outcomes, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Formula: %s\n", coeffs.Formula())
	fmt.Printf("Predict(3): %.1f\n", coeffs.Predict(3))

	// Output:
	// Formula: 1x^2 - 2x + 1
	// Predict(3): 4.0
}

// ExampleTheilSen demonstrates the robust estimator shrugging off an
// outlier that visibly drags ordinary least squares.
func ExampleTheilSen() {
	predictors := []float64{1, 2, 3, 4, 5}
	outcomes := []float64{1, 2, 3, 4, 500}

	robust, err := regression.TheilSen{}.Fit(predictors, outcomes)
	if err != nil {
		log.Fatal(err)
	}
	ols, err := regression.OLS{}.FitLinear(predictors, outcomes)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Theil-Sen: %s\n", robust.Formula())
	fmt.Printf("OLS:       %s\n", ols.Formula())

	// Output:
	// Theil-Sen: 1x + 0
	// OLS:       100x + -198
}
