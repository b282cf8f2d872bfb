package regression

import (
	"fmt"

	"github.com/statkit/statkit/errs"
	"github.com/statkit/statkit/internal/options"
)

// fitConfig holds the configuration shared by the fitting entry points.
type fitConfig struct {
	// estimator resolves the linear fits inside BestFit and the
	// log-linearized power/exponential models.
	estimator LinearEstimator
	// precision, when non-zero, routes polynomial solves through the
	// arbitrary-precision backend with that many mantissa bits.
	precision uint
}

// FitOption configures a fit, e.g. WithEstimator or WithPrecision.
type FitOption = options.Option[*fitConfig]

// newFitConfig creates a fitConfig with defaults applied, then applies
// the given options in order.
func newFitConfig(opts ...FitOption) (*fitConfig, error) {
	cfg := &fitConfig{
		estimator: OLS{},
		precision: 0,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithEstimator selects the linear estimator used for the linear,
// power, and exponential candidates. The default is ordinary least
// squares; pass TheilSen{} for the robust variant.
func WithEstimator(est LinearEstimator) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if est == nil {
			return fmt.Errorf("%w: nil estimator", errs.ErrInvalidEstimator)
		}
		cfg.estimator = est

		return nil
	})
}

// WithPrecision switches polynomial solves to an arbitrary-precision
// backend using big.Float values with the given mantissa size in bits.
// Useful for high degrees or near-collinear designs, at a significant
// speed cost. bits must be positive; float64 carries 53 mantissa bits.
func WithPrecision(bits uint) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if bits == 0 {
			return fmt.Errorf("%w: precision must be positive", errs.ErrInvalidPrecision)
		}
		cfg.precision = bits

		return nil
	})
}
