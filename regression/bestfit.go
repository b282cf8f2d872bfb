package regression

import (
	"math"
)

// Heuristic weights applied to each candidate's coefficient of
// determination before comparison. The weighted score only ranks
// candidates; the reported RSquared values stay unmodified.
const (
	// linearBump is added to the linear score. Linear is the fallback
	// and usually the model callers want, so ties resolve in its
	// favour through evaluation order rather than a bump.
	linearBump = 0.0
	// powerBump is applied when the fitted exponent sits close to an
	// integer, which suggests a genuine power law.
	powerBump = 1.5
	// exponentialBump rewards high-certainty derived fits; a strong R²
	// seldom happens by accident with these models.
	exponentialBump = 1.3
	// thirdDegreePenalty dampens degree-3 polynomials to partially
	// mitigate overfitting.
	thirdDegreePenalty = 0.94
)

// Candidate is one model evaluated by BestFit, with its raw coefficient
// of determination and the heuristically weighted score used for
// ranking.
type Candidate struct {
	Model    Model
	RSquared float64
	Score    float64
}

// Result is the outcome of BestFit: the winning model, its raw
// coefficient of determination, and every candidate that was
// evaluated, in evaluation order.
type Result struct {
	Model      Model
	RSquared   float64
	Candidates []Candidate
}

// BestFit fits several model families to the samples and returns the
// one with the best heuristically weighted coefficient of
// determination.
//
// Candidates, in evaluation order:
//
//   - power and exponential, only when every predictor and outcome is
//     at least 1 (logarithms misbehave close to and under 0)
//   - polynomial of degree 2, only when there are more than 15 samples
//   - polynomial of degree 3, only when there are more than 50
//     samples, with a small penalty against overfitting
//   - linear, always
//
// The linear candidate uses the configured estimator (OLS by default,
// see WithEstimator), as do the derived power and exponential fits. A
// candidate whose fit fails numerically is skipped; only a failure of
// the linear fallback makes BestFit return an error.
func BestFit(predictors, outcomes []float64, opts ...FitOption) (*Result, error) {
	cfg, err := newFitConfig(opts...)
	if err != nil {
		return nil, err
	}

	res := &Result{}

	var (
		best      Model
		bestRsq   float64
		bestScore float64
		haveBest  bool
	)
	record := func(model Model, rsq, score float64) {
		res.Candidates = append(res.Candidates, Candidate{Model: model, RSquared: rsq, Score: score})
		if !haveBest || score > bestScore {
			best, bestRsq, bestScore, haveBest = model, rsq, score, true
		}
	}

	if len(predictors) > 0 && len(outcomes) > 0 &&
		sliceMin(predictors) >= 1 && sliceMin(outcomes) >= 1 {
		if power, err := Power(cfg.estimator, predictors, outcomes); err == nil {
			rsq, derr := Determination(power, predictors, outcomes)
			if derr == nil {
				// An exponent near an integer suggests a genuine power
				// law.
				distanceFromInteger := -math.Abs(0.5-math.Mod(power.E, 1)) + 0.5
				bump := 1.0
				if distanceFromInteger < 0.15 {
					bump = powerBump
				}
				if rsq > 0.8 {
					bump *= exponentialBump
				}
				if rsq > 0.92 {
					bump *= exponentialBump
				}
				record(power, rsq, rsq*bump)
			}
		}

		if exponential, err := Exponential(cfg.estimator, predictors, outcomes); err == nil {
			rsq, derr := Determination(exponential, predictors, outcomes)
			if derr == nil {
				bump := 1.0
				if rsq > 0.8 {
					bump = exponentialBump
				}
				if rsq > 0.92 {
					bump *= exponentialBump
				}
				record(exponential, rsq, rsq*bump)
			}
		}
	}

	if len(predictors) > 15 {
		if degree2, err := Polynomial(predictors, outcomes, 2, opts...); err == nil {
			if rsq, derr := Determination(degree2, predictors, outcomes); derr == nil {
				record(degree2, rsq, rsq)
			}
		}
	}
	if len(predictors) > 50 {
		if degree3, err := Polynomial(predictors, outcomes, 3, opts...); err == nil {
			if rsq, derr := Determination(degree3, predictors, outcomes); derr == nil {
				record(degree3, rsq, rsq*thirdDegreePenalty)
			}
		}
	}

	lineCoeffs, err := cfg.estimator.FitLinear(predictors, outcomes)
	if err != nil {
		return nil, err
	}
	line := asModel(cfg.estimator, lineCoeffs)
	rsq, err := Determination(line, predictors, outcomes)
	if err != nil {
		return nil, err
	}
	record(line, rsq, rsq+linearBump)

	res.Model = best
	res.RSquared = bestRsq

	return res, nil
}

// BestFitOLS is BestFit with the default ordinary least squares
// estimator.
func BestFitOLS(predictors, outcomes []float64) (*Result, error) {
	return BestFit(predictors, outcomes)
}
