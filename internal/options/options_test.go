package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fitLikeConfig mirrors how the regression package uses this package:
// a config struct with validating and non-validating setters.
type fitLikeConfig struct {
	degree    int
	precision uint
	robust    bool
}

func withDegree(degree int) Option[*fitLikeConfig] {
	return New(func(cfg *fitLikeConfig) error {
		if degree < 0 {
			return errors.New("degree must not be negative")
		}
		cfg.degree = degree

		return nil
	})
}

func withPrecision(bits uint) Option[*fitLikeConfig] {
	return New(func(cfg *fitLikeConfig) error {
		if bits == 0 {
			return errors.New("precision must be positive")
		}
		cfg.precision = bits

		return nil
	})
}

func withRobust() Option[*fitLikeConfig] {
	return NoError(func(cfg *fitLikeConfig) {
		cfg.robust = true
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &fitLikeConfig{}
		err := Apply(cfg, withDegree(3), withPrecision(128), withRobust())
		require.NoError(t, err)
		require.Equal(t, 3, cfg.degree)
		require.Equal(t, uint(128), cfg.precision)
		require.True(t, cfg.robust)
	})

	t.Run("later options win", func(t *testing.T) {
		cfg := &fitLikeConfig{}
		err := Apply(cfg, withDegree(1), withDegree(2))
		require.NoError(t, err)
		require.Equal(t, 2, cfg.degree)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &fitLikeConfig{}
		err := Apply(cfg, withDegree(2), withPrecision(0), withRobust())
		require.Error(t, err)
		require.Contains(t, err.Error(), "precision must be positive")
		require.Equal(t, 2, cfg.degree)
		require.False(t, cfg.robust)
	})

	t.Run("no options leaves target untouched", func(t *testing.T) {
		cfg := &fitLikeConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, fitLikeConfig{}, *cfg)
	})
}

func TestNewPropagatesError(t *testing.T) {
	cfg := &fitLikeConfig{}
	err := New(func(*fitLikeConfig) error {
		return errors.New("boom")
	}).apply(cfg)
	require.EqualError(t, err, "boom")
}

func TestNoErrorNeverFails(t *testing.T) {
	cfg := &fitLikeConfig{}
	require.NoError(t, withRobust().apply(cfg))
	require.True(t, cfg.robust)
}

// The option type is generic over the target; make sure it works with
// something other than a struct pointer.
func TestGenericTarget(t *testing.T) {
	var n int
	opt := NoError(func(target *int) { *target = 7 })
	require.NoError(t, opt.apply(&n))
	require.Equal(t, 7, n)
}
