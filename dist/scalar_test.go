package dist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bayesmc/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGaussian_RejectsBadVariance verifies construction guards.
func TestNewGaussian_RejectsBadVariance(t *testing.T) {
	_, err := dist.NewGaussian(0, 0, dist.NewSource(1))
	assert.ErrorIs(t, err, dist.ErrNonPositiveVariance, "zero variance must be rejected")

	_, err = dist.NewGaussian(0, -1, dist.NewSource(1))
	assert.ErrorIs(t, err, dist.ErrNonPositiveVariance, "negative variance must be rejected")
}

// TestGaussian_Moments checks that moments round-trip through re-parameterization.
func TestGaussian_Moments(t *testing.T) {
	g, err := dist.NewGaussian(3, 16, dist.NewSource(7))
	require.NoError(t, err)

	assert.InDelta(t, 3.0, g.Mean(), 1e-12)
	assert.InDelta(t, 16.0, g.Variance(), 1e-12)

	require.NoError(t, g.SetMean(-1))
	require.NoError(t, g.SetVariance(4))
	assert.InDelta(t, -1.0, g.Mean(), 1e-12)
	assert.InDelta(t, 4.0, g.Variance(), 1e-12)

	assert.ErrorIs(t, g.SetVariance(0), dist.ErrNonPositiveVariance)
}

// TestGaussian_LogProb compares against the closed-form normal log-density.
func TestGaussian_LogProb(t *testing.T) {
	g, err := dist.NewGaussian(1, 4, dist.NewSource(7))
	require.NoError(t, err)

	x := 2.5
	want := -0.5*math.Log(2*math.Pi*4) - (x-1)*(x-1)/(2*4)
	assert.InDelta(t, want, g.LogProb(x), 1e-12)
}

// TestUniform_SupportAndDensity verifies zero density maps to −∞, the normal
// reject signal of the sampler, and that moments match the analytic values.
func TestUniform_SupportAndDensity(t *testing.T) {
	u, err := dist.NewUniform(-10, 10, dist.NewSource(3))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, u.Mean(), 1e-12)
	assert.InDelta(t, 400.0/12.0, u.Variance(), 1e-12)
	assert.InDelta(t, math.Log(1.0/20.0), u.LogProb(0), 1e-12)
	assert.True(t, math.IsInf(u.LogProb(11), -1), "outside support ⇒ −∞, not an error")

	_, err = dist.NewUniform(2, 2, dist.NewSource(3))
	assert.ErrorIs(t, err, dist.ErrBadParameter, "min ≥ max must be rejected")
}

// TestUniform_Reparameterize checks SetMean keeps the width and SetVariance
// keeps the center.
func TestUniform_Reparameterize(t *testing.T) {
	u, err := dist.NewUniform(0, 2, dist.NewSource(3))
	require.NoError(t, err)

	require.NoError(t, u.SetMean(5))
	assert.InDelta(t, 5.0, u.Mean(), 1e-12)
	assert.InDelta(t, 4.0/12.0, u.Variance(), 1e-12, "width preserved by SetMean")

	require.NoError(t, u.SetVariance(3))
	assert.InDelta(t, 5.0, u.Mean(), 1e-12, "center preserved by SetVariance")
	assert.InDelta(t, 3.0, u.Variance(), 1e-9)
}

// TestChiSquared_MeanVarianceCoupling verifies that k couples mean and variance.
func TestChiSquared_MeanVarianceCoupling(t *testing.T) {
	c, err := dist.NewChiSquared(4, dist.NewSource(11))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, c.Mean(), 1e-12)
	assert.InDelta(t, 8.0, c.Variance(), 1e-12)

	require.NoError(t, c.SetVariance(10))
	assert.InDelta(t, 5.0, c.Mean(), 1e-12, "SetVariance(v) ⇒ k = v/2")

	require.NoError(t, c.SetMean(2))
	assert.InDelta(t, 4.0, c.Variance(), 1e-12, "SetMean(m) ⇒ k = m")

	assert.ErrorIs(t, c.SetMean(0), dist.ErrBadParameter)
	assert.True(t, math.IsInf(c.LogProb(-1), -1), "negative support ⇒ −∞")
}

// TestScalar_DrawsInsideSupport exercises Rand for every variant.
func TestScalar_DrawsInsideSupport(t *testing.T) {
	u, err := dist.NewUniform(-2, 2, dist.NewSource(5))
	require.NoError(t, err)
	c, err := dist.NewChiSquared(3, dist.NewSource(5))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		x := u.Rand()
		assert.GreaterOrEqual(t, x, -2.0)
		assert.LessOrEqual(t, x, 2.0)
		assert.Greater(t, c.Rand(), 0.0)
	}
}

// TestNewSource_ZeroSeedPolicy verifies seed==0 maps to the fixed default.
func TestNewSource_ZeroSeedPolicy(t *testing.T) {
	a := dist.NewSource(0)
	b := dist.NewSource(dist.DefaultSeed)
	assert.Equal(t, a.Uint64(), b.Uint64(), "seed 0 must alias DefaultSeed")

	s1 := dist.DeriveSeed(42, 1)
	s2 := dist.DeriveSeed(42, 2)
	assert.NotEqual(t, s1, s2, "distinct streams must derive distinct seeds")
}
