// Package dist - scalar distribution variants.
//
// This file declares the Distribution contract plus the Gaussian, Uniform and
// ChiSquared implementations. All three delegate draws and densities to gonum
// stat/distuv and keep their parameters mutable, because the prior registry
// re-parameterizes random-effect distributions (variance ← std²) between
// density queries.
//
// Errors:
//
//	ErrNonPositiveVariance - variance (or chi-squared dof) must be > 0.
//	ErrBadParameter        - parameter outside the variant's valid domain.
package dist

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for scalar distribution construction and mutation.
var (
	// ErrNonPositiveVariance indicates a variance (or equivalent scale) ≤ 0.
	ErrNonPositiveVariance = errors.New("dist: variance must be positive")

	// ErrBadParameter indicates a parameter outside the variant's domain
	// (e.g. Uniform with min ≥ max, ChiSquared mean ≤ 0).
	ErrBadParameter = errors.New("dist: parameter outside valid domain")
)

// Distribution is the scalar contract consumed by the prior registry and the
// seed search: a random draw, a log-density, the first two moments, and
// mutable re-parameterization of those moments.
//
// LogProb must return math.Inf(-1) where the density is exactly zero; the
// sampler treats −∞ as the ordinary reject outcome, never as an error.
type Distribution interface {
	// Rand draws one realization.
	Rand() float64

	// LogProb evaluates the log-density at x (−∞ where the density is zero).
	LogProb(x float64) float64

	// Mean returns the current mean.
	Mean() float64

	// Variance returns the current variance.
	Variance() float64

	// SetMean re-parameterizes the distribution to the given mean.
	SetMean(m float64) error

	// SetVariance re-parameterizes the distribution to the given variance.
	SetVariance(v float64) error
}

// Gaussian is a univariate normal distribution with mutable mean/variance.
type Gaussian struct {
	norm distuv.Normal
}

// NewGaussian builds a Gaussian with the given mean and variance.
// Returns ErrNonPositiveVariance when variance ≤ 0.
func NewGaussian(mean, variance float64, src rand.Source) (*Gaussian, error) {
	if variance <= 0 {
		return nil, ErrNonPositiveVariance
	}
	return &Gaussian{norm: distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance), Src: src}}, nil
}

// Rand draws one realization.
func (g *Gaussian) Rand() float64 { return g.norm.Rand() }

// LogProb evaluates the log-density at x.
func (g *Gaussian) LogProb(x float64) float64 { return g.norm.LogProb(x) }

// Mean returns the current mean.
func (g *Gaussian) Mean() float64 { return g.norm.Mu }

// Variance returns the current variance.
func (g *Gaussian) Variance() float64 { return g.norm.Sigma * g.norm.Sigma }

// SetMean re-centers the distribution.
func (g *Gaussian) SetMean(m float64) error {
	g.norm.Mu = m
	return nil
}

// SetVariance rescales the distribution; ErrNonPositiveVariance when v ≤ 0.
func (g *Gaussian) SetVariance(v float64) error {
	if v <= 0 {
		return ErrNonPositiveVariance
	}
	g.norm.Sigma = math.Sqrt(v)
	return nil
}

// Uniform is a continuous uniform distribution on (Min, Max) with mutable
// center and width.
type Uniform struct {
	uni distuv.Uniform
}

// NewUniform builds a Uniform on (min, max).
// Returns ErrBadParameter when min ≥ max.
func NewUniform(min, max float64, src rand.Source) (*Uniform, error) {
	if min >= max {
		return nil, ErrBadParameter
	}
	return &Uniform{uni: distuv.Uniform{Min: min, Max: max, Src: src}}, nil
}

// Rand draws one realization.
func (u *Uniform) Rand() float64 { return u.uni.Rand() }

// LogProb evaluates the log-density at x (−∞ outside the support).
func (u *Uniform) LogProb(x float64) float64 { return u.uni.LogProb(x) }

// Mean returns the midpoint (Min+Max)/2.
func (u *Uniform) Mean() float64 { return u.uni.Mean() }

// Variance returns (Max−Min)²/12.
func (u *Uniform) Variance() float64 { return u.uni.Variance() }

// SetMean shifts the support so that its midpoint equals m; the width is kept.
func (u *Uniform) SetMean(m float64) error {
	half := (u.uni.Max - u.uni.Min) / 2
	u.uni.Min = m - half
	u.uni.Max = m + half
	return nil
}

// SetVariance resizes the support around the current midpoint so that the
// variance equals v; ErrNonPositiveVariance when v ≤ 0.
func (u *Uniform) SetVariance(v float64) error {
	if v <= 0 {
		return ErrNonPositiveVariance
	}
	mid := u.Mean()
	half := math.Sqrt(3 * v)
	u.uni.Min = mid - half
	u.uni.Max = mid + half
	return nil
}

// ChiSquared is a chi-squared distribution; its single degrees-of-freedom
// parameter k fixes mean k and variance 2k, so SetMean and SetVariance are
// two views of the same knob.
type ChiSquared struct {
	chi distuv.ChiSquared
}

// NewChiSquared builds a ChiSquared with k degrees of freedom.
// Returns ErrBadParameter when k ≤ 0.
func NewChiSquared(k float64, src rand.Source) (*ChiSquared, error) {
	if k <= 0 {
		return nil, ErrBadParameter
	}
	return &ChiSquared{chi: distuv.ChiSquared{K: k, Src: src}}, nil
}

// Rand draws one realization.
func (c *ChiSquared) Rand() float64 { return c.chi.Rand() }

// LogProb evaluates the log-density at x (−∞ for x ≤ 0).
func (c *ChiSquared) LogProb(x float64) float64 { return c.chi.LogProb(x) }

// Mean returns k.
func (c *ChiSquared) Mean() float64 { return c.chi.Mean() }

// Variance returns 2k.
func (c *ChiSquared) Variance() float64 { return c.chi.Variance() }

// SetMean sets k = m; ErrBadParameter when m ≤ 0.
func (c *ChiSquared) SetMean(m float64) error {
	if m <= 0 {
		return ErrBadParameter
	}
	c.chi.K = m
	return nil
}

// SetVariance sets k = v/2; ErrNonPositiveVariance when v ≤ 0.
func (c *ChiSquared) SetVariance(v float64) error {
	if v <= 0 {
		return ErrNonPositiveVariance
	}
	c.chi.K = v / 2
	return nil
}
