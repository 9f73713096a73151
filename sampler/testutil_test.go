package sampler_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bayesmc/dist"
	"github.com/katalvlaran/bayesmc/prior"
	"github.com/stretchr/testify/require"
)

// twoScales is a toy target with two independent Gaussian components on very
// different natural scales (σ=1 and σ=10), under wide uniform priors. The
// data is baked into the density, which keeps every evaluation O(1).
type twoScales struct {
	priors [2]*dist.Uniform
}

func newTwoScales(t *testing.T) *twoScales {
	t.Helper()
	m := &twoScales{}
	for i, seed := range []uint64{21, 22} {
		u, err := dist.NewUniform(-200, 200, dist.NewSource(seed))
		require.NoError(t, err)
		m.priors[i] = u
	}
	return m
}

func (m *twoScales) LogLikelihood(parms []float64) float64 {
	a, b := parms[0], parms[1]
	return -0.5*a*a - 0.5*b*b/100
}

func (m *twoScales) NbSubjects() int { return 1 }

func (m *twoScales) LikelihoodOfSubject(parms []float64, _ int) float64 {
	return math.Exp(m.LogLikelihood(parms))
}

func (m *twoScales) StartingEstimate() []float64 { return []float64{1, 10} }

func (m *twoScales) RegisterPriors(reg *prior.Registry) error {
	if err := reg.RegisterFixedEffect("A", m.priors[0], 0); err != nil {
		return err
	}
	return reg.RegisterFixedEffect("B", m.priors[1], 1)
}

// flat has a constant likelihood L everywhere on the prior support, so the
// posterior equals the prior and the per-subject likelihood never varies.
type flat struct {
	l float64
	u *dist.Uniform
}

func newFlat(t *testing.T, l float64) *flat {
	t.Helper()
	u, err := dist.NewUniform(-1, 1, dist.NewSource(23))
	require.NoError(t, err)
	return &flat{l: l, u: u}
}

func (m *flat) LogLikelihood([]float64) float64               { return math.Log(m.l) }
func (m *flat) NbSubjects() int                               { return 1 }
func (m *flat) LikelihoodOfSubject([]float64, int) float64    { return m.l }
func (m *flat) StartingEstimate() []float64                   { return []float64{0} }
func (m *flat) RegisterPriors(reg *prior.Registry) error {
	return reg.RegisterFixedEffect("X", m.u, 0)
}

// pinned only has finite likelihood at its exact starting point, so every
// proposal is rejected and any stage walking away from the seed gets stuck.
type pinned struct {
	u *dist.Uniform
}

func newPinned(t *testing.T) *pinned {
	t.Helper()
	u, err := dist.NewUniform(-10, 10, dist.NewSource(24))
	require.NoError(t, err)
	return &pinned{u: u}
}

func (m *pinned) LogLikelihood(parms []float64) float64 {
	if parms[0] == 0 {
		return 0
	}
	return math.Inf(-1)
}

func (m *pinned) NbSubjects() int { return 1 }

func (m *pinned) LikelihoodOfSubject(parms []float64, _ int) float64 {
	return math.Exp(m.LogLikelihood(parms))
}

func (m *pinned) StartingEstimate() []float64 { return []float64{0} }
func (m *pinned) RegisterPriors(reg *prior.Registry) error {
	return reg.RegisterFixedEffect("X", m.u, 0)
}

// hopeless never has a finite likelihood anywhere, so the seed search can
// only terminate through the attempt cap.
type hopeless struct{ pinned }

func newHopeless(t *testing.T) *hopeless {
	t.Helper()
	return &hopeless{pinned: *newPinned(t)}
}

func (m *hopeless) LogLikelihood([]float64) float64 { return math.Inf(-1) }

// mixed is a three-parameter random-effect model: observations follow
// N(mu + b, 1) where mu is a fixed effect under a uniform prior, sigmaB is
// the std prior of the random effect, and b is a random effect whose Gaussian
// prior variance is re-parameterized to sigmaB² by the registry. Only the sum
// mu+b is identified by the data, which is exactly what makes it a good
// pipeline fixture: the chain has to move through the refreshed random-effect
// density to mix at all.
//
// Parameter vector layout: [mu, sigmaB, b].
type mixed struct {
	obs      []float64
	muPrior  *dist.Uniform
	stdPrior *dist.Uniform
	rePrior  *dist.Gaussian
}

func newMixed(t *testing.T, obs []float64) *mixed {
	t.Helper()
	mu, err := dist.NewUniform(-10, 10, dist.NewSource(25))
	require.NoError(t, err)
	std, err := dist.NewUniform(0.1, 2, dist.NewSource(26))
	require.NoError(t, err)
	re, err := dist.NewGaussian(0, 1, dist.NewSource(27))
	require.NoError(t, err)
	return &mixed{obs: obs, muPrior: mu, stdPrior: std, rePrior: re}
}

func (m *mixed) LogLikelihood(parms []float64) float64 {
	level := parms[0] + parms[2]
	sum := 0.0
	for _, y := range m.obs {
		d := y - level
		sum += -0.5*math.Log(2*math.Pi) - d*d/2
	}
	return sum
}

func (m *mixed) NbSubjects() int { return len(m.obs) }

func (m *mixed) LikelihoodOfSubject(parms []float64, id int) float64 {
	d := m.obs[id] - (parms[0] + parms[2])
	return math.Exp(-d*d/2) / math.Sqrt(2*math.Pi)
}

func (m *mixed) StartingEstimate() []float64 {
	mean := 0.0
	for _, y := range m.obs {
		mean += y
	}
	return []float64{mean / float64(len(m.obs)), 0.5, 0.1}
}

func (m *mixed) RegisterPriors(reg *prior.Registry) error {
	if err := reg.RegisterFixedEffect("Mu", m.muPrior, 0); err != nil {
		return err
	}
	if err := reg.RegisterFixedEffect("SigmaB", m.stdPrior, 1); err != nil {
		return err
	}
	return reg.RegisterRandomEffectStd("B", m.rePrior, m.stdPrior, 2)
}

// gappy registers a single prior for a two-parameter starting estimate,
// which must be rejected as a configuration error at setup time.
type gappy struct{ flat }

func newGappy(t *testing.T) *gappy {
	t.Helper()
	return &gappy{flat: *newFlat(t, 0.5)}
}

func (m *gappy) StartingEstimate() []float64 { return []float64{0, 0} }
