// Package model declares the statistical-model contract consumed by the
// estimation pipeline, together with the default subject-sum log-likelihood,
// the starting-proposal builder, and a built-in univariate Normal model used
// by the CLI demo and the regression tests.
package model

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayesmc/dist"
	"github.com/katalvlaran/bayesmc/prior"
)

// Model is the user-supplied collaborator driving an estimation run.
//
// Implementations are free to override LogLikelihood with a closed form;
// SumLogLikelihood provides the default subject-sum behavior.
type Model interface {
	// LogLikelihood evaluates the joint log-likelihood of the data at parms.
	// −∞ marks an impossible parameter vector and is the ordinary reject
	// outcome, never an error.
	LogLikelihood(parms []float64) float64

	// NbSubjects returns the number of subjects (observational units).
	NbSubjects() int

	// LikelihoodOfSubject evaluates the (non-log) likelihood contribution of
	// one subject; used by the LPML computation.
	LikelihoodOfSubject(parms []float64, id int) float64

	// StartingEstimate returns the model's own starting parameter vector.
	StartingEstimate() []float64

	// RegisterPriors registers one prior per scalar parameter into reg.
	RegisterPriors(reg *prior.Registry) error
}

// SumLogLikelihood is the default log-likelihood: the sum over all subjects
// of log(LikelihoodOfSubject). Any non-positive subject likelihood makes the
// whole vector impossible (−∞).
func SumLogLikelihood(m Model, parms []float64) float64 {
	sum := 0.0
	for i := 0; i < m.NbSubjects(); i++ {
		l := m.LikelihoodOfSubject(parms, i)
		if l <= 0 {
			return math.Inf(-1)
		}
		sum += math.Log(l)
	}
	return sum
}

// MinStartingVariance floors each diagonal entry of the starting proposal
// covariance, so a zero starting coordinate still gets a proposable width.
const MinStartingVariance = 1e-8

// StartingProposal builds the model's starting sampler: a multivariate
// Gaussian centered at the starting estimate with diagonal covariance
// (mean·coefVar)², floored by MinStartingVariance.
func StartingProposal(m Model, coefVar float64, src rand.Source) (*dist.GaussianVector, error) {
	mean := m.StartingEstimate()
	cov := mat.NewSymDense(len(mean), nil)
	for i, mu := range mean {
		v := mu * coefVar * mu * coefVar
		if v < MinStartingVariance {
			v = MinStartingVariance
		}
		cov.SetSym(i, i, v)
	}
	return dist.NewGaussianVector(mean, cov, src)
}
