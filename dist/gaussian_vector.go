// Package dist - multivariate Gaussian proposal.
//
// GaussianVector implements the random-walk proposal: a multivariate normal
// whose mean is re-centered at every accepted chain state and whose
// covariance is rescaled during adaptive tuning. Draws go through the
// classical Cholesky transform x = μ + L·z with z iid standard normal.
//
// Errors:
//
//	ErrDimensionMismatch   - mean/covariance/argument lengths disagree.
//	ErrNotPositiveDefinite - covariance admits no Cholesky factorization.
package dist

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for multivariate Gaussian construction and mutation.
var (
	// ErrDimensionMismatch indicates incompatible lengths between the mean,
	// the covariance and a caller-supplied vector.
	ErrDimensionMismatch = errors.New("dist: dimension mismatch")

	// ErrNotPositiveDefinite indicates the covariance matrix is not
	// (numerically) positive definite, so no Cholesky factor exists.
	ErrNotPositiveDefinite = errors.New("dist: covariance not positive definite")
)

// GaussianVector is a mutable multivariate normal distribution.
//
// The Cholesky factor of the covariance is cached; SetMean is O(n) while
// SetCovariance/ScaleCovariance re-factorize in O(n³). Not goroutine-safe.
type GaussianVector struct {
	mu    []float64
	cov   *mat.SymDense
	chol  mat.Cholesky
	lower *mat.TriDense
	std   distuv.Normal
	z     []float64
}

// NewGaussianVector builds a multivariate normal with the given mean and
// covariance. The inputs are copied.
//
// Errors: ErrDimensionMismatch when len(mean) != cov.SymmetricDim();
// ErrNotPositiveDefinite when the covariance cannot be factorized.
func NewGaussianVector(mean []float64, cov *mat.SymDense, src rand.Source) (*GaussianVector, error) {
	n := len(mean)
	if n == 0 || cov.SymmetricDim() != n {
		return nil, ErrDimensionMismatch
	}
	g := &GaussianVector{
		mu:    append([]float64(nil), mean...),
		cov:   mat.NewSymDense(n, nil),
		lower: mat.NewTriDense(n, mat.Lower, nil),
		std:   distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		z:     make([]float64, n),
	}
	g.cov.CopySym(cov)
	if err := g.refactorize(); err != nil {
		return nil, err
	}
	return g, nil
}

// refactorize refreshes the cached Cholesky factor from the current covariance.
func (g *GaussianVector) refactorize() error {
	if ok := g.chol.Factorize(g.cov); !ok {
		return ErrNotPositiveDefinite
	}
	g.chol.LTo(g.lower)
	return nil
}

// Dim returns the dimension of the distribution.
func (g *GaussianVector) Dim() int { return len(g.mu) }

// Rand draws one realization into dst (allocated when nil) and returns it.
// dst must have length Dim.
func (g *GaussianVector) Rand(dst []float64) ([]float64, error) {
	n := len(g.mu)
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		return nil, ErrDimensionMismatch
	}
	for i := range g.z {
		g.z[i] = g.std.Rand()
	}
	xv := mat.NewVecDense(n, dst)
	xv.MulVec(g.lower, mat.NewVecDense(n, g.z))
	for i := range dst {
		dst[i] += g.mu[i]
	}
	return dst, nil
}

// LogProb evaluates the log-density at x.
func (g *GaussianVector) LogProb(x []float64) (float64, error) {
	n := len(g.mu)
	if len(x) != n {
		return 0, ErrDimensionMismatch
	}
	dv := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		dv.SetVec(i, x[i]-g.mu[i])
	}
	sol := mat.NewVecDense(n, nil)
	if err := g.chol.SolveVecTo(sol, dv); err != nil {
		return 0, ErrNotPositiveDefinite
	}
	quad := mat.Dot(dv, sol)
	return -0.5 * (float64(n)*math.Log(2*math.Pi) + g.chol.LogDet() + quad), nil
}

// SetMean re-centers the distribution at mu (copied). O(n).
func (g *GaussianVector) SetMean(mu []float64) error {
	if len(mu) != len(g.mu) {
		return ErrDimensionMismatch
	}
	copy(g.mu, mu)
	return nil
}

// Mean returns a copy of the current mean.
func (g *GaussianVector) Mean() []float64 {
	return append([]float64(nil), g.mu...)
}

// Covariance returns a copy of the current covariance.
func (g *GaussianVector) Covariance() *mat.SymDense {
	out := mat.NewSymDense(len(g.mu), nil)
	out.CopySym(g.cov)
	return out
}

// SetCovariance replaces the covariance (copied) and re-factorizes.
func (g *GaussianVector) SetCovariance(cov *mat.SymDense) error {
	if cov.SymmetricDim() != len(g.mu) {
		return ErrDimensionMismatch
	}
	g.cov.CopySym(cov)
	return g.refactorize()
}

// ScaleCovariance multiplies the whole covariance by f > 0 and re-factorizes.
// This is the global proposal-tuning knob of the main sampling loop.
func (g *GaussianVector) ScaleCovariance(f float64) error {
	if f <= 0 {
		return ErrNotPositiveDefinite
	}
	g.cov.ScaleSym(f, g.cov)
	return g.refactorize()
}
