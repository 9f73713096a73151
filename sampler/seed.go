package sampler

import (
	"math"

	"github.com/katalvlaran/bayesmc/chain"
)

// findSeed locates the chain's seed state.
//
// With InitialGridSize == 0 the search is skipped entirely and the model's
// own starting estimate is scored and returned verbatim. Otherwise the joint
// prior is rejection-sampled until InitialGridSize draws with finite
// log-likelihood have been collected, and the draw with the highest
// log-posterior wins. With SeedOmitFixedPrior the fixed-prior term is left
// out of the selection score (importance-sample mode); the returned sample
// still carries the full log-posterior, the quantity every later accept
// test compares against.
//
// MaxSeedAttempts == 0 leaves the search unbounded: a prior that never hits
// the likelihood's support loops forever. That is the documented historical
// behavior; set a cap to get ErrSeedExhausted instead.
func (r *Runner) findSeed() (chain.Sample, error) {
	if r.opts.InitialGridSize == 0 {
		parms := r.model.StartingEstimate()
		return chain.NewSample(parms, r.logPosterior(parms)), nil
	}

	var (
		found    int
		attempts int
		best     []float64
		bestLP   = math.Inf(-1)
		buf      = make([]float64, r.dim)
	)
	for found < r.opts.InitialGridSize {
		if r.opts.MaxSeedAttempts > 0 && attempts >= r.opts.MaxSeedAttempts {
			return chain.Sample{}, ErrSeedExhausted
		}
		attempts++

		if _, err := r.priors.DrawJoint(buf); err != nil {
			return chain.Sample{}, err
		}
		ll := r.model.LogLikelihood(buf)
		if math.IsInf(ll, -1) || math.IsNaN(ll) {
			continue
		}
		found++

		lp := ll + r.priors.LogDensityRandomEffects(buf)
		if !r.opts.SeedOmitFixedPrior {
			lp += r.priors.LogDensityFixed(buf)
		}
		if lp > bestLP {
			bestLP = lp
			best = append(best[:0], buf...)
		}
	}
	if r.opts.SeedOmitFixedPrior {
		// The omitted term ranked the grid; the chain state must carry the
		// full posterior so the first accept tests compare like with like.
		bestLP += r.priors.LogDensityFixed(best)
	}
	return chain.NewSample(best, bestLP), nil
}
